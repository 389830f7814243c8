package entity

import "time"

// User a dashboard operator.
type User struct {
	ID           int64
	Username     string
	Email        *string
	PasswordHash string // bcrypt hash, never plain text after persisting
	IsAdmin      bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
