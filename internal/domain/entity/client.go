package entity

import "time"

// Client statuses.
const (
	ClientActive   = "active"
	ClientInactive = "inactive"
)

// Client a service client (landscaping contracts, appointments, invoices).
type Client struct {
	ID        int64
	Name      string
	Email     *string
	Phone     *string
	Address   *string
	Status    string
	CreatedAt time.Time
}
