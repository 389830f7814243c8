package dto

import "time"

// UserRequest body of POST/PUT /users/. An empty password on update keeps the current one.
type UserRequest struct {
	Username string  `json:"username"`
	Email    *string `json:"email"`
	Password string  `json:"password,omitempty"`
	IsAdmin  bool    `json:"is_admin"`
	IsActive *bool   `json:"is_active"`
}

// UserResponse a user without the password hash.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenRequest form fields of POST /token.
type TokenRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// TokenResponse bearer token issued by POST /token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
