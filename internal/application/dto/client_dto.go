package dto

import "time"

// ClientRequest body of POST/PUT /clients/.
type ClientRequest struct {
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Status  string  `json:"status"`
}

// ClientResponse a stored client.
type ClientResponse struct {
	ID int64 `json:"id"`
	ClientRequest
	CreatedAt time.Time `json:"created_at"`
}
