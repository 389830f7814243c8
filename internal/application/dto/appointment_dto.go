package dto

import "time"

// AppointmentRequest body of POST/PUT /appointments/.
type AppointmentRequest struct {
	ClientName string  `json:"client_name"`
	Service    string  `json:"service"`
	Date       string  `json:"date"`
	Time       *string `json:"time"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes"`
}

// AppointmentResponse a stored appointment.
type AppointmentResponse struct {
	ID int64 `json:"id"`
	AppointmentRequest
	CreatedAt time.Time `json:"created_at"`
}
