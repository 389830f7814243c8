package entity

import "time"

// Appointment statuses.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentPending   = "pending"
)

// AppointmentStatuses accepted values, in display order.
var AppointmentStatuses = []string{AppointmentScheduled, AppointmentPending, AppointmentCompleted, AppointmentCancelled}

// Appointment a service visit booked with a client. Time is free text ("14:30").
type Appointment struct {
	ID         int64
	ClientName string
	Service    string
	Date       time.Time
	Time       *string
	Status     string
	Notes      *string
	CreatedAt  time.Time
}
