package model

import (
	"github.com/antoniomp17/WebPsicolog-a/shared/model"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldFullName        = "full_name"
	FieldEmail           = "email"
	FieldAppointmentDate = "appointment_date"
	FieldAppointmentTime = "appointment_time"
	FieldStatus          = "status"
	FieldNotes           = "notes"
	FieldVideoCallLink   = "video_call_link"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Appointment keeps date and time as the plain strings clients submit.
// Slot collision is exact string equality on (date, time).
type Appointment struct {
	ID              string  `db:"id"`
	UserID          *string `db:"user_id"`
	FullName        string  `db:"full_name"`
	Email           string  `db:"email"`
	AppointmentDate string  `db:"appointment_date"`
	AppointmentTime string  `db:"appointment_time"`
	Status          string  `db:"status"`
	Notes           string  `db:"notes"`
	VideoCallLink   string  `db:"video_call_link"`
	model.Metadata
}
