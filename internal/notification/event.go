package notification

const (
	EventTypeWelcome                 = "welcome"
	EventTypeAppointmentConfirmation = "appointment_confirmation"
	EventTypePaymentConfirmation     = "payment_confirmation"
)

// Event is the message published to the notifications topic. One struct
// covers every mail type, unused fields stay empty.
type Event struct {
	Type            string `json:"type"`
	RecipientName   string `json:"recipient_name"`
	RecipientEmail  string `json:"recipient_email"`
	AppointmentDate string `json:"appointment_date,omitempty"`
	AppointmentTime string `json:"appointment_time,omitempty"`
	CourseName      string `json:"course_name,omitempty"`
	AmountCents     int64  `json:"amount_cents,omitempty"`
	PaymentDate     string `json:"payment_date,omitempty"`
}
