package model

import "github.com/antoniomp17/WebPsicolog-a/shared/model"

const (
	TableName  = "enrollments"
	EntityName = "enrollment"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldCourseID        = "course_id"
	FieldStatus          = "status"
	FieldStripeSessionID = "stripe_session_id"
	FieldAmountCents     = "amount_cents"
)

const (
	StatusCreated   = "created"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
)

// Enrollment records a user buying access to a course. The amount is a
// snapshot of the course price at checkout time.
type Enrollment struct {
	ID              string `db:"id"`
	UserID          string `db:"user_id"`
	CourseID        string `db:"course_id"`
	Status          string `db:"status"`
	StripeSessionID string `db:"stripe_session_id"`
	AmountCents     int64  `db:"amount_cents"`
	model.Metadata
}
