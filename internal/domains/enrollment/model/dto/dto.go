package dto

import (
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/enrollment/model"
	"github.com/antoniomp17/WebPsicolog-a/shared"
	gDto "github.com/antoniomp17/WebPsicolog-a/shared/dto"
)

type CreateEnrollmentRequest struct {
	CourseID string `json:"course_id" validate:"required,uuid"`
}

// CreateEnrollmentResponse carries the Stripe checkout URL the client is
// redirected to. The URL is empty for free courses, which are paid
// immediately.
type CreateEnrollmentResponse struct {
	EnrollmentID string `json:"enrollment_id"`
	Status       string `json:"status"`
	CheckoutURL  string `json:"checkout_url,omitempty"`
}

type EnrollmentResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	CourseID        string `json:"course_id"`
	Status          string `json:"status"`
	StripeSessionID string `json:"stripe_session_id,omitempty"`
	AmountCents     int64  `json:"amount_cents"`
	gDto.Metadata
}

func (r *EnrollmentResponse) FromModel(model model.Enrollment) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.CourseID = model.CourseID
	r.Status = model.Status
	r.StripeSessionID = model.StripeSessionID
	r.AmountCents = model.AmountCents
	r.Metadata.FromModel(model.Metadata)
}

type GetEnrollmentsResponse struct {
	Enrollments []EnrollmentResponse `json:"enrollments"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetEnrollmentsResponse) FromModels(models []model.Enrollment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Enrollments = make([]EnrollmentResponse, len(models))
	for i, mod := range models {
		r.Enrollments[i].FromModel(mod)
	}
}
