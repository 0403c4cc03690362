package dto

import (
	"github.com/google/uuid"

	"github.com/antoniomp17/WebPsicolog-a/internal/domains/appointment/model"
	"github.com/antoniomp17/WebPsicolog-a/shared"
	gDto "github.com/antoniomp17/WebPsicolog-a/shared/dto"
	gModel "github.com/antoniomp17/WebPsicolog-a/shared/model"
	"github.com/antoniomp17/WebPsicolog-a/shared/timezone"
)

type CreateAppointmentRequest struct {
	FullName        string `json:"full_name"        validate:"required,max=100"`
	Email           string `json:"email"            validate:"required,email,max=100"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	AppointmentTime string `json:"appointment_time" validate:"required"`
	Notes           string `json:"notes"            validate:"omitempty,max=1000"`
}

// ToModel builds the pending appointment. An empty userID marks a guest
// booking, stored as a null user reference.
func (c *CreateAppointmentRequest) ToModel(userID string) model.Appointment {
	var userRef *string

	createdBy := "guest"

	if userID != "" {
		userRef = &userID
		createdBy = userID
	}

	return model.Appointment{
		ID:              uuid.NewString(),
		UserID:          userRef,
		FullName:        c.FullName,
		Email:           c.Email,
		AppointmentDate: c.AppointmentDate,
		AppointmentTime: c.AppointmentTime,
		Status:          model.StatusPending,
		Notes:           c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

type AttachVideoLinkRequest struct {
	VideoCallLink string `json:"video_call_link" validate:"required,url"`
}

type AppointmentResponse struct {
	ID              string  `json:"id"`
	UserID          *string `json:"user_id"`
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	AppointmentDate string  `json:"appointment_date"`
	AppointmentTime string  `json:"appointment_time"`
	Status          string  `json:"status"`
	Notes           string  `json:"notes,omitempty"`
	VideoCallLink   string  `json:"video_call_link,omitempty"`
	gDto.Metadata
}

func (r *AppointmentResponse) FromModel(model model.Appointment) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.FullName = model.FullName
	r.Email = model.Email
	r.AppointmentDate = model.AppointmentDate
	r.AppointmentTime = model.AppointmentTime
	r.Status = model.Status
	r.Notes = model.Notes
	r.VideoCallLink = model.VideoCallLink
	r.Metadata.FromModel(model.Metadata)
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Appointments = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Appointments[i].FromModel(mod)
	}
}
