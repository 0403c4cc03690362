package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/antoniomp17/WebPsicolog-a/internal/domains/appointment/model"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/appointment/model/dto"
)

func TestCreateAppointmentRequest_ToModel(t *testing.T) {
	req := dto.CreateAppointmentRequest{
		FullName:        "Laura Fernández",
		Email:           "laura@example.com",
		AppointmentDate: "2026-09-15",
		AppointmentTime: "10:00",
		Notes:           "Primera consulta",
	}

	t.Run("guest booking has no user reference", func(t *testing.T) {
		appointment := req.ToModel("")

		assert.NotEmpty(t, appointment.ID)
		assert.Nil(t, appointment.UserID)
		assert.Equal(t, "guest", appointment.CreatedBy)
		assert.Equal(t, model.StatusPending, appointment.Status)
	})

	t.Run("logged-in booking links the user", func(t *testing.T) {
		appointment := req.ToModel("user-id-123")

		assert.NotNil(t, appointment.UserID)
		assert.Equal(t, "user-id-123", *appointment.UserID)
		assert.Equal(t, "user-id-123", appointment.CreatedBy)
	})

	t.Run("request fields are carried over", func(t *testing.T) {
		appointment := req.ToModel("user-id-123")

		assert.Equal(t, req.FullName, appointment.FullName)
		assert.Equal(t, req.Email, appointment.Email)
		assert.Equal(t, req.AppointmentDate, appointment.AppointmentDate)
		assert.Equal(t, req.AppointmentTime, appointment.AppointmentTime)
		assert.Equal(t, req.Notes, appointment.Notes)
	})
}
