package notification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/antoniomp17/WebPsicolog-a/internal/notification"
)

func TestRender(t *testing.T) {
	appURL := "https://patripsicologia.example.com"

	tests := []struct {
		name         string
		event        notification.Event
		wantSubject  string
		wantContains []string
		wantErr      bool
	}{
		{
			name: "welcome email",
			event: notification.Event{
				Type:           notification.EventTypeWelcome,
				RecipientName:  "Laura",
				RecipientEmail: "laura@example.com",
			},
			wantSubject:  "¡Bienvenido a PatriPsicología!",
			wantContains: []string{"¡Hola Laura!", appURL + "/cursos"},
		},
		{
			name: "appointment confirmation",
			event: notification.Event{
				Type:            notification.EventTypeAppointmentConfirmation,
				RecipientName:   "Laura",
				RecipientEmail:  "laura@example.com",
				AppointmentDate: "2026-09-15",
				AppointmentTime: "10:00",
			},
			wantSubject:  "✓ Cita confirmada - PatriPsicología",
			wantContains: []string{"Hola Laura,", "2026-09-15", "10:00"},
		},
		{
			name: "payment confirmation formats the amount in euros",
			event: notification.Event{
				Type:           notification.EventTypePaymentConfirmation,
				RecipientName:  "Laura",
				RecipientEmail: "laura@example.com",
				CourseName:     "Gestión de la Ansiedad",
				AmountCents:    12000,
				PaymentDate:    "2026-09-15",
			},
			wantSubject:  "✓ Pago confirmado - PatriPsicología",
			wantContains: []string{"Gestión de la Ansiedad", "€120.00", appURL + "/acceso-alumnos"},
		},
		{
			name: "unknown event type",
			event: notification.Event{
				Type: "reminder",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, body, err := notification.Render(tt.event, appURL)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantSubject, subject)

			for _, fragment := range tt.wantContains {
				assert.Contains(t, body, fragment)
			}
		})
	}
}
