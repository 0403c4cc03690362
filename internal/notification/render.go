package notification

import (
	"fmt"
)

const (
	subjectWelcome     = "¡Bienvenido a PatriPsicología!"
	subjectAppointment = "✓ Cita confirmada - PatriPsicología"
	subjectPayment     = "✓ Pago confirmado - PatriPsicología"
)

var errUnknownEventType = fmt.Errorf("unknown notification event type")

// Render produces the Spanish subject and HTML body for an event.
func Render(event Event, appURL string) (subject, body string, err error) {
	switch event.Type {
	case EventTypeWelcome:
		return subjectWelcome, renderWelcome(event, appURL), nil
	case EventTypeAppointmentConfirmation:
		return subjectAppointment, renderAppointment(event), nil
	case EventTypePaymentConfirmation:
		return subjectPayment, renderPayment(event, appURL), nil
	default:
		return "", "", fmt.Errorf("%w: %s", errUnknownEventType, event.Type)
	}
}

func layout(headerColor, header, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <style>
      body { font-family: Inter, Arial, sans-serif; line-height: 1.6; color: #4E443A; background-color: #FDFBF5; }
      .container { max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { background-color: %s; color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0; }
      .content { background-color: white; padding: 30px; border-radius: 0 0 8px 8px; }
      .detail-box { background-color: #F0EDE7; padding: 20px; border-radius: 6px; margin: 20px 0; }
      .date-time { font-size: 24px; font-weight: bold; color: #C6A969; margin: 10px 0; }
      .button { display: inline-block; background-color: #C6A969; color: white; padding: 12px 30px; text-decoration: none; border-radius: 6px; margin: 20px 0; }
      .footer { text-align: center; padding: 20px; color: #8B7E74; font-size: 14px; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <h1>%s</h1>
      </div>
      <div class="content">
%s
      </div>
      <div class="footer">
        <p>PatriPsicología - Tu bienestar es nuestra prioridad</p>
      </div>
    </div>
  </body>
</html>`, headerColor, header, content)
}

func renderWelcome(event Event, appURL string) string {
	content := fmt.Sprintf(`        <h2>¡Hola %s!</h2>
        <p>Nos alegra darte la bienvenida a PatriPsicología, tu plataforma de psicología y bienestar.</p>
        <p>Aquí encontrarás:</p>
        <ul>
          <li>Cursos online especializados en gestión emocional</li>
          <li>Sesiones de terapia con profesionales certificados</li>
          <li>Recursos y artículos sobre salud mental</li>
        </ul>
        <p>Estamos aquí para acompañarte en tu camino hacia el bienestar emocional.</p>
        <a href="%s/cursos" class="button">Explorar Cursos</a>`, event.RecipientName, appURL)

	return layout("#C6A969", "PatriPsicología", content)
}

func renderAppointment(event Event) string {
	content := fmt.Sprintf(`        <h2>Hola %s,</h2>
        <p>Tu cita de terapia ha sido confirmada exitosamente.</p>
        <div class="detail-box">
          <p><strong>Fecha de tu cita:</strong></p>
          <p class="date-time">%s</p>
          <p class="date-time">%s</p>
        </div>
        <p><strong>¿Qué necesitas saber?</strong></p>
        <ul>
          <li>Recibirás un recordatorio 24 horas antes de tu cita</li>
          <li>La sesión se realizará por videollamada</li>
          <li>Duración aproximada: 50 minutos</li>
          <li>Ten un espacio tranquilo y privado preparado</li>
        </ul>
        <p>Si necesitas reagendar o cancelar, por favor contáctanos con al menos 24 horas de anticipación.</p>`,
		event.RecipientName, event.AppointmentDate, event.AppointmentTime)

	return layout("#C6A969", "Cita Confirmada", content)
}

func renderPayment(event Event, appURL string) string {
	content := fmt.Sprintf(`        <h2>Hola %s,</h2>
        <p>Tu pago ha sido procesado exitosamente. Ya puedes acceder a tu curso.</p>
        <div class="detail-box">
          <p><strong>Curso:</strong> %s</p>
          <p><strong>Monto:</strong> €%.2f</p>
          <p><strong>Fecha:</strong> %s</p>
        </div>
        <p>Hemos enviado un recibo completo a tu correo electrónico.</p>
        <a href="%s/acceso-alumnos" class="button">Ir a Mis Cursos</a>`,
		event.RecipientName, event.CourseName, float64(event.AmountCents)/100, event.PaymentDate, appURL)

	return layout("#22C55E", "¡Pago Confirmado!", content)
}
