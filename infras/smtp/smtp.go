package smtp

//go:generate go run go.uber.org/mock/mockgen -source=./smtp.go -destination=./mocks/smtp_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/antoniomp17/WebPsicolog-a/config"
	"github.com/antoniomp17/WebPsicolog-a/infras/otel"
	"github.com/antoniomp17/WebPsicolog-a/shared/constant"
)

const (
	otelAttrRecipient = "mail.to"
	otelAttrSubject   = "mail.subject"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type mailerImpl struct {
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Mailer {
	return &mailerImpl{
		config: config,
		otel:   otel,
	}
}

func (m *mailerImpl) Send(ctx context.Context, to, subject, body string) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".SendMail")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrRecipient: to,
		otelAttrSubject:   subject,
	})

	from := m.config.External.SMTP.From
	addr := net.JoinHostPort(m.config.External.SMTP.Host, m.config.External.SMTP.Port)

	err = smtp.SendMail(addr, nil, from, []string{to}, buildMessage(from, to, subject, body))
	if err != nil {
		log.Error().Err(err).Str("to", to).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("mail sent")

	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var builder strings.Builder

	builder.WriteString("From: " + from + "\r\n")
	builder.WriteString("To: " + to + "\r\n")
	builder.WriteString("Subject: " + subject + "\r\n")
	builder.WriteString("MIME-Version: 1.0\r\n")
	builder.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	builder.WriteString("\r\n")
	builder.WriteString(body)

	return []byte(builder.String())
}
