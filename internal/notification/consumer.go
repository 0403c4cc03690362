package notification

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"

	"github.com/antoniomp17/WebPsicolog-a/config"
	"github.com/antoniomp17/WebPsicolog-a/infras/kafka"
	"github.com/antoniomp17/WebPsicolog-a/infras/otel"
	"github.com/antoniomp17/WebPsicolog-a/infras/smtp"
	"github.com/antoniomp17/WebPsicolog-a/shared/constant"
)

// Consumer reads notification events from kafka and delivers them as mail.
// Delivery failures are logged and the message is dropped, a broken mail
// setup must never wedge the consumer group.
type Consumer struct {
	client kafka.Client
	mailer smtp.Mailer
	config *config.Config
	otel   otel.Otel
}

func NewConsumer(client kafka.Client, mailer smtp.Mailer, config *config.Config, otel otel.Otel) *Consumer {
	return &Consumer{
		client: client,
		mailer: mailer,
		config: config,
		otel:   otel,
	}
}

func (c *Consumer) Run(ctx context.Context) {
	log.Info().Str("topic", c.config.Kafka.NotificationsTopic).Msg("starting notification consumer")

	c.client.Consume(ctx, c.config.Kafka.ConsumerGroup, c.config.Kafka.NotificationsTopic, func(message kafkaGo.Message) {
		c.handle(ctx, message)
	})
}

func (c *Consumer) handle(ctx context.Context, message kafkaGo.Message) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".HandleNotification")
	defer scope.End()

	var event Event

	if err := json.Unmarshal(message.Value, &event); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode notification event")

		return
	}

	scope.SetAttribute("event.type", event.Type)

	subject, body, err := Render(event, c.config.App.PublicURL)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("type", event.Type).Msg("failed to render notification")

		return
	}

	if err := c.mailer.Send(ctx, event.RecipientEmail, subject, body); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("to", event.RecipientEmail).Msg("failed to deliver notification")
	}
}
