package notification

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/antoniomp17/WebPsicolog-a/config"
	"github.com/antoniomp17/WebPsicolog-a/infras/kafka"
	"github.com/antoniomp17/WebPsicolog-a/infras/otel"
	"github.com/antoniomp17/WebPsicolog-a/shared/constant"
)

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type publisherImpl struct {
	client kafka.Client
	config *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, config *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		config: config,
		otel:   otel,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, event Event) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("event.type", event.Type)

	message := kafka.Message{
		Key:   event.Type,
		Value: event,
	}

	err = p.client.SendMessages(ctx, p.config.Kafka.NotificationsTopic, message)
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("failed to publish notification event")

		return fmt.Errorf("failed to publish notification event: %w", err)
	}

	return nil
}
