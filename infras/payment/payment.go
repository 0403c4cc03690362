package payment

//go:generate go run go.uber.org/mock/mockgen -source=./payment.go -destination=./mocks/payment_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"

	"github.com/antoniomp17/WebPsicolog-a/config"
	"github.com/antoniomp17/WebPsicolog-a/infras/otel"
	"github.com/antoniomp17/WebPsicolog-a/shared/constant"
)

const (
	otelAttrReference = "payment.reference"
	otelAttrAmount    = "payment.amount"
)

type CheckoutRequest struct {
	Reference     string
	Description   string
	CustomerEmail string
	AmountCents   int64
	Currency      string
	Metadata      map[string]string
}

type CheckoutSession struct {
	ID  string
	URL string
}

type Gateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
}

type gatewayImpl struct {
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Gateway {
	stripe.Key = config.External.Stripe.SecretKey

	return &gatewayImpl{
		config: config,
		otel:   otel,
	}
}

func (g *gatewayImpl) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (res CheckoutSession, err error) {
	_, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".CreateCheckoutSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrReference: req.Reference,
		otelAttrAmount:    req.AmountCents,
	})

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(req.CustomerEmail),
		SuccessURL:    stripe.String(g.config.External.Stripe.SuccessURL),
		CancelURL:     stripe.String(g.config.External.Stripe.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(req.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}

	params.Context = ctx
	// One session per enrollment, retried calls reuse it.
	params.SetIdempotencyKey(req.Reference)

	for key, value := range req.Metadata {
		params.AddMetadata(key, value)
	}

	checkoutSession, err := session.New(params)
	if err != nil {
		log.Error().Err(err).Str("reference", req.Reference).Msg("failed to create checkout session")

		return res, fmt.Errorf("failed to create checkout session: %w", err)
	}

	res = CheckoutSession{
		ID:  checkoutSession.ID,
		URL: checkoutSession.URL,
	}

	return res, nil
}
