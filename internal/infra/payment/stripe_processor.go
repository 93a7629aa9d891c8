// Package payment implements the card-charge boundary on top of Stripe.
package payment

import (
	"context"
	"log/slog"
	"strings"

	"bistro/config"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

// stripePaymentIntentAPI is the slice of the Stripe client the processor
// actually calls, kept narrow so tests can substitute it.
type stripePaymentIntentAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// stripeProcessor implements the service.PaymentProcessor interface.
type stripeProcessor struct {
	intents  stripePaymentIntentAPI
	currency string
	logger   *slog.Logger
}

// NewStripeProcessor is the constructor for stripeProcessor.
func NewStripeProcessor(cfg *config.Config, logger *slog.Logger) (service.PaymentProcessor, error) {
	if cfg.Payment == nil || strings.TrimSpace(cfg.Payment.SecretKey) == "" {
		return nil, errors.New("stripe: secret key is required")
	}

	sc := client.New(cfg.Payment.SecretKey, nil)

	return &stripeProcessor{
		intents:  sc.PaymentIntents,
		currency: cfg.Payment.Currency,
		logger:   logger,
	}, nil
}

// Charge creates and immediately confirms a payment intent for the given
// tokenized payment method. The idempotency key makes client retries safe.
func (p *stripeProcessor) Charge(ctx context.Context, req *service.ChargeRequest) (*service.ChargeResult, error) {
	currency := req.Currency
	if currency == "" {
		currency = p.currency
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.AmountMinorUnits),
		Currency:      stripe.String(strings.ToLower(currency)),
		PaymentMethod: stripe.String(req.SourceToken),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx

	if key := strings.TrimSpace(req.IdempotencyKey); key != "" {
		params.SetIdempotencyKey(key)
	}
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	if req.ReceiptEmail != "" {
		params.ReceiptEmail = stripe.String(req.ReceiptEmail)
	}

	intent, err := p.intents.New(params)
	if err != nil {
		p.logger.ErrorContext(ctx, "stripe charge failed",
			slog.Int64("amount", req.AmountMinorUnits),
			slog.String("error", err.Error()),
		)

		return nil, domainerrors.ErrPaymentFailed.WrapMessage(err.Error())
	}

	p.logger.InfoContext(ctx, "stripe charge completed",
		slog.String("paymentIntent", intent.ID),
		slog.String("status", string(intent.Status)),
	)

	return &service.ChargeResult{
		ProviderChargeID: intent.ID,
		Status:           string(intent.Status),
	}, nil
}
