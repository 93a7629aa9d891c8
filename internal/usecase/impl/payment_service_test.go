package impl

import (
	"context"
	"testing"

	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/service"
	"bistro/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcessor struct {
	lastRequest *service.ChargeRequest
	result      *service.ChargeResult
	err         error
}

var _ service.PaymentProcessor = (*fakeProcessor)(nil)

func (p *fakeProcessor) Charge(_ context.Context, req *service.ChargeRequest) (*service.ChargeResult, error) {
	p.lastRequest = req
	if p.err != nil {
		return nil, p.err
	}

	return p.result, nil
}

func TestPaymentService_Charge(t *testing.T) {
	processor := &fakeProcessor{
		result: &service.ChargeResult{ProviderChargeID: "pi_123", Status: "succeeded"},
	}
	svc := NewPaymentService(processor)

	output, err := svc.Charge(context.Background(), &usecase.ChargeInput{
		Amount:         decimal.RequireFromString("42.50"),
		SourceToken:    "pm_card_visa",
		IdempotencyKey: "order-abc",
		Description:    "Order from Misa's Thai Kitchen",
		ReceiptEmail:   "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_123", output.ChargeID)
	assert.Equal(t, "succeeded", output.Status)

	require.NotNil(t, processor.lastRequest)
	assert.Equal(t, int64(4250), processor.lastRequest.AmountMinorUnits)
	assert.Equal(t, "pm_card_visa", processor.lastRequest.SourceToken)
	assert.Equal(t, "order-abc", processor.lastRequest.IdempotencyKey)
	assert.Equal(t, "alice@example.com", processor.lastRequest.ReceiptEmail)
}

func TestPaymentService_Charge_Validation(t *testing.T) {
	processor := &fakeProcessor{}
	svc := NewPaymentService(processor)

	_, err := svc.Charge(context.Background(), &usecase.ChargeInput{
		Amount: decimal.RequireFromString("10.00"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.Charge(context.Background(), &usecase.ChargeInput{
		Amount:      decimal.Zero,
		SourceToken: "pm_card_visa",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	assert.Nil(t, processor.lastRequest, "invalid input never reaches the provider")
}

func TestPaymentService_Charge_ProviderError(t *testing.T) {
	processor := &fakeProcessor{err: domainerrors.ErrPaymentFailed.WithDetails("card declined")}
	svc := NewPaymentService(processor)

	_, err := svc.Charge(context.Background(), &usecase.ChargeInput{
		Amount:      decimal.RequireFromString("10.00"),
		SourceToken: "pm_card_visa",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentFailed)
}

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		amount string
		want   int64
	}{
		{"42.50", 4250},
		{"0.01", 1},
		{"10", 1000},
		{"19.995", 2000},
		{"19.994", 1999},
	}
	for _, tc := range cases {
		got := toMinorUnits(decimal.RequireFromString(tc.amount))
		assert.Equal(t, tc.want, got, "amount %s", tc.amount)
	}
}
