package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"bistro/config"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/domain/service"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutFixture() (*checkoutService, *fakeRepoFactory, *fakeMailer) {
	factory := &fakeRepoFactory{
		customerRepo: &fakeCustomerRepo{},
		orderRepo:    &fakeOrderRepo{},
		cateringRepo: &fakeCateringRepo{},
	}
	mailer := newFakeMailer()
	cfg := &config.Config{
		Restaurant: &config.RestaurantConfig{
			Name:              "Misa's Thai Kitchen",
			NotificationEmail: "orders@example.com",
			ContactEmail:      "hello@example.com",
			ContactPhone:      "555-0100",
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCheckoutService(&fakeTxManager{factory: factory}, mailer, cfg, logger).(*checkoutService)

	return svc, factory, mailer
}

func orderInput() *usecase.SubmitOrderInput {
	return &usecase.SubmitOrderInput{
		CustomerName:    "Alice Example",
		CustomerEmail:   "alice@example.com",
		CustomerPhone:   "555-1111",
		DeliveryAddress: "12 Main St",
		DeliveryDate:    "12/25/2025 (Thursday)",
		Items: []entity.CartItem{
			{ItemName: "Phad Thai", Quantity: 2, Price: decimal.RequireFromString("15.00")},
		},
		Total: decimal.RequireFromString("42.50"),
	}
}

func TestCheckoutService_SubmitOrder_NewCustomer(t *testing.T) {
	svc, factory, _ := newCheckoutFixture()

	output, err := svc.SubmitOrder(context.Background(), orderInput())
	require.NoError(t, err)
	require.NotNil(t, output)

	require.Len(t, factory.customerRepo.customers, 1)
	customer := factory.customerRepo.customers[0]
	assert.Equal(t, "Alice Example", customer.Name)
	assert.Equal(t, 1, customer.Stats.Orders)
	assert.Equal(t, 0, customer.Stats.CateringRequests)
	assert.True(t, customer.Stats.TotalSpent.Equal(decimal.RequireFromString("42.50")))

	require.Len(t, factory.orderRepo.orders, 1)
	order := factory.orderRepo.orders[0]
	assert.Equal(t, customer.ID, order.CustomerID)
	assert.Equal(t, time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC), order.DeliveryDate)

	assert.Equal(t, order.UUID, output.SubmissionUUID)
	assert.Equal(t, customer.UUID, output.CustomerUUID)
}

func TestCheckoutService_SubmitOrder_ExistingCustomerAggregates(t *testing.T) {
	svc, factory, _ := newCheckoutFixture()

	stats, err := entity.ParseCustomerStats([]byte(`{"number_of_orders":4,"total_spent":100,"favorite_dish":"green curry"}`))
	require.NoError(t, err)
	factory.customerRepo.customers = []*entity.Customer{{
		ID:    7,
		Name:  "Alice Example",
		Email: "alice@example.com",
		Phone: "555-1111",
		Stats: stats,
	}}
	factory.customerRepo.nextID = 7

	_, err = svc.SubmitOrder(context.Background(), orderInput())
	require.NoError(t, err)

	require.Len(t, factory.customerRepo.customers, 1)
	customer := factory.customerRepo.customers[0]
	assert.Equal(t, int64(7), customer.ID)
	assert.Equal(t, 5, customer.Stats.Orders)
	assert.True(t, customer.Stats.TotalSpent.Equal(decimal.RequireFromString("142.50")))

	// Keys the pipeline does not understand ride along untouched.
	out, err := json.Marshal(customer.Stats)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"favorite_dish":"green curry"`)
}

func TestCheckoutService_SubmitOrder_FallbackToEmailAndOverwritesPhone(t *testing.T) {
	svc, factory, _ := newCheckoutFixture()

	factory.customerRepo.customers = []*entity.Customer{{
		ID:    3,
		Name:  "Alice Example",
		Email: "alice@example.com",
		Phone: "555-9999",
	}}
	factory.customerRepo.nextID = 3

	input := orderInput()
	input.CustomerPhone = "555-2222"

	_, err := svc.SubmitOrder(context.Background(), input)
	require.NoError(t, err)

	// The exact pair missed, the email matched, and the submitted phone won.
	require.Len(t, factory.customerRepo.customers, 1)
	assert.Equal(t, "555-2222", factory.customerRepo.customers[0].Phone)
}

func TestCheckoutService_SubmitOrder_RollsBackCustomerOnOrderFailure(t *testing.T) {
	svc, factory, _ := newCheckoutFixture()
	factory.orderRepo.createErr = errors.New("insert failed")

	_, err := svc.SubmitOrder(context.Background(), orderInput())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TRANSACTION_FAILED", appErr.ErrorCode())

	assert.Empty(t, factory.customerRepo.customers)
	assert.Empty(t, factory.orderRepo.orders)
}

func TestCheckoutService_SubmitOrder_StoreUnreachable(t *testing.T) {
	svc, _, _ := newCheckoutFixture()
	svc.txManager = &fakeTxManager{
		beginErr: fmt.Errorf("%w: dial tcp 127.0.0.1:5432: connect: connection refused", repository.ErrStoreUnreachable),
	}

	_, err := svc.SubmitOrder(context.Background(), orderInput())
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)

	_, err = svc.SubmitCatering(context.Background(), &usecase.SubmitCateringInput{
		CustomerName:  "Bob Example",
		CustomerEmail: "bob@example.com",
		EventAddress:  "99 Party Ln",
		EventDate:     "2026-01-15",
	})
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}

func TestCheckoutService_SubmitOrder_RejectsMissingContact(t *testing.T) {
	svc, _, _ := newCheckoutFixture()

	input := orderInput()
	input.CustomerEmail = ""
	input.CustomerPhone = ""

	_, err := svc.SubmitOrder(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidIdentity)
}

func TestCheckoutService_SubmitOrder_RejectsUnparsableDate(t *testing.T) {
	svc, _, _ := newCheckoutFixture()

	input := orderInput()
	input.DeliveryDate = "next tuesday"

	_, err := svc.SubmitOrder(context.Background(), input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_DELIVERY_DATE", appErr.ErrorCode())
}

func TestCheckoutService_SubmitOrder_SendsBothEmails(t *testing.T) {
	svc, _, mailer := newCheckoutFixture()

	_, err := svc.SubmitOrder(context.Background(), orderInput())
	require.NoError(t, err)

	recipients := map[string]bool{}
	for range 2 {
		select {
		case message := <-mailer.sent:
			recipients[message.To] = true
			assert.NotEmpty(t, message.HTMLBody)
			assert.NotEmpty(t, message.PlainTextBody)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for confirmation email")
		}
	}

	assert.True(t, recipients["alice@example.com"])
	assert.True(t, recipients["orders@example.com"])
}

func TestCheckoutService_SubmitCatering_CountsCateringChannel(t *testing.T) {
	svc, factory, _ := newCheckoutFixture()

	consented := true
	factory.customerRepo.customers = []*entity.Customer{{
		ID:               2,
		Name:             "Bob Example",
		Email:            "bob@example.com",
		Phone:            "555-3333",
		ConsentToUpdates: consented,
	}}
	factory.customerRepo.nextID = 2

	output, err := svc.SubmitCatering(context.Background(), &usecase.SubmitCateringInput{
		CustomerName:  "Bob Example",
		CustomerEmail: "bob@example.com",
		CustomerPhone: "555-3333",
		EventAddress:  "99 Party Ln",
		EventDate:     "2026-01-15",
		EventDetails:  "Office lunch for 30",
		Total:         decimal.RequireFromString("450.00"),
	})
	require.NoError(t, err)
	require.NotNil(t, output)

	require.Len(t, factory.customerRepo.customers, 1)
	customer := factory.customerRepo.customers[0]
	assert.Equal(t, 0, customer.Stats.Orders)
	assert.Equal(t, 1, customer.Stats.CateringRequests)
	assert.True(t, customer.Stats.TotalSpent.Equal(decimal.RequireFromString("450.00")))

	// The catering form carries no consent field, so the stored flag stands.
	assert.True(t, customer.ConsentToUpdates)

	require.Len(t, factory.cateringRepo.requests, 1)
	assert.Equal(t, "Office lunch for 30", factory.cateringRepo.requests[0].Payload.EventDetails)
}

func TestParseDeliveryDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "slash format with day name",
			input: "12/25/2025 (Thursday)",
			want:  time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "iso format",
			input: "2026-01-15",
			want:  time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "long format",
			input: "January 15, 2026",
			want:  time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "single digit month and day",
			input: "1/5/2026",
			want:  time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "empty",
			input:   "  ",
			wantErr: true,
		},
		{
			name:    "unparsable",
			input:   "sometime soon",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDeliveryDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s", got)
		})
	}
}

var _ service.Mailer = (*fakeMailer)(nil)
