// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"bistro/config"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/lifecycle"
	"bistro/internal/domain/repository"
	"bistro/internal/domain/service"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// parenthesizedSegment matches the day-name suffix some storefront date
// pickers append, e.g. "12/25/2025 (Thursday)".
var parenthesizedSegment = regexp.MustCompile(`\s*\([^)]*\)`)

// deliveryDateLayouts are tried in order against the cleaned date string.
var deliveryDateLayouts = []string{
	"1/2/2006",
	"2006-01-02",
	"January 2, 2006",
}

type checkoutService struct {
	txManager  repository.TransactionManager
	mailer     service.Mailer
	restaurant *config.RestaurantConfig
	logger     *slog.Logger
}

// NewCheckoutService creates a new checkout service instance.
func NewCheckoutService(
	txManager repository.TransactionManager,
	mailer service.Mailer,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager:  txManager,
		mailer:     mailer,
		restaurant: cfg.Restaurant,
		logger:     logger,
	}
}

// SubmitOrder records a standard-channel order: the contact fields resolve to
// a canonical customer, the order folds into that customer's aggregates, and
// both writes commit as one transaction.
func (s *checkoutService) SubmitOrder(ctx context.Context, input *usecase.SubmitOrderInput) (*usecase.CheckoutOutput, error) {
	identity := entity.Identity{
		Name:    input.CustomerName,
		Email:   input.CustomerEmail,
		Phone:   input.CustomerPhone,
		Consent: input.ConsentToUpdates,
	}
	if !identity.Resolvable() {
		return nil, domainerrors.ErrInvalidIdentity
	}

	deliveryDate, err := parseDeliveryDate(input.DeliveryDate)
	if err != nil {
		return nil, domainerrors.ErrInvalidDeliveryDate.WithDetails(err.Error())
	}

	var (
		customer *entity.Customer
		order    *entity.Order
	)

	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		resolved, err := s.resolveAndRecord(ctx, f.CustomerRepo(), identity, entity.ChannelOrder, input.Total)
		if err != nil {
			return err
		}
		customer = resolved

		order = &entity.Order{
			CustomerID:      customer.ID,
			CustomerName:    input.CustomerName,
			CustomerEmail:   input.CustomerEmail,
			CustomerPhone:   input.CustomerPhone,
			DeliveryAddress: input.DeliveryAddress,
			DeliveryDate:    deliveryDate,
			Total:           input.Total,
			Tip:             input.Tip,
			Discount:        input.Discount,
			Payload: entity.OrderPayload{
				Items:          input.Items,
				AdditionalInfo: input.AdditionalInfo,
				PaymentToken:   input.PaymentToken,
				SalesTax:       input.SalesTax,
				DiscountCode:   input.DiscountCode,
			},
		}

		return f.OrderRepo().Create(ctx, order)
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}

		s.logger.ErrorContext(ctx, "order submission failed", slog.String("error", err.Error()))

		if errors.Is(err, repository.ErrStoreUnreachable) {
			return nil, domainerrors.ErrStoreUnavailable
		}

		return nil, domainerrors.ErrTransactionFailed.WithDetails(err.Error())
	}

	s.dispatchEmails(renderOrderEmails(s.restaurant, order))

	return &usecase.CheckoutOutput{
		SubmissionUUID: order.UUID,
		CustomerUUID:   customer.UUID,
		CustomerID:     customer.ID,
	}, nil
}

// SubmitCatering records a catering-channel request. The catering form does
// not collect consent, so the stored flag is never touched on this channel.
func (s *checkoutService) SubmitCatering(ctx context.Context, input *usecase.SubmitCateringInput) (*usecase.CheckoutOutput, error) {
	identity := entity.Identity{
		Name:  input.CustomerName,
		Email: input.CustomerEmail,
		Phone: input.CustomerPhone,
	}
	if !identity.Resolvable() {
		return nil, domainerrors.ErrInvalidIdentity
	}

	eventDate, err := parseDeliveryDate(input.EventDate)
	if err != nil {
		return nil, domainerrors.ErrInvalidDeliveryDate.WithDetails(err.Error())
	}

	var (
		customer *entity.Customer
		request  *entity.CateringRequest
	)

	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		resolved, err := s.resolveAndRecord(ctx, f.CustomerRepo(), identity, entity.ChannelCatering, input.Total)
		if err != nil {
			return err
		}
		customer = resolved

		request = &entity.CateringRequest{
			CustomerID:    customer.ID,
			CustomerName:  input.CustomerName,
			CustomerEmail: input.CustomerEmail,
			CustomerPhone: input.CustomerPhone,
			EventAddress:  input.EventAddress,
			EventDate:     eventDate,
			Total:         input.Total,
			Payload: entity.CateringPayload{
				EventDetails:        input.EventDetails,
				SpecialInstructions: input.SpecialInstructions,
				Cart:                input.Cart,
			},
		}

		return f.CateringRepo().Create(ctx, request)
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}

		s.logger.ErrorContext(ctx, "catering submission failed", slog.String("error", err.Error()))

		if errors.Is(err, repository.ErrStoreUnreachable) {
			return nil, domainerrors.ErrStoreUnavailable
		}

		return nil, domainerrors.ErrTransactionFailed.WithDetails(err.Error())
	}

	s.dispatchEmails(renderCateringEmails(s.restaurant, request))

	return &usecase.CheckoutOutput{
		SubmissionUUID: request.UUID,
		CustomerUUID:   customer.UUID,
		CustomerID:     customer.ID,
	}, nil
}

// resolveAndRecord finds or creates the canonical customer for the identity,
// overwrites the contact fields with the submitted values, folds the
// submission into the customer's aggregates, and persists the result. Lookup
// tries the exact email+phone pair first, then email alone, then phone alone.
func (s *checkoutService) resolveAndRecord(
	ctx context.Context,
	customerRepo repository.CustomerRepository,
	identity entity.Identity,
	channel entity.Channel,
	total decimal.Decimal,
) (*entity.Customer, error) {
	customer, err := s.lookupCustomer(ctx, customerRepo, identity)
	if err != nil && !errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, err
	}

	if customer == nil {
		customer = &entity.Customer{}
	}

	// Last write wins on contact fields: a returning customer's latest
	// submission is treated as the freshest contact information.
	if identity.Name != "" {
		customer.Name = identity.Name
	}
	if identity.Email != "" {
		customer.Email = identity.Email
	}
	if identity.Phone != "" {
		customer.Phone = identity.Phone
	}
	if identity.Consent != nil {
		customer.ConsentToUpdates = *identity.Consent
	}

	customer.Stats.Record(channel, total)

	if customer.ID == 0 {
		if err := customerRepo.Create(ctx, customer); err != nil {
			return nil, err
		}

		return customer, nil
	}

	if err := customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

func (s *checkoutService) lookupCustomer(
	ctx context.Context,
	customerRepo repository.CustomerRepository,
	identity entity.Identity,
) (*entity.Customer, error) {
	if identity.Email != "" && identity.Phone != "" {
		customer, err := customerRepo.FindByEmailAndPhone(ctx, identity.Email, identity.Phone)
		if err == nil {
			return customer, nil
		}
		if !errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, err
		}
	}

	if identity.Email != "" {
		customer, err := customerRepo.FindByEmail(ctx, identity.Email)
		if err == nil {
			return customer, nil
		}
		if !errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, err
		}
	}

	if identity.Phone != "" {
		return customerRepo.FindByPhone(ctx, identity.Phone)
	}

	return nil, repository.ErrCustomerNotFound
}

// dispatchEmails sends confirmation mail in the background. Delivery is
// best-effort: a mail failure never affects the committed submission.
func (s *checkoutService) dispatchEmails(messages []*service.EmailMessage) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		for _, message := range messages {
			if err := s.mailer.Send(ctx, message); err != nil {
				s.logger.ErrorContext(ctx, "confirmation email failed",
					slog.String("to", message.To),
					slog.String("subject", message.Subject),
					slog.String("error", err.Error()),
				)
			}
		}
	}()
}

// parseDeliveryDate cleans a storefront date string and tries the known
// layouts in order.
func parseDeliveryDate(raw string) (time.Time, error) {
	cleaned := strings.TrimSpace(parenthesizedSegment.ReplaceAllString(raw, ""))
	if cleaned == "" {
		return time.Time{}, errors.New("delivery date is empty")
	}

	for _, layout := range deliveryDateLayouts {
		if parsed, err := time.Parse(layout, cleaned); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, errors.Errorf("unrecognized date format: %q", cleaned)
}
