package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDiscountRepo struct {
	codes map[string]*entity.DiscountCode
}

var _ repository.DiscountCodeRepository = (*fakeDiscountRepo)(nil)

func newFakeDiscountRepo(codes ...*entity.DiscountCode) *fakeDiscountRepo {
	repo := &fakeDiscountRepo{codes: map[string]*entity.DiscountCode{}}
	for _, code := range codes {
		repo.codes[code.Code] = code
	}

	return repo
}

func (r *fakeDiscountRepo) FindActiveByCode(_ context.Context, code string) (*entity.DiscountCode, error) {
	found, ok := r.codes[entity.NormalizeDiscountCode(code)]
	if !ok || !found.Active {
		return nil, repository.ErrDiscountCodeNotFound
	}
	clone := *found

	return &clone, nil
}

func (r *fakeDiscountRepo) FindByCode(_ context.Context, code string) (*entity.DiscountCode, error) {
	found, ok := r.codes[entity.NormalizeDiscountCode(code)]
	if !ok {
		return nil, repository.ErrDiscountCodeNotFound
	}
	clone := *found

	return &clone, nil
}

func (r *fakeDiscountRepo) ListActive(_ context.Context) ([]*entity.DiscountCode, error) {
	var out []*entity.DiscountCode
	for _, code := range r.codes {
		if code.Active {
			clone := *code
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (r *fakeDiscountRepo) Create(_ context.Context, code *entity.DiscountCode) error {
	clone := *code
	r.codes[code.Code] = &clone

	return nil
}

func (r *fakeDiscountRepo) Update(_ context.Context, code *entity.DiscountCode) error {
	if _, ok := r.codes[code.Code]; !ok {
		return repository.ErrDiscountCodeNotFound
	}
	clone := *code
	r.codes[code.Code] = &clone

	return nil
}

func (r *fakeDiscountRepo) Redeem(_ context.Context, code string) (int, error) {
	found, ok := r.codes[entity.NormalizeDiscountCode(code)]
	if !ok || !found.Active {
		return 0, repository.ErrDiscountCodeNotFound
	}
	if found.Rule.Exhausted() {
		return 0, repository.ErrDiscountCodeExhausted
	}
	found.Rule.CurrentUses++

	return found.Rule.CurrentUses, nil
}

func (r *fakeDiscountRepo) Deactivate(_ context.Context, code string) error {
	found, ok := r.codes[entity.NormalizeDiscountCode(code)]
	if !ok {
		return repository.ErrDiscountCodeNotFound
	}
	found.Active = false

	return nil
}

func newDiscountFixture(codes ...*entity.DiscountCode) (*discountService, *fakeDiscountRepo) {
	repo := newFakeDiscountRepo(codes...)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewDiscountService(repo, logger).(*discountService)

	return svc, repo
}

func save10(mutate ...func(*entity.DiscountCode)) *entity.DiscountCode {
	code := &entity.DiscountCode{
		Code:      "SAVE10",
		Active:    true,
		ExpiresAt: time.Now().Add(24 * time.Hour),
		Rule: entity.DiscountRule{
			DiscountType:  entity.DiscountTypePercentage,
			DiscountValue: decimal.RequireFromString("10"),
			Description:   "Ten percent off",
		},
	}
	for _, fn := range mutate {
		fn(code)
	}

	return code
}

func TestDiscountService_Validate_Percentage(t *testing.T) {
	svc, _ := newDiscountFixture(save10())

	validation, err := svc.Validate(context.Background(), "save10", decimal.RequireFromString("50.00"))
	require.NoError(t, err)
	assert.True(t, validation.Valid)
	assert.Equal(t, "SAVE10", validation.Code)
	assert.True(t, validation.DiscountAmount.Equal(decimal.RequireFromString("5.00")), "got %s", validation.DiscountAmount)
	assert.Equal(t, "Ten percent off", validation.Description)
}

func TestDiscountService_Validate_NotFound(t *testing.T) {
	svc, _ := newDiscountFixture()

	_, err := svc.Validate(context.Background(), "NOPE", decimal.RequireFromString("50.00"))
	assert.ErrorIs(t, err, domainerrors.ErrCodeNotFound)

	_, err = svc.Validate(context.Background(), "  ", decimal.RequireFromString("50.00"))
	assert.ErrorIs(t, err, domainerrors.ErrCodeNotFound)
}

func TestDiscountService_Validate_InactiveIsNotFound(t *testing.T) {
	svc, _ := newDiscountFixture(save10(func(c *entity.DiscountCode) { c.Active = false }))

	_, err := svc.Validate(context.Background(), "SAVE10", decimal.RequireFromString("50.00"))
	assert.ErrorIs(t, err, domainerrors.ErrCodeNotFound)
}

func TestDiscountService_Validate_Expired(t *testing.T) {
	svc, _ := newDiscountFixture(save10(func(c *entity.DiscountCode) {
		c.ExpiresAt = time.Now().Add(-time.Minute)
	}))

	_, err := svc.Validate(context.Background(), "SAVE10", decimal.RequireFromString("50.00"))
	assert.ErrorIs(t, err, domainerrors.ErrCodeExpired)
}

func TestDiscountService_Validate_ExpiringExactlyNowIsExpired(t *testing.T) {
	expiry := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	svc, _ := newDiscountFixture(save10(func(c *entity.DiscountCode) {
		c.ExpiresAt = expiry
	}))
	svc.now = func() time.Time { return expiry }

	_, err := svc.Validate(context.Background(), "SAVE10", decimal.RequireFromString("50.00"))
	assert.ErrorIs(t, err, domainerrors.ErrCodeExpired)

	// One second earlier the code is still usable.
	svc.now = func() time.Time { return expiry.Add(-time.Second) }
	validation, err := svc.Validate(context.Background(), "SAVE10", decimal.RequireFromString("50.00"))
	require.NoError(t, err)
	assert.True(t, validation.Valid)
}

func TestDiscountService_Validate_MinimumNotMet(t *testing.T) {
	minimum := decimal.RequireFromString("25.00")
	svc, _ := newDiscountFixture(save10(func(c *entity.DiscountCode) {
		c.Rule.MinimumOrderAmount = &minimum
	}))

	_, err := svc.Validate(context.Background(), "SAVE10", decimal.RequireFromString("20.00"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "MINIMUM_NOT_MET", appErr.ErrorCode())

	// Meeting the minimum exactly is enough.
	validation, err := svc.Validate(context.Background(), "SAVE10", decimal.RequireFromString("25.00"))
	require.NoError(t, err)
	assert.True(t, validation.Valid)
}

func TestDiscountService_Validate_MaxUsesReached(t *testing.T) {
	three := 3
	svc, _ := newDiscountFixture(save10(func(c *entity.DiscountCode) {
		c.Rule.MaxUses = &three
		c.Rule.CurrentUses = 3
	}))

	_, err := svc.Validate(context.Background(), "SAVE10", decimal.RequireFromString("50.00"))
	assert.ErrorIs(t, err, domainerrors.ErrMaxUsesReached)
}

func TestDiscountService_Redeem(t *testing.T) {
	one := 1
	svc, repo := newDiscountFixture(save10(func(c *entity.DiscountCode) {
		c.Rule.MaxUses = &one
	}))

	uses, err := svc.Redeem(context.Background(), "save10")
	require.NoError(t, err)
	assert.Equal(t, 1, uses)
	assert.Equal(t, 1, repo.codes["SAVE10"].Rule.CurrentUses)

	// The limit has been hit; the next redemption is refused.
	_, err = svc.Redeem(context.Background(), "SAVE10")
	assert.ErrorIs(t, err, domainerrors.ErrMaxUsesReached)

	_, err = svc.Redeem(context.Background(), "MISSING")
	assert.ErrorIs(t, err, domainerrors.ErrCodeNotFound)
}

func TestDiscountService_CreateAndUpdate(t *testing.T) {
	svc, repo := newDiscountFixture(save10(func(c *entity.DiscountCode) {
		c.Rule.CurrentUses = 5
	}))

	created, err := svc.Create(context.Background(), &usecase.CreateDiscountInput{
		Code:          "welcome5",
		DiscountType:  entity.DiscountTypeFixed,
		DiscountValue: decimal.RequireFromString("5.00"),
		Description:   "Five off your first order",
		ExpiresAt:     time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "WELCOME5", created.Code)
	assert.True(t, created.Active)
	assert.Contains(t, repo.codes, "WELCOME5")

	ten := 10
	fifteen := decimal.RequireFromString("15")
	description := "Now fifteen percent off"
	updated, err := svc.Update(context.Background(), &usecase.UpdateDiscountInput{
		Code:          "SAVE10",
		DiscountValue: &fifteen,
		MaxUses:       &ten,
		Description:   &description,
	})
	require.NoError(t, err)
	assert.True(t, updated.Rule.DiscountValue.Equal(fifteen))
	assert.Equal(t, 5, updated.Rule.CurrentUses, "use count survives the update")
	assert.Equal(t, 5, repo.codes["SAVE10"].Rule.CurrentUses)

	_, err = svc.Update(context.Background(), &usecase.UpdateDiscountInput{Code: "MISSING"})
	assert.ErrorIs(t, err, domainerrors.ErrCodeNotFound)
}

func TestDiscountService_Update_PartialFieldsPreserved(t *testing.T) {
	minimum := decimal.RequireFromString("25.00")
	two := 2
	expiry := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	svc, repo := newDiscountFixture(save10(func(c *entity.DiscountCode) {
		c.Rule.MinimumOrderAmount = &minimum
		c.Rule.MaxUses = &two
		c.Rule.CurrentUses = 1
		c.ExpiresAt = expiry
	}))

	// Only the type, value and description change; everything else stays.
	fixed := entity.DiscountTypeFixed
	five := decimal.RequireFromString("5.00")
	description := "Five dollars off"
	updated, err := svc.Update(context.Background(), &usecase.UpdateDiscountInput{
		Code:          "SAVE10",
		DiscountType:  &fixed,
		DiscountValue: &five,
		Description:   &description,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DiscountTypeFixed, updated.Rule.DiscountType)
	assert.True(t, updated.ExpiresAt.Equal(expiry), "expiry survives a partial update")
	require.NotNil(t, updated.Rule.MinimumOrderAmount)
	assert.True(t, updated.Rule.MinimumOrderAmount.Equal(minimum), "minimum survives a partial update")
	require.NotNil(t, updated.Rule.MaxUses)
	assert.Equal(t, 2, *updated.Rule.MaxUses)
	assert.Equal(t, 1, updated.Rule.CurrentUses)
	assert.True(t, updated.Active)
	assert.True(t, repo.codes["SAVE10"].ExpiresAt.Equal(expiry))
}

func TestDiscountService_Update_TogglesActive(t *testing.T) {
	svc, repo := newDiscountFixture(save10(func(c *entity.DiscountCode) { c.Active = false }))

	active := true
	updated, err := svc.Update(context.Background(), &usecase.UpdateDiscountInput{
		Code:   "SAVE10",
		Active: &active,
	})
	require.NoError(t, err)
	assert.True(t, updated.Active)
	assert.True(t, repo.codes["SAVE10"].Active)
	assert.Equal(t, entity.DiscountTypePercentage, updated.Rule.DiscountType, "rule is untouched")
}

func TestDiscountService_Create_RejectsPastExpiry(t *testing.T) {
	svc, repo := newDiscountFixture()

	_, err := svc.Create(context.Background(), &usecase.CreateDiscountInput{
		Code:          "stale",
		DiscountType:  entity.DiscountTypeFixed,
		DiscountValue: decimal.RequireFromString("5.00"),
		ExpiresAt:     time.Now().Add(-time.Hour),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Empty(t, repo.codes)
}

func TestDiscountService_Get(t *testing.T) {
	svc, _ := newDiscountFixture(save10(func(c *entity.DiscountCode) { c.Active = false }))

	// Get sees inactive codes, unlike Validate.
	code, err := svc.Get(context.Background(), "save10")
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", code.Code)
	assert.False(t, code.Active)

	_, err = svc.Get(context.Background(), "MISSING")
	assert.ErrorIs(t, err, domainerrors.ErrCodeNotFound)
}

func TestDiscountService_Deactivate(t *testing.T) {
	svc, repo := newDiscountFixture(save10())

	require.NoError(t, svc.Deactivate(context.Background(), "SAVE10"))
	assert.False(t, repo.codes["SAVE10"].Active)

	assert.ErrorIs(t, svc.Deactivate(context.Background(), "MISSING"), domainerrors.ErrCodeNotFound)
}
