// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// discountRepository implements the repository.DiscountCodeRepository interface.
type discountRepository struct {
	db *gorm.DB
}

// NewDiscountRepository is the constructor for discountRepository.
func NewDiscountRepository(db *gorm.DB) repository.DiscountCodeRepository {
	return &discountRepository{
		db: db,
	}
}

// FindActiveByCode retrieves an active code by its normalized string.
func (repo *discountRepository) FindActiveByCode(ctx context.Context, code string) (*entity.DiscountCode, error) {
	return repo.findByCode(ctx, code, true)
}

// FindByCode retrieves a code regardless of its active flag.
func (repo *discountRepository) FindByCode(ctx context.Context, code string) (*entity.DiscountCode, error) {
	return repo.findByCode(ctx, code, false)
}

func (repo *discountRepository) findByCode(ctx context.Context, code string, activeOnly bool) (*entity.DiscountCode, error) {
	var codeM model.DiscountCodeModel

	query := repo.db.WithContext(ctx).Where("code = ?", entity.NormalizeDiscountCode(code))
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiscountCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find discount code")
	}

	return toDiscountDomain(&codeM)
}

// ListActive retrieves all active codes, newest first.
func (repo *discountRepository) ListActive(ctx context.Context) ([]*entity.DiscountCode, error) {
	var codeModels []*model.DiscountCodeModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_dttm DESC").
		Find(&codeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list discount codes")
	}

	codes := make([]*entity.DiscountCode, 0, len(codeModels))
	for _, codeM := range codeModels {
		code, err := toDiscountDomain(codeM)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}

	return codes, nil
}

// Create persists a new code and backfills the generated identifiers.
func (repo *discountRepository) Create(ctx context.Context, code *entity.DiscountCode) error {
	codeM, err := fromDiscountDomain(code)
	if err != nil {
		return errors.Wrap(err, "failed to serialize discount rule")
	}
	if codeM.UUID == uuid.Nil {
		codeM.UUID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("discount code already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required discount code information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create discount code")
	}

	code.ID = codeM.ID
	code.UUID = codeM.UUID
	code.CreatedAt = codeM.CreatedAt
	code.UpdatedAt = codeM.UpdatedAt

	return nil
}

// Update overwrites a code's rule payload, active flag and expiry.
func (repo *discountRepository) Update(ctx context.Context, code *entity.DiscountCode) error {
	codeM, err := fromDiscountDomain(code)
	if err != nil {
		return errors.Wrap(err, "failed to serialize discount rule")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DiscountCodeModel{}).
		Where("code = ?", codeM.Code).
		Updates(map[string]interface{}{
			"data":         codeM.Data,
			"is_active":    codeM.IsActive,
			"expires_dttm": codeM.ExpiresDttm,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update discount code")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDiscountCodeNotFound
	}

	return nil
}

// Redeem bumps a code's use counter as one conditional update so concurrent
// redemptions can never push the counter past the configured maximum. The
// WHERE clause admits the row only while the counter is below the limit;
// losing racers simply affect zero rows.
func (repo *discountRepository) Redeem(ctx context.Context, code string) (int, error) {
	normalized := entity.NormalizeDiscountCode(code)

	var newUses []int
	err := repo.db.WithContext(ctx).Raw(`
		UPDATE discount_codes
		SET data = jsonb_set(data, '{CurrentUses}', to_jsonb(COALESCE((data->>'CurrentUses')::int, 0) + 1)),
		    updated_dttm = NOW()
		WHERE code = ?
		  AND is_active = true
		  AND (data->>'MaxUses' IS NULL
		       OR COALESCE((data->>'CurrentUses')::int, 0) < (data->>'MaxUses')::int)
		RETURNING (data->>'CurrentUses')::int`, normalized).
		Scan(&newUses).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to redeem discount code")
	}

	if len(newUses) > 0 {
		return newUses[0], nil
	}

	// No row updated: distinguish an exhausted code from a missing one.
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DiscountCodeModel{}).
		Where("code = ? AND is_active = ?", normalized, true).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to check discount code")
	}

	if count > 0 {
		return 0, repository.ErrDiscountCodeExhausted
	}

	return 0, repository.ErrDiscountCodeNotFound
}

// Deactivate soft-deletes a code by clearing its active flag.
func (repo *discountRepository) Deactivate(ctx context.Context, code string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DiscountCodeModel{}).
		Where("code = ?", entity.NormalizeDiscountCode(code)).
		Update("is_active", false)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate discount code")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDiscountCodeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDiscountDomain converts a GORM DiscountCodeModel to a domain DiscountCode entity.
func toDiscountDomain(data *model.DiscountCodeModel) (*entity.DiscountCode, error) {
	if data == nil {
		return nil, nil
	}

	var rule entity.DiscountRule
	if len(data.Data) > 0 {
		if err := json.Unmarshal(data.Data, &rule); err != nil {
			return nil, errors.Wrap(err, "failed to decode discount rule")
		}
	}

	return &entity.DiscountCode{
		ID:        data.ID,
		UUID:      data.UUID,
		Code:      data.Code,
		Active:    data.IsActive,
		Rule:      rule,
		ExpiresAt: data.ExpiresDttm,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

// fromDiscountDomain converts a domain DiscountCode entity to a GORM DiscountCodeModel.
func fromDiscountDomain(data *entity.DiscountCode) (*model.DiscountCodeModel, error) {
	if data == nil {
		return nil, nil
	}

	ruleJSON, err := json.Marshal(data.Rule)
	if err != nil {
		return nil, err
	}

	return &model.DiscountCodeModel{
		ID:          data.ID,
		UUID:        data.UUID,
		Code:        entity.NormalizeDiscountCode(data.Code),
		Data:        datatypes.JSON(ruleJSON),
		IsActive:    data.Active,
		ExpiresDttm: data.ExpiresAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}
