package handler

import (
	"net/http"
	"time"

	"bistro/internal/delivery/http/response"
	"bistro/internal/domain/entity"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DiscountHandler holds dependencies for discount code handlers.
type DiscountHandler struct {
	uc usecase.DiscountUsecase
}

// NewDiscountHandler is the constructor for DiscountHandler, injected by Fx.
func NewDiscountHandler(uc usecase.DiscountUsecase) *DiscountHandler {
	return &DiscountHandler{
		uc: uc,
	}
}

type validateDiscountRequest struct {
	Code        string          `json:"code" validate:"required"`
	OrderAmount decimal.Decimal `json:"orderAmount"`
}

type validateDiscountResponse struct {
	Valid          bool            `json:"valid"`
	Code           string          `json:"code"`
	DiscountType   string          `json:"discountType"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	Description    string          `json:"description,omitempty"`
}

type createDiscountRequest struct {
	Code               string           `json:"code" validate:"required"`
	DiscountType       string           `json:"discountType" validate:"required,oneof=percentage fixed"`
	DiscountValue      decimal.Decimal  `json:"discountValue"`
	MinimumOrderAmount *decimal.Decimal `json:"minimumOrderAmount"`
	MaxUses            *int             `json:"maxUses"`
	Description        string           `json:"description"`
	ExpiresAt          time.Time        `json:"expiresAt"`
}

// updateDiscountRequest is a partial payload; absent fields keep the stored
// values.
type updateDiscountRequest struct {
	DiscountType       *string          `json:"discountType" validate:"omitempty,oneof=percentage fixed"`
	DiscountValue      *decimal.Decimal `json:"discountValue"`
	MinimumOrderAmount *decimal.Decimal `json:"minimumOrderAmount"`
	MaxUses            *int             `json:"maxUses"`
	Description        *string          `json:"description"`
	Active             *bool            `json:"active"`
	ExpiresAt          *time.Time       `json:"expiresAt"`
}

type discountCodeResponse struct {
	ID                 string           `json:"id"`
	Code               string           `json:"code"`
	Active             bool             `json:"active"`
	DiscountType       string           `json:"discountType"`
	DiscountValue      decimal.Decimal  `json:"discountValue"`
	MinimumOrderAmount *decimal.Decimal `json:"minimumOrderAmount,omitempty"`
	MaxUses            *int             `json:"maxUses,omitempty"`
	CurrentUses        int              `json:"currentUses"`
	Description        string           `json:"description,omitempty"`
	ExpiresAt          time.Time        `json:"expiresAt"`
}

type redeemDiscountResponse struct {
	Code        string `json:"code"`
	CurrentUses int    `json:"currentUses"`
}

// Validate checks a code against an order amount without consuming a use.
func (h *DiscountHandler) Validate(c echo.Context) error {
	var req validateDiscountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid validation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	validation, err := h.uc.Validate(c.Request().Context(), req.Code, req.OrderAmount)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, validateDiscountResponse{
		Valid:          validation.Valid,
		Code:           validation.Code,
		DiscountType:   string(validation.DiscountType),
		DiscountAmount: validation.DiscountAmount,
		Description:    validation.Description,
	}, "")
}

// Increment consumes one use of a code.
func (h *DiscountHandler) Increment(c echo.Context) error {
	code := c.Param("code")

	newUses, err := h.uc.Redeem(c.Request().Context(), code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, redeemDiscountResponse{
		Code:        entity.NormalizeDiscountCode(code),
		CurrentUses: newUses,
	}, "Discount code redeemed")
}

// Get returns a single code regardless of its active flag.
func (h *DiscountHandler) Get(c echo.Context) error {
	code, err := h.uc.Get(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDiscountCodeResponse(code), "")
}

// ListActive returns all active codes.
func (h *DiscountHandler) ListActive(c echo.Context) error {
	codes, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]discountCodeResponse, 0, len(codes))
	for _, code := range codes {
		out = append(out, toDiscountCodeResponse(code))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// Create registers a new code.
func (h *DiscountHandler) Create(c echo.Context) error {
	var req createDiscountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount code input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	code, err := h.uc.Create(c.Request().Context(), &usecase.CreateDiscountInput{
		Code:               req.Code,
		DiscountType:       entity.DiscountType(req.DiscountType),
		DiscountValue:      req.DiscountValue,
		MinimumOrderAmount: req.MinimumOrderAmount,
		MaxUses:            req.MaxUses,
		Description:        req.Description,
		ExpiresAt:          req.ExpiresAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toDiscountCodeResponse(code), "Discount code created")
}

// Update applies the provided fields to an existing code.
func (h *DiscountHandler) Update(c echo.Context) error {
	var req updateDiscountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount code input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.UpdateDiscountInput{
		Code:               c.Param("code"),
		DiscountValue:      req.DiscountValue,
		MinimumOrderAmount: req.MinimumOrderAmount,
		MaxUses:            req.MaxUses,
		Description:        req.Description,
		Active:             req.Active,
		ExpiresAt:          req.ExpiresAt,
	}
	if req.DiscountType != nil {
		discountType := entity.DiscountType(*req.DiscountType)
		input.DiscountType = &discountType
	}

	code, err := h.uc.Update(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDiscountCodeResponse(code), "Discount code updated")
}

// Deactivate soft-deletes a code.
func (h *DiscountHandler) Deactivate(c echo.Context) error {
	if err := h.uc.Deactivate(c.Request().Context(), c.Param("code")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Discount code deactivated")
}

func toDiscountCodeResponse(code *entity.DiscountCode) discountCodeResponse {
	return discountCodeResponse{
		ID:                 code.UUID.String(),
		Code:               code.Code,
		Active:             code.Active,
		DiscountType:       string(code.Rule.DiscountType),
		DiscountValue:      code.Rule.DiscountValue,
		MinimumOrderAmount: code.Rule.MinimumOrderAmount,
		MaxUses:            code.Rule.MaxUses,
		CurrentUses:        code.Rule.CurrentUses,
		Description:        code.Rule.Description,
		ExpiresAt:          code.ExpiresAt,
	}
}
