// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"bistro/internal/delivery/http/response"
	"bistro/internal/domain/entity"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CheckoutHandler holds dependencies for the submission endpoints.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

type submitOrderRequest struct {
	CustomerName     string            `json:"customerName" validate:"required"`
	CustomerEmail    string            `json:"customerEmail"`
	CustomerPhone    string            `json:"customerPhone"`
	ConsentToUpdates *bool             `json:"consentToUpdates"`
	DeliveryAddress  string            `json:"deliveryAddress" validate:"required"`
	DeliveryDate     string            `json:"deliveryDate" validate:"required"`
	Items            []entity.CartItem `json:"items" validate:"required,min=1"`
	AdditionalInfo   string            `json:"additionalInfo"`
	PaymentToken     string            `json:"paymentToken"`
	Total            decimal.Decimal   `json:"total"`
	Tip              decimal.Decimal   `json:"tip"`
	SalesTax         decimal.Decimal   `json:"salesTax"`
	DiscountCode     string            `json:"discountCode"`
	Discount         decimal.Decimal   `json:"discount"`
}

type submitCateringRequest struct {
	CustomerName        string            `json:"customerName" validate:"required"`
	CustomerEmail       string            `json:"customerEmail"`
	CustomerPhone       string            `json:"customerPhone"`
	EventAddress        string            `json:"eventAddress"`
	EventDate           string            `json:"eventDate" validate:"required"`
	EventDetails        string            `json:"eventDetails"`
	SpecialInstructions string            `json:"specialInstructions"`
	Cart                []entity.CartItem `json:"cart"`
	Total               decimal.Decimal   `json:"total"`
}

type submissionResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
}

// SubmitOrder handles a standard-channel order submission.
func (h *CheckoutHandler) SubmitOrder(c echo.Context) error {
	var req submitOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SubmitOrder(c.Request().Context(), &usecase.SubmitOrderInput{
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		CustomerPhone:    req.CustomerPhone,
		ConsentToUpdates: req.ConsentToUpdates,
		DeliveryAddress:  req.DeliveryAddress,
		DeliveryDate:     req.DeliveryDate,
		Items:            req.Items,
		AdditionalInfo:   req.AdditionalInfo,
		PaymentToken:     req.PaymentToken,
		Total:            req.Total,
		Tip:              req.Tip,
		SalesTax:         req.SalesTax,
		DiscountCode:     req.DiscountCode,
		Discount:         req.Discount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, submissionResponse{
		ID:         output.SubmissionUUID.String(),
		CustomerID: output.CustomerUUID.String(),
	}, "Order received")
}

// SubmitCatering handles a catering-channel request submission.
func (h *CheckoutHandler) SubmitCatering(c echo.Context) error {
	var req submitCateringRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid catering input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SubmitCatering(c.Request().Context(), &usecase.SubmitCateringInput{
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		EventAddress:        req.EventAddress,
		EventDate:           req.EventDate,
		EventDetails:        req.EventDetails,
		SpecialInstructions: req.SpecialInstructions,
		Cart:                req.Cart,
		Total:               req.Total,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, submissionResponse{
		ID:         output.SubmissionUUID.String(),
		CustomerID: output.CustomerUUID.String(),
	}, "Catering request received")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
