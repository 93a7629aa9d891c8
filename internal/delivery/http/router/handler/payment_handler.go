package handler

import (
	"net/http"

	"bistro/internal/delivery/http/response"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// PaymentHandler holds dependencies for the payment capture endpoint.
type PaymentHandler struct {
	uc usecase.PaymentUsecase
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{
		uc: uc,
	}
}

type chargeRequest struct {
	Amount         decimal.Decimal `json:"amount" validate:"required"`
	SourceToken    string          `json:"sourceToken" validate:"required"`
	IdempotencyKey string          `json:"idempotencyKey"`
	Description    string          `json:"description"`
	ReceiptEmail   string          `json:"receiptEmail"`
}

type chargeResponse struct {
	ChargeID string `json:"chargeId"`
	Status   string `json:"status"`
}

// Charge captures a card payment.
func (h *PaymentHandler) Charge(c echo.Context) error {
	var req chargeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid charge input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Charge(c.Request().Context(), &usecase.ChargeInput{
		Amount:         req.Amount,
		SourceToken:    req.SourceToken,
		IdempotencyKey: req.IdempotencyKey,
		Description:    req.Description,
		ReceiptEmail:   req.ReceiptEmail,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, chargeResponse{
		ChargeID: output.ChargeID,
		Status:   output.Status,
	}, "Payment captured")
}
