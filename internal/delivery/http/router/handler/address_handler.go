package handler

import (
	"net/http"

	"bistro/internal/delivery/http/response"
	"bistro/internal/domain/entity"
	"bistro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddressHandler holds dependencies for address verification handlers.
type AddressHandler struct {
	uc usecase.AddressVerificationUsecase
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressVerificationUsecase) *AddressHandler {
	return &AddressHandler{
		uc: uc,
	}
}

type addressVerificationResponse struct {
	ID       string `json:"id"`
	Address  string `json:"address"`
	Verified bool   `json:"verified"`
	Data     string `json:"data,omitempty"`
}

type recordAddressVerificationRequest struct {
	Address  string `json:"address" validate:"required"`
	Verified bool   `json:"verified"`
	Data     string `json:"data"`
}

// ListVerifications returns all recorded checks.
func (h *AddressHandler) ListVerifications(c echo.Context) error {
	records, err := h.uc.ListVerifications(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]addressVerificationResponse, 0, len(records))
	for _, record := range records {
		out = append(out, toAddressVerificationResponse(record))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// GetVerification returns a single record.
func (h *AddressHandler) GetVerification(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address verification id")
	}

	record, err := h.uc.GetVerification(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressVerificationResponse(record), "")
}

// RecordVerification persists a new check outcome.
func (h *AddressHandler) RecordVerification(c echo.Context) error {
	var req recordAddressVerificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address verification input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	record, err := h.uc.RecordVerification(c.Request().Context(), &usecase.RecordAddressVerificationInput{
		Address:  req.Address,
		Verified: req.Verified,
		Data:     req.Data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAddressVerificationResponse(record), "Address verification recorded")
}

func toAddressVerificationResponse(record *entity.AddressVerification) addressVerificationResponse {
	return addressVerificationResponse{
		ID:       record.UUID.String(),
		Address:  record.Address,
		Verified: record.Verified,
		Data:     record.Data,
	}
}
