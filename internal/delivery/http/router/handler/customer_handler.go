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

// CustomerHandler holds dependencies for customer read handlers.
type CustomerHandler struct {
	uc usecase.CustomerUsecase
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{
		uc: uc,
	}
}

type createCustomerRequest struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	ConsentToUpdates bool   `json:"consentToUpdates"`
}

type customerResponse struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Email            string               `json:"email"`
	Phone            string               `json:"phone"`
	ConsentToUpdates bool                 `json:"consentToUpdates"`
	Stats            entity.CustomerStats `json:"stats"`
}

// ListCustomers returns all customers.
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	customers, err := h.uc.ListCustomers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]customerResponse, 0, len(customers))
	for _, customer := range customers {
		out = append(out, toCustomerResponse(customer))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// GetCustomer returns a single customer.
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid customer id")
	}

	customer, err := h.uc.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCustomerResponse(customer), "")
}

// CreateCustomer inserts a customer directly, outside the checkout pipeline.
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.uc.CreateCustomer(c.Request().Context(), &usecase.CreateCustomerInput{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		ConsentToUpdates: req.ConsentToUpdates,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCustomerResponse(customer), "Customer created")
}

func toCustomerResponse(customer *entity.Customer) customerResponse {
	return customerResponse{
		ID:               customer.UUID.String(),
		Name:             customer.Name,
		Email:            customer.Email,
		Phone:            customer.Phone,
		ConsentToUpdates: customer.ConsentToUpdates,
		Stats:            customer.Stats,
	}
}
