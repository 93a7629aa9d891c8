package handler

import (
	"net/http"
	"time"

	"bistro/internal/delivery/http/response"
	"bistro/internal/domain/entity"
	"bistro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// OrderHandler holds dependencies for order and catering read handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{
		uc: uc,
	}
}

type orderResponse struct {
	ID              string            `json:"id"`
	CustomerName    string            `json:"customerName"`
	CustomerEmail   string            `json:"customerEmail"`
	CustomerPhone   string            `json:"customerPhone"`
	DeliveryAddress string            `json:"deliveryAddress"`
	DeliveryDate    string            `json:"deliveryDate"`
	Total           decimal.Decimal   `json:"total"`
	Tip             decimal.Decimal   `json:"tip"`
	Discount        decimal.Decimal   `json:"discount"`
	Status          string            `json:"status"`
	Items           []entity.CartItem `json:"items"`
	AdditionalInfo  string            `json:"additionalInfo,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

type cateringResponse struct {
	ID                  string            `json:"id"`
	CustomerName        string            `json:"customerName"`
	CustomerEmail       string            `json:"customerEmail"`
	CustomerPhone       string            `json:"customerPhone"`
	EventAddress        string            `json:"eventAddress"`
	EventDate           string            `json:"eventDate"`
	Total               decimal.Decimal   `json:"total"`
	EventDetails        string            `json:"eventDetails,omitempty"`
	SpecialInstructions string            `json:"specialInstructions,omitempty"`
	Cart                []entity.CartItem `json:"cart"`
	CreatedAt           time.Time         `json:"createdAt"`
}

// ListOrders returns all standard-channel orders.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// GetOrder returns a single order.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "")
}

// ListCateringRequests returns all catering-channel requests.
func (h *OrderHandler) ListCateringRequests(c echo.Context) error {
	requests, err := h.uc.ListCateringRequests(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]cateringResponse, 0, len(requests))
	for _, request := range requests {
		out = append(out, toCateringResponse(request))
	}

	return response.Success(c, http.StatusOK, out, "")
}

func toOrderResponse(order *entity.Order) orderResponse {
	return orderResponse{
		ID:              order.UUID.String(),
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CustomerPhone:   order.CustomerPhone,
		DeliveryAddress: order.DeliveryAddress,
		DeliveryDate:    order.DeliveryDate.Format("2006-01-02"),
		Total:           order.Total,
		Tip:             order.Tip,
		Discount:        order.Discount,
		Status:          order.Status,
		Items:           order.Payload.Items,
		AdditionalInfo:  order.Payload.AdditionalInfo,
		CreatedAt:       order.CreatedAt,
	}
}

func toCateringResponse(request *entity.CateringRequest) cateringResponse {
	return cateringResponse{
		ID:                  request.UUID.String(),
		CustomerName:        request.CustomerName,
		CustomerEmail:       request.CustomerEmail,
		CustomerPhone:       request.CustomerPhone,
		EventAddress:        request.EventAddress,
		EventDate:           request.EventDate.Format("2006-01-02"),
		Total:               request.Total,
		EventDetails:        request.Payload.EventDetails,
		SpecialInstructions: request.Payload.SpecialInstructions,
		Cart:                request.Payload.Cart,
		CreatedAt:           request.CreatedAt,
	}
}
