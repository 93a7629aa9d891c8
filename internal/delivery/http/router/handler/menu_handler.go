package handler

import (
	"net/http"

	"bistro/internal/delivery/http/response"
	"bistro/internal/domain/entity"
	"bistro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// MenuHandler holds dependencies for menu catalog handlers.
type MenuHandler struct {
	uc usecase.MenuUsecase
}

// NewMenuHandler is the constructor for MenuHandler, injected by Fx.
func NewMenuHandler(uc usecase.MenuUsecase) *MenuHandler {
	return &MenuHandler{
		uc: uc,
	}
}

type menuItemResponse struct {
	ID       string          `json:"id"`
	ItemName string          `json:"itemName"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type createMenuItemRequest struct {
	ItemName string          `json:"itemName" validate:"required"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// ListMenuItems returns the full catalog.
func (h *MenuHandler) ListMenuItems(c echo.Context) error {
	items, err := h.uc.ListMenuItems(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]menuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toMenuItemResponse(item))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// GetMenuItem returns a single catalog entry.
func (h *MenuHandler) GetMenuItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid menu item id")
	}

	item, err := h.uc.GetMenuItem(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMenuItemResponse(item), "")
}

// CreateMenuItem adds a catalog entry.
func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	var req createMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.uc.CreateMenuItem(c.Request().Context(), &usecase.CreateMenuItemInput{
		ItemName: req.ItemName,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toMenuItemResponse(item), "Menu item created")
}

func toMenuItemResponse(item *entity.MenuItem) menuItemResponse {
	return menuItemResponse{
		ID:       item.UUID.String(),
		ItemName: item.ItemName,
		Category: item.Category,
		Price:    item.Price,
		Quantity: item.Quantity,
	}
}
