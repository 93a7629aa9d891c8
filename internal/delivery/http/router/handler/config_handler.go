package handler

import (
	"net/http"

	"bistro/config"
	"bistro/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// ConfigHandler serves the public configuration the storefront needs at load
// time. Only publishable values belong here, never secrets.
type ConfigHandler struct {
	cfg *config.Config
}

// NewConfigHandler is the constructor for ConfigHandler, injected by Fx.
func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{
		cfg: cfg,
	}
}

type clientConfigResponse struct {
	MapsAPIKey            string `json:"mapsApiKey,omitempty"`
	APIBaseURL            string `json:"apiBaseUrl,omitempty"`
	PaymentPublishableKey string `json:"paymentPublishableKey,omitempty"`
	RestaurantName        string `json:"restaurantName,omitempty"`
	ContactEmail          string `json:"contactEmail,omitempty"`
	ContactPhone          string `json:"contactPhone,omitempty"`
	Address               string `json:"address,omitempty"`
}

// GetConfig returns the storefront's runtime configuration.
func (h *ConfigHandler) GetConfig(c echo.Context) error {
	out := clientConfigResponse{}

	if h.cfg.Client != nil {
		out.MapsAPIKey = h.cfg.Client.MapsAPIKey
		out.APIBaseURL = h.cfg.Client.APIBaseURL
	}
	if h.cfg.Payment != nil {
		out.PaymentPublishableKey = h.cfg.Payment.PublishableKey
	}
	if h.cfg.Restaurant != nil {
		out.RestaurantName = h.cfg.Restaurant.Name
		out.ContactEmail = h.cfg.Restaurant.ContactEmail
		out.ContactPhone = h.cfg.Restaurant.ContactPhone
		out.Address = h.cfg.Restaurant.Address
	}

	return response.Success(c, http.StatusOK, out, "")
}
