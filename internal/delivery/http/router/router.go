// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bistro/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CheckoutHandler *handler.CheckoutHandler
	MenuHandler     *handler.MenuHandler
	CustomerHandler *handler.CustomerHandler
	OrderHandler    *handler.OrderHandler
	DiscountHandler *handler.DiscountHandler
	AddressHandler  *handler.AddressHandler
	PaymentHandler  *handler.PaymentHandler
	ConfigHandler   *handler.ConfigHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	checkoutHandler *handler.CheckoutHandler
	menuHandler     *handler.MenuHandler
	customerHandler *handler.CustomerHandler
	orderHandler    *handler.OrderHandler
	discountHandler *handler.DiscountHandler
	addressHandler  *handler.AddressHandler
	paymentHandler  *handler.PaymentHandler
	configHandler   *handler.ConfigHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		checkoutHandler: params.CheckoutHandler,
		menuHandler:     params.MenuHandler,
		customerHandler: params.CustomerHandler,
		orderHandler:    params.OrderHandler,
		discountHandler: params.DiscountHandler,
		addressHandler:  params.AddressHandler,
		paymentHandler:  params.PaymentHandler,
		configHandler:   params.ConfigHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Storefront runtime configuration
	e.GET("/config", r.configHandler.GetConfig)

	// Menu catalog
	menuGroup := e.Group("/menuitems")
	{
		menuGroup.GET("", r.menuHandler.ListMenuItems)
		menuGroup.GET("/:id", r.menuHandler.GetMenuItem)
		menuGroup.POST("", r.menuHandler.CreateMenuItem)
	}

	// Customers (normally created through submissions; POST is for back-office use)
	customerGroup := e.Group("/customers")
	{
		customerGroup.GET("", r.customerHandler.ListCustomers)
		customerGroup.GET("/:id", r.customerHandler.GetCustomer)
		customerGroup.POST("", r.customerHandler.CreateCustomer)
	}

	// Orders
	orderGroup := e.Group("/orders")
	{
		orderGroup.POST("", r.checkoutHandler.SubmitOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
	}

	// Catering requests
	cateringGroup := e.Group("/catering-requests")
	{
		cateringGroup.POST("", r.checkoutHandler.SubmitCatering)
		cateringGroup.GET("", r.orderHandler.ListCateringRequests)
	}

	// Discount codes
	discountGroup := e.Group("/discount-codes")
	{
		discountGroup.GET("", r.discountHandler.ListActive)
		discountGroup.POST("", r.discountHandler.Create)
		discountGroup.POST("/validate", r.discountHandler.Validate)
		discountGroup.GET("/:code", r.discountHandler.Get)
		discountGroup.PUT("/:code", r.discountHandler.Update)
		discountGroup.DELETE("/:code", r.discountHandler.Deactivate)
		discountGroup.POST("/:code/increment", r.discountHandler.Increment)
	}

	// Address verification
	addressGroup := e.Group("/addressverification")
	{
		addressGroup.GET("", r.addressHandler.ListVerifications)
		addressGroup.GET("/:id", r.addressHandler.GetVerification)
		addressGroup.POST("", r.addressHandler.RecordVerification)
	}

	// Payments
	e.POST("/payments/charge", r.paymentHandler.Charge)
}
