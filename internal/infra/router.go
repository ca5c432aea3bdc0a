package infra

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/umalmyha/customerlib/internal/handlers"
	"github.com/umalmyha/customerlib/internal/service"
)

// Services groups services router dispatches to
type Services struct {
	Customer service.CustomerService
	Address  service.AddressService
	Note     service.NoteService
}

// Router builds echo application with API routes
func Router(svc Services, validator echo.Validator) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator
	e.HTTPErrorHandler = handlers.HTTPErrorHandler(e)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Recover())

	// Handlers
	customerHandler := handlers.NewCustomerHTTPHandler(svc.Customer, svc.Address, svc.Note)
	addressHandler := handlers.NewAddressHTTPHandler(svc.Address)
	noteHandler := handlers.NewNoteHTTPHandler(svc.Note)
	validationHandler := handlers.NewValidationHTTPHandler()

	// API routes
	api := e.Group("/api")

	// customers
	customersAPI := api.Group("/customers")
	customersAPI.GET("", customerHandler.List)
	customersAPI.GET("/count", customerHandler.Count)
	customersAPI.GET("/:id", customerHandler.Get)
	customersAPI.GET("/:id/addresses", customerHandler.Addresses)
	customersAPI.GET("/:id/notes", customerHandler.Notes)
	customersAPI.POST("", customerHandler.Post)
	customersAPI.PUT("/:id", customerHandler.Put)
	customersAPI.DELETE("/:id", customerHandler.Delete)

	// addresses
	addressesAPI := api.Group("/addresses")
	addressesAPI.GET("/:id", addressHandler.Get)
	addressesAPI.POST("", addressHandler.Post)
	addressesAPI.PUT("/:id", addressHandler.Put)
	addressesAPI.DELETE("/:id", addressHandler.Delete)

	// notes
	notesAPI := api.Group("/notes")
	notesAPI.GET("/:id", noteHandler.Get)
	notesAPI.POST("", noteHandler.Post)
	notesAPI.PUT("/:id", noteHandler.Put)
	notesAPI.DELETE("/:id", noteHandler.Delete)

	// live field revalidation
	api.POST("/validation/:kind/:field", validationHandler.Field)

	return e
}
