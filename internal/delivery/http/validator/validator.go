// Package validator wires go-playground's struct validation into echo.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator on top of go-playground/validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a new CustomValidator instance.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(),
	}
}

// Validate checks the struct's validation tags and converts failures into an
// echo HTTP error so the error handler renders a 400.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
