package handlers

import (
	"finsight/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new custom validator with domain validations
func NewValidator() echo.Validator {
	v := validator.New()

	// Domain tags used by the request DTOs.
	_ = v.RegisterValidation("entry_type", func(fl validator.FieldLevel) bool {
		return models.IsValidEntryType(fl.Field().String())
	})
	_ = v.RegisterValidation("ledger_category", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == "" || models.IsValidCategory(value)
	})

	return &CustomValidator{validator: v}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
