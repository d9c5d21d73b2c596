package utils

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into echo's Validator hook
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator for request body structs
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate validates a bound request struct against its validate tags
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
