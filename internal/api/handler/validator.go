package handler

import "github.com/crestfin/admin-console/internal/pkg/validate"

// echoValidator adapts the shared validate package so Echo can call
// c.Validate(req).
type echoValidator struct{}

// NewValidator returns a validator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{}
}

// Validate satisfies the echo.Validator interface.
func (echoValidator) Validate(i any) error {
	return validate.Struct(i)
}
