// Package validation contains the logic for binding and validating
// request data.
//
// Binding failures and rule violations are both reported as 400
// Bad Request errors, with per-field details when a rule names a field.
package validation

import (
	"github.com/go-playground/validator/v10"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"min=1"`)
//   - Implement Validate() error that runs Struct(req)
type Validatable interface {
	Validate() error
}

var validate = validator.New()

// Struct runs the shared validator against a tagged request struct.
func Struct(v any) error {
	return validate.Struct(v)
}

// CustomValidationError represents a single validation issue for a specific field.
// It covers rules that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}
