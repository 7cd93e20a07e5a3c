package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/deppfellow/txtstore/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// BindAndValidate binds request data into payload and validates it.
//
// payload must be a pointer. Path parameters, query parameters and the
// body are bound by Echo's DefaultBinder; a body is only read when the
// request declares a supported content type.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if err := payload.Validate(); err != nil {
		return validationError(err)
	}

	return nil
}

// bindError turns a binder failure into a client error. Echo errors that
// are not 400s (e.g. 415 Unsupported Media Type) keep their status.
func bindError(err error) error {
	var bindingErr *echo.BindingError
	if errors.As(err, &bindingErr) {
		return errs.NewBadRequestError(
			fmt.Sprintf("invalid value for %s: %s", bindingErr.Field, strings.Join(bindingErr.Values, ",")),
			true, nil, []errs.FieldError{{Field: bindingErr.Field, Error: "has an invalid format"}},
		)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code != http.StatusBadRequest {
			return httpErr
		}
		return errs.NewBadRequestError(fmt.Sprint(httpErr.Message), true, nil, nil)
	}

	return errs.NewBadRequestError(err.Error(), true, nil, nil)
}

func validationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return errs.NewBadRequestError("Validation failed", true, nil, fieldErrors(validationErrors))
	}

	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		fields := make([]errs.FieldError, 0, len(customErrors))
		for _, e := range customErrors {
			fields = append(fields, errs.FieldError{Field: e.Field, Error: e.Message})
		}
		return errs.NewBadRequestError("Validation failed", true, nil, fields)
	}

	return errs.ValidationError(err)
}

// fieldErrors converts validator.ValidationErrors into user-friendly messages.
func fieldErrors(validationErrors validator.ValidationErrors) []errs.FieldError {
	fields := make([]errs.FieldError, 0, len(validationErrors))

	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fields = append(fields, errs.FieldError{Field: field, Error: msg})
	}

	return fields
}
