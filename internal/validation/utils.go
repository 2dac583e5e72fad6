package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/deppfellow/zoos-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payloads that know how to validate
// themselves. Validate may return an *errs.HTTPError to control the response
// exactly, or validator.ValidationErrors to get the standard 400.
type Validatable interface {
	Validate() error
}

// BindAndValidate binds path parameters and the request body into payload,
// then validates it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if err := payload.Validate(); err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}

		return errs.NewBadRequestError("Validation failed", true, nil, FieldErrors(err))
	}

	return nil
}

// bindError keeps the framework's message (e.g. "Syntax error: offset=1,
// error=invalid character...") and drops its internal error chain.
func bindError(err error) error {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code != http.StatusBadRequest {
			return echoErr
		}
		message, ok := echoErr.Message.(string)
		if !ok {
			message = fmt.Sprint(echoErr.Message)
		}
		return errs.NewBadRequestError(message, false, nil, nil)
	}
	return errs.NewBadRequestError(err.Error(), false, nil, nil)
}

// FieldErrors converts validator errors into client-facing field errors.
// Elements of a slice are reported by their value, so a rejected body key
// "age" appears as field "age".
func FieldErrors(err error) []errs.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []errs.FieldError{{Field: "", Error: err.Error()}}
	}

	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		if strings.Contains(field, "[") && fe.Kind() == reflect.String {
			field = fmt.Sprint(fe.Value())
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: message(fe, field),
		})
	}

	return fieldErrors
}

func message(fe validator.FieldError, field string) string {
	switch fe.Tag() {
	case "required":
		return "is required"

	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())

	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())

	case "numeric":
		return "must be a number"

	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s: %s", field, fe.Tag())
	}
}
