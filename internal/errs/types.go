package errs

import (
	"net/http"
)

// Messages shared by every resource.
const (
	ValidationMessage = "Please check your request properties."
	InternalMessage   = "There was an error completing the request:"
)

func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
// A nil code defaults to "BAD_REQUEST".
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	formattedCode := statusCode(http.StatusBadRequest)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
	}
}

// NewValidationError creates the 400 returned when a request carries
// properties outside its schema. properties describes the expected schema.
func NewValidationError(properties []RequestProperty, errors []FieldError) *HTTPError {
	err := NewBadRequestError(ValidationMessage, true, nil, errors)
	err.RequestProperties = properties
	return err
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := statusCode(http.StatusNotFound)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusTooManyRequests),
		Message:  message,
		Status:   http.StatusTooManyRequests,
		Override: true,
	}
}

// NewInternalServerError creates a 500 HTTPError carrying detail as its
// "error" member. code may be nil.
func NewInternalServerError(detail any, code *string) *HTTPError {
	formattedCode := statusCode(http.StatusInternalServerError)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  InternalMessage,
		Status:   http.StatusInternalServerError,
		Override: false,
		Detail:   detail,
	}
}
