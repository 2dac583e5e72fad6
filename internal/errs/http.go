package errs

import "strings"

// FieldError represents a field-level validation error.
//
//	{ "field": "age", "error": "is not an allowed property" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// RequestProperty documents one property a request is expected to carry.
// Validation failures list them so clients can correct the request.
//
//	{ "name": "name", "required": true, "location": "body" }
type RequestProperty struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
	Location string `json:"location"`
}

// HTTPError is the main custom error type for API responses.
//
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: whether Message is safe to show as-is.
//   - Errors: per-field validation errors.
//   - RequestProperties: the expected request schema (validation only).
//   - Detail: what went wrong underneath (internal errors only).
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors,omitempty"`

	RequestProperties []RequestProperty `json:"requestProperties,omitempty"`

	// Detail is serialized as "error"; it is either a string or a
	// JSON-encodable description of a database error.
	Detail any `json:"error,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError, regardless of code or status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
