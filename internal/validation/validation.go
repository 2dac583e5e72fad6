// Package validation binds request data and validates it.
//
// Payloads declare their rules with go-playground/validator struct tags and
// implement Validatable; BindAndValidate runs both steps and reports failures
// as *errs.HTTPError values the global error handler can render.
package validation

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the process-wide validator. It caches struct metadata,
// so a single instance is shared.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}
