package zoo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/deppfellow/zoos-api/internal/errs"
	"github.com/deppfellow/zoos-api/internal/validation"
)

// Fields is the decoded body of a zoo write. It remembers every top-level
// property the client sent so that unknown ones can be rejected as a whole.
type Fields struct {
	Keys []string `validate:"dive,oneof=name"`

	// Name is nil when the body has no "name" or it is null.
	Name *string
}

// UnmarshalJSON records the body's keys and decodes the ones that are known.
// Values are not decoded when an unknown key is present, so the whitelist
// reports the body before any type error can.
func (f *Fields) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	f.Keys = make([]string, 0, len(raw))
	for key := range raw {
		f.Keys = append(f.Keys, key)
	}
	slices.Sort(f.Keys)

	f.Name = nil
	if slices.ContainsFunc(f.Keys, func(key string) bool { return key != "name" }) {
		return nil
	}

	if value, ok := raw["name"]; ok && !bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		var name string
		if err := json.Unmarshal(value, &name); err != nil {
			return fmt.Errorf("name must be a string: %w", err)
		}
		f.Name = &name
	}

	return nil
}

func (f *Fields) validate(properties []errs.RequestProperty) error {
	if err := validation.Validator().Struct(f); err != nil {
		return errs.NewValidationError(properties, validation.FieldErrors(err))
	}
	return nil
}

// ------------------------------------------------------------

// CreateZooPayload is the body of POST /api/zoos.
type CreateZooPayload struct {
	Fields
}

func CreateRequestProperties() []errs.RequestProperty {
	return []errs.RequestProperty{
		{Name: "name", Required: true, Location: "body"},
	}
}

func (p *CreateZooPayload) Validate() error {
	return p.validate(CreateRequestProperties())
}

// ------------------------------------------------------------

// UpdateZooPayload is the path and body of PUT /api/zoos/:id.
type UpdateZooPayload struct {
	ID string `param:"id" json:"-"`
	Fields
}

func UpdateRequestProperties() []errs.RequestProperty {
	return []errs.RequestProperty{
		{Name: "id", Required: true, Location: "/api/zoos/:id"},
		{Name: "name", Required: true, Location: "request body"},
	}
}

func (p *UpdateZooPayload) Validate() error {
	return p.validate(UpdateRequestProperties())
}

// ------------------------------------------------------------

// GetZooPayload addresses a single zoo for GET and DELETE.
type GetZooPayload struct {
	ID string `param:"id" json:"-"`
}

func (p *GetZooPayload) Validate() error {
	return nil
}

type DeleteZooPayload = GetZooPayload

// ------------------------------------------------------------

// ListZoosPayload takes no input.
type ListZoosPayload struct{}

func (p *ListZoosPayload) Validate() error {
	return nil
}
