package validator

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Form groups named fields into one validity view.
//
// The set of names is fixed at construction. The fields themselves are
// shared with the caller: NewForm copies the map, not the fields.
type Form struct {
	fields map[string]*Field
}

// NewForm creates a form over fields. Nil entries are skipped and a nil map
// yields an empty form.
func NewForm(fields map[string]*Field) *Form {
	own := make(map[string]*Field, len(fields))
	for name, field := range fields {
		if field != nil {
			own[name] = field
		}
	}
	return &Form{fields: own}
}

// ParseForm rebuilds a form from a serialized document. Accepted inputs are
// the same as for ParseField. A document without fields yields an empty form.
func ParseForm(input any) (*Form, error) {
	data, err := payloadBytes(input)
	if err != nil {
		return nil, err
	}
	return decodeForm(data)
}

// Field returns the named field.
func (f *Form) Field(name string) (*Field, bool) {
	field, ok := f.fields[name]
	return field, ok
}

// Names returns the field names in sorted order.
func (f *Form) Names() []string {
	return slices.Sorted(maps.Keys(f.fields))
}

// Change sets the current value of the named field.
func (f *Form) Change(name, value string) error {
	field, ok := f.fields[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	field.Change(value)
	return nil
}

// Valid reports whether every field is valid.
func (f *Form) Valid() bool {
	for _, field := range f.fields {
		if !field.Valid() {
			return false
		}
	}
	return true
}

// Errors maps each field with at least one failed rule to its report.
func (f *Form) Errors() map[string]Errors {
	out := make(map[string]Errors)
	for name, field := range f.fields {
		if errs := field.Errors(); !errs.Empty() {
			out[name] = errs
		}
	}
	return out
}

// Validate returns nil when the form is valid, otherwise ValidationErrors
// ordered by field name.
func (f *Form) Validate() error {
	var all ValidationErrors
	for _, name := range f.Names() {
		all = append(all, violations(name, f.fields[name].Errors())...)
	}
	if all.IsEmpty() {
		return nil
	}
	return all
}

// ToJSON returns the serialized document as generic data.
func (f *Form) ToJSON() map[string]any {
	return normalize(f)
}

func (f *Form) MarshalJSON() ([]byte, error) {
	return json.Marshal(formEnvelope{Type: PayloadForm, Fields: f.fields})
}

// UnmarshalJSON replaces f with the form described by data.
func (f *Form) UnmarshalJSON(data []byte) error {
	parsed, err := decodeForm(data)
	if err != nil {
		return err
	}
	*f = *parsed
	return nil
}
