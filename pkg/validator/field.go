package validator

import (
	"encoding/json"
	"slices"
)

// Field holds one value and the rules it is checked against.
//
// The default value and the rule list are fixed at construction; only the
// current value changes, through Change. Errors and Valid are recomputed on
// every call. A Field has no internal locking.
type Field struct {
	defaultValue string
	value        string
	rules        []Rule
}

// NewField creates a field whose current value starts at defaultValue.
func NewField(defaultValue string, rules ...Rule) *Field {
	return &Field{
		defaultValue: defaultValue,
		value:        defaultValue,
		rules:        slices.Clone(rules),
	}
}

// ParseField rebuilds a field from a serialized document. input may be JSON
// text (string, []byte, json.RawMessage) or any value that marshals to the
// document, such as the map returned by ToJSON.
func ParseField(input any) (*Field, error) {
	data, err := payloadBytes(input)
	if err != nil {
		return nil, err
	}
	return decodeField(data)
}

func (f *Field) DefaultValue() string {
	return f.defaultValue
}

func (f *Field) CurrentValue() string {
	return f.value
}

// Rules returns a copy of the rule list in evaluation order.
func (f *Field) Rules() []Rule {
	return slices.Clone(f.rules)
}

// Change replaces the current value.
func (f *Field) Change(value string) {
	f.value = value
}

// Errors evaluates every rule against the current value.
//
// A blank value on a field without a failing required rule always yields an
// empty report, so optional fields accept being left empty.
func (f *Field) Errors() Errors {
	return evaluate(f.value, f.rules)
}

func (f *Field) Valid() bool {
	return f.Errors().Empty()
}

// String returns the current value.
func (f *Field) String() string {
	return f.value
}

// Validate returns nil when the field is valid, otherwise ValidationErrors
// naming each failed rule under the given field name.
func (f *Field) Validate(name string) error {
	errs := violations(name, f.Errors())
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ToJSON returns the serialized document as generic data. Pattern rules
// survive only as their source text.
func (f *Field) ToJSON() map[string]any {
	return normalize(f)
}

func (f *Field) MarshalJSON() ([]byte, error) {
	options := make([]any, 0, len(f.rules))
	for _, r := range f.rules {
		options = append(options, encodeRule(r))
	}
	return json.Marshal(fieldEnvelope{
		Type:         PayloadField,
		DefaultValue: f.defaultValue,
		CurrentValue: f.value,
		Options:      options,
	})
}

// UnmarshalJSON replaces f with the field described by data.
func (f *Field) UnmarshalJSON(data []byte) error {
	parsed, err := decodeField(data)
	if err != nil {
		return err
	}
	*f = *parsed
	return nil
}
