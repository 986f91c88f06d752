package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
)

// PayloadType is the type discriminator of a serialized document.
type PayloadType string

const (
	PayloadField PayloadType = "Validator"
	PayloadForm  PayloadType = "ValidatorForm"
)

// ruleDocument is the wire shape shared by every rule kind.
type ruleDocument struct {
	Type      Kind            `json:"type"`
	Length    *float64        `json:"length,omitempty"`
	MinLength *float64        `json:"minLength,omitempty"`
	MaxLength *float64        `json:"maxLength,omitempty"`
	BothCases *bool           `json:"bothCases,omitempty"`
	Numbers   *bool           `json:"numbers,omitempty"`
	Symbols   *bool           `json:"symbols,omitempty"`
	Regexp    json.RawMessage `json:"regexp,omitempty"`
}

type fieldEnvelope struct {
	Type         PayloadType `json:"type"`
	DefaultValue string      `json:"defaultValue"`
	CurrentValue string      `json:"currentValue"`
	Options      []any       `json:"options"`
}

type fieldDocument struct {
	Type         PayloadType       `json:"type"`
	DefaultValue string            `json:"defaultValue"`
	CurrentValue *string           `json:"currentValue"`
	Options      []json.RawMessage `json:"options"`
}

type formEnvelope struct {
	Type   PayloadType       `json:"type"`
	Fields map[string]*Field `json:"fields"`
}

type formDocument struct {
	Type   PayloadType                `json:"type"`
	Fields map[string]json.RawMessage `json:"fields"`
}

func encodeRule(rule Rule) any {
	switch r := rule.(type) {
	case MinLengthRule:
		return ruleDocument{Type: KindMinLength, Length: number(r.Length)}
	case MaxLengthRule:
		return ruleDocument{Type: KindMaxLength, Length: number(r.Length)}
	case PasswordRule:
		doc := ruleDocument{
			Type:      KindPassword,
			MinLength: number(r.MinLength),
			BothCases: &r.BothCases,
			Numbers:   &r.Numbers,
			Symbols:   &r.Symbols,
		}
		if r.HasMaxLength {
			doc.MaxLength = number(r.MaxLength)
		}
		return doc
	case PatternRule:
		doc := ruleDocument{Type: KindPattern}
		if r.Regexp != nil {
			// Marshalling a string cannot fail.
			doc.Regexp, _ = json.Marshal(r.Regexp.String())
		}
		return doc
	case unknownRule:
		return r.doc
	default:
		return ruleDocument{Type: rule.Kind()}
	}
}

// decodeRule converts one entry of an options list. Entries that are not
// objects are dropped. The kind alone selects the rule: keys the kind does not
// use are ignored, and a mistyped optional parameter falls back to its default.
// Entries of an unknown kind, and length rules without a numeric length, are
// kept opaque and never evaluated.
func decodeRule(raw json.RawMessage) (Rule, bool) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		return nil, false
	}
	kind, _ := doc["type"].(string)
	opaque := unknownRule{kind: Kind(kind), doc: doc}

	switch Kind(kind) {
	case KindMinLength:
		n, ok := doc["length"].(float64)
		if !ok {
			return opaque, true
		}
		return MinLengthRule{Length: ceil(n)}, true
	case KindMaxLength:
		n, ok := doc["length"].(float64)
		if !ok {
			return opaque, true
		}
		return MaxLengthRule{Length: floor(n)}, true
	case KindRequired:
		return RequiredRule{}, true
	case KindEmail:
		return EmailRule{}, true
	case KindURL:
		return URLRule{}, true
	case KindHexColor:
		return HexColorRule{}, true
	case KindPassword:
		r := PasswordRule{
			BothCases: flag(doc, "bothCases"),
			Numbers:   flag(doc, "numbers"),
			Symbols:   flag(doc, "symbols"),
		}
		if n, ok := doc["minLength"].(float64); ok {
			r.MinLength = ceil(n)
		}
		if n, ok := doc["maxLength"].(float64); ok {
			r.MaxLength = floor(n)
			r.HasMaxLength = true
		}
		return r, true
	case KindPattern:
		src, ok := doc["regexp"].(string)
		if !ok {
			return PatternRule{}, true
		}
		return PatternRule{Regexp: compilePattern(src)}, true
	}
	return opaque, true
}

// compilePattern recovers a pattern from its source string. A regexp that is
// not a string, such as the empty object a JavaScript RegExp serializes to,
// never reaches here and stays nil.
func compilePattern(src string) *regexp.Regexp {
	re, err := regexp.Compile(src)
	if err != nil {
		return nil
	}
	return re
}

func decodeField(data []byte) (*Field, error) {
	var doc fieldDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidPayload, err)
	}
	if doc.Type != PayloadField {
		return nil, fmt.Errorf("%w: can't parse %q document as %q", ErrInvalidPayload, doc.Type, PayloadField)
	}

	rules := make([]Rule, 0, len(doc.Options))
	for _, raw := range doc.Options {
		if r, ok := decodeRule(raw); ok {
			rules = append(rules, r)
		}
	}

	f := NewField(doc.DefaultValue, rules...)
	if doc.CurrentValue != nil {
		f.Change(*doc.CurrentValue)
	}
	return f, nil
}

func decodeForm(data []byte) (*Form, error) {
	var doc formDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidPayload, err)
	}
	if doc.Type != PayloadForm {
		return nil, fmt.Errorf("%w: can't parse %q document as %q", ErrInvalidPayload, doc.Type, PayloadForm)
	}

	fields := make(map[string]*Field, len(doc.Fields))
	for name, raw := range doc.Fields {
		f, err := decodeField(raw)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		fields[name] = f
	}
	return NewForm(fields), nil
}

// payloadBytes turns any accepted parse input into JSON text. Strings and
// byte slices are taken as already encoded; everything else is marshalled.
func payloadBytes(input any) ([]byte, error) {
	switch v := input.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil input", ErrInvalidPayload)
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case json.RawMessage:
		return v, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, errors.Join(ErrInvalidPayload, err)
		}
		return data, nil
	}
}

// normalize round-trips v through JSON so the result holds only generic
// data: maps, slices, strings, float64 and bools.
func normalize(v any) map[string]any {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

func number(n int) *float64 {
	f := float64(n)
	return &f
}

func ceil(f float64) int {
	return clampInt(math.Ceil(f))
}

func floor(f float64) int {
	return clampInt(math.Floor(f))
}

// clampInt saturates bounds outside the int range so an extreme bound keeps
// its comparison result instead of wrapping.
func clampInt(f float64) int {
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

// flag reads an optional password switch; missing or mistyped values are on.
func flag(doc map[string]any, key string) bool {
	b, ok := doc[key].(bool)
	return !ok || b
}
