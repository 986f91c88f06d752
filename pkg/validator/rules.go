package validator

import "regexp"

// Kind identifies a rule variant. The string value is the wire discriminator.
type Kind string

const (
	KindMinLength Kind = "minLength"
	KindMaxLength Kind = "maxLength"
	KindRequired  Kind = "required"
	KindEmail     Kind = "email"
	KindPassword  Kind = "password"
	KindURL       Kind = "url"
	KindHexColor  Kind = "hexColor"
	KindPattern   Kind = "pattern"
)

// kindOrder is the order in which report members are enumerated.
var kindOrder = []Kind{
	KindMinLength,
	KindMaxLength,
	KindRequired,
	KindEmail,
	KindPassword,
	KindURL,
	KindHexColor,
	KindPattern,
}

// Rule is a plain-data rule descriptor. The set of implementations is closed;
// use the factory functions in this file to build one.
type Rule interface {
	Kind() Kind
	rule()
}

// MinLengthRule fails when the value is shorter than Length.
type MinLengthRule struct{ Length int }

// MaxLengthRule fails when the value is longer than Length.
type MaxLengthRule struct{ Length int }

// RequiredRule fails when the value is blank.
type RequiredRule struct{}

// EmailRule fails when the value contains nothing shaped like an email address.
type EmailRule struct{}

// URLRule fails when the value contains nothing shaped like a host with a TLD.
type URLRule struct{}

// HexColorRule fails unless the value is a 3 or 6 digit hex color, '#' optional.
type HexColorRule struct{}

// PasswordRule bundles the password strength sub-checks.
type PasswordRule struct {
	MinLength    int
	MaxLength    int
	HasMaxLength bool
	BothCases    bool
	Numbers      bool
	Symbols      bool
}

// PatternRule fails when the value does not match Regexp.
// Anchoring and case folding are up to the pattern author.
type PatternRule struct{ Regexp *regexp.Regexp }

// unknownRule preserves a rule document of an unrecognised kind.
type unknownRule struct {
	kind Kind
	doc  map[string]any
}

func (MinLengthRule) Kind() Kind { return KindMinLength }
func (MaxLengthRule) Kind() Kind { return KindMaxLength }
func (RequiredRule) Kind() Kind { return KindRequired }
func (EmailRule) Kind() Kind { return KindEmail }
func (URLRule) Kind() Kind { return KindURL }
func (HexColorRule) Kind() Kind { return KindHexColor }
func (PasswordRule) Kind() Kind { return KindPassword }
func (PatternRule) Kind() Kind { return KindPattern }
func (r unknownRule) Kind() Kind { return r.kind }

func (MinLengthRule) rule() {}
func (MaxLengthRule) rule() {}
func (RequiredRule) rule() {}
func (EmailRule) rule() {}
func (URLRule) rule() {}
func (HexColorRule) rule() {}
func (PasswordRule) rule() {}
func (PatternRule) rule() {}
func (unknownRule) rule() {}

// MinLength requires at least length UTF-16 code units. The bound is not checked.
func MinLength(length int) Rule {
	return MinLengthRule{Length: length}
}

// MaxLength allows at most length UTF-16 code units. The bound is not checked.
func MaxLength(length int) Rule {
	return MaxLengthRule{Length: length}
}

// Required marks a field as mandatory.
//
// A field without this rule is reported valid whenever its value is blank,
// whatever other rules it carries.
func Required() Rule {
	return RequiredRule{}
}

func Email() Rule {
	return EmailRule{}
}

func URL() Rule {
	return URLRule{}
}

func HexColor() Rule {
	return HexColorRule{}
}

// PasswordOption configures a password rule.
type PasswordOption func(*PasswordRule)

// PasswordMaxLength sets an upper bound. Without it the length is unbounded.
func PasswordMaxLength(length int) PasswordOption {
	return func(r *PasswordRule) {
		r.MaxLength = length
		r.HasMaxLength = true
	}
}

// PasswordBothCases toggles the mixed case check. Enabled by default.
func PasswordBothCases(enabled bool) PasswordOption {
	return func(r *PasswordRule) { r.BothCases = enabled }
}

// PasswordNumbers toggles the digit check. Enabled by default.
func PasswordNumbers(enabled bool) PasswordOption {
	return func(r *PasswordRule) { r.Numbers = enabled }
}

// PasswordSymbols toggles the symbol check (one of @#$%.<>?!). Enabled by default.
func PasswordSymbols(enabled bool) PasswordOption {
	return func(r *PasswordRule) { r.Symbols = enabled }
}

// Password builds a password strength rule with the given minimum length.
func Password(minLength int, opts ...PasswordOption) Rule {
	r := PasswordRule{
		MinLength: minLength,
		BothCases: true,
		Numbers:   true,
		Symbols:   true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&r)
		}
	}
	return r
}

// Pattern wraps a caller-compiled regular expression.
func Pattern(re *regexp.Regexp) Rule {
	return PatternRule{Regexp: re}
}
