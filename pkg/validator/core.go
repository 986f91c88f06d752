package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes a single failed rule of a named field.
type ValidationError struct {
	Field   string
	Rule    Kind
	Message string
}

// ValidationErrors is the error form of one or more field reports.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// violations flattens a report into one entry per failed rule, or per failed
// password sub-check.
func violations(field string, e Errors) ValidationErrors {
	var out ValidationErrors
	add := func(kind Kind, msg string) {
		out.Add(ValidationError{Field: field, Rule: kind, Message: msg})
	}

	if e.MinLength != nil {
		add(KindMinLength, fmt.Sprintf("must be at least %d characters long", e.MinLength.AllowedLength))
	}
	if e.MaxLength != nil {
		add(KindMaxLength, fmt.Sprintf("must be at most %d characters long", e.MaxLength.AllowedLength))
	}
	if e.Required {
		add(KindRequired, "field is required")
	}
	if e.Email {
		add(KindEmail, "must be a valid email address")
	}
	if p := e.Password; p != nil {
		if p.MinLength != nil {
			add(KindPassword, fmt.Sprintf("password must be at least %d characters long", p.MinLength.AllowedLength))
		}
		if p.MaxLength != nil {
			add(KindPassword, fmt.Sprintf("password must be at most %d characters long", p.MaxLength.AllowedLength))
		}
		if p.BothCases {
			add(KindPassword, "password must contain both uppercase and lowercase letters")
		}
		if p.Numbers {
			add(KindPassword, "password must contain at least one number")
		}
		if p.Symbols {
			add(KindPassword, "password must contain at least one of @#$%.<>?!")
		}
	}
	if e.URL {
		add(KindURL, "must be a valid URL")
	}
	if e.HexColor {
		add(KindHexColor, "must be a valid hex color")
	}
	if e.Pattern {
		add(KindPattern, "must match the required pattern")
	}
	return out
}
