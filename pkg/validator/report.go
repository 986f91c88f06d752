package validator

// LengthViolation reports a failed length bound.
type LengthViolation struct {
	CurrentLength int `json:"currentLength" yaml:"currentLength"`
	AllowedLength int `json:"allowedLength" yaml:"allowedLength"`
}

// PasswordViolation collects the failed password sub-checks.
type PasswordViolation struct {
	MinLength *LengthViolation `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *LengthViolation `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	BothCases bool             `json:"bothCases,omitempty" yaml:"bothCases,omitempty"`
	Numbers   bool             `json:"numbers,omitempty" yaml:"numbers,omitempty"`
	Symbols   bool             `json:"symbols,omitempty" yaml:"symbols,omitempty"`
}

func (p PasswordViolation) empty() bool {
	return p.MinLength == nil && p.MaxLength == nil && !p.BothCases && !p.Numbers && !p.Symbols
}

// Errors is the report produced by Field.Errors. A member is set only for a
// rule that failed; the zero value means the field is valid.
type Errors struct {
	MinLength *LengthViolation   `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *LengthViolation   `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Email     bool               `json:"email,omitempty" yaml:"email,omitempty"`
	Password  *PasswordViolation `json:"password,omitempty" yaml:"password,omitempty"`
	Required  bool               `json:"required,omitempty" yaml:"required,omitempty"`
	URL       bool               `json:"url,omitempty" yaml:"url,omitempty"`
	HexColor  bool               `json:"hexColor,omitempty" yaml:"hexColor,omitempty"`
	Pattern   bool               `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// Has reports whether the rule of the given kind failed.
func (e Errors) Has(kind Kind) bool {
	switch kind {
	case KindMinLength:
		return e.MinLength != nil
	case KindMaxLength:
		return e.MaxLength != nil
	case KindEmail:
		return e.Email
	case KindPassword:
		return e.Password != nil
	case KindRequired:
		return e.Required
	case KindURL:
		return e.URL
	case KindHexColor:
		return e.HexColor
	case KindPattern:
		return e.Pattern
	}
	return false
}

// Kinds lists the failed rule kinds in a stable order.
func (e Errors) Kinds() []Kind {
	var kinds []Kind
	for _, k := range kindOrder {
		if e.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (e Errors) Len() int {
	return len(e.Kinds())
}

func (e Errors) Empty() bool {
	return e == Errors{}
}
