// Package validator provides declarative validation of single string values
// and of forms made of named values, with a serialized form that lets a
// producer and a consumer process exchange validation state.
//
// A Field holds a default value, a current value and an ordered list of Rule
// descriptors. Rules are plain data built with the factory functions
// (MinLength, MaxLength, Required, Email, Password, URL, HexColor, Pattern);
// the matching logic lives in the evaluator, so descriptors serialize
// cleanly. Errors recomputes the report on every call; nothing is cached.
//
// # Architecture
//
//   - rules.go    – Rule sum type and factories
//   - evaluate.go – per-kind checks and the blank-value override
//   - report.go   – Errors, the report returned by Field.Errors
//   - field.go    – Field
//   - form.go     – Form, a fixed set of named fields
//   - codec.go    – JSON documents and ParseField/ParseForm plumbing
//   - yaml.go     – YAML encoding of the same documents
//   - core.go     – ValidationErrors, the error-shaped view of reports
//
// # Usage
//
//	email := validator.NewField("", validator.Required(), validator.Email())
//	password := validator.NewField("", validator.Required(), validator.Password(8))
//	form := validator.NewForm(map[string]*validator.Field{
//	    "email":    email,
//	    "password": password,
//	})
//
//	_ = form.Change("email", "user@example.com")
//	if !form.Valid() {
//	    for name, errs := range form.Errors() {
//	        // errs.Kinds() lists the failed rules of name
//	    }
//	}
//
// # Blank values
//
// A field without a Required rule is valid whenever its value is blank
// (empty after trimming whitespace), whatever other rules it carries. With
// Required, a blank value reports required together with any other failure.
//
// # Serialization
//
// Field.ToJSON and Form.ToJSON return generic documents:
//
//	{"type": "Validator", "defaultValue": "", "currentValue": "", "options": [...]}
//	{"type": "ValidatorForm", "fields": {"email": {...}}}
//
// ParseField and ParseForm accept those documents as decoded data or as JSON
// text and fail with ErrInvalidPayload when the type discriminator does not
// match. Pattern rules are carried as their source text and recompiled on
// parse; a pattern that cannot be recompiled is kept but never evaluated.
//
// # Concurrency
//
// Fields and forms have no internal locking. Guard Change against concurrent
// reads of the same instance.
package validator
