package validator

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf16"
)

// emailAtom is the character class of an unquoted local-part or domain atom.
const emailAtom = "[a-z0-9!#$%&'*+/=?^_`{|}~-]"

// notLineTerminator matches any rune a JavaScript '.' would match.
const notLineTerminator = `[^\n\r\x{2028}\x{2029}]`

var (
	// Unanchored: a value passes if any substring looks like an address.
	// Lowercase only, applied case-sensitively.
	emailRegex = regexp.MustCompile(emailAtom + `+(?:\.` + emailAtom + `+)*@(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?`)

	// Unanchored host+path with a 2-4 letter TLD.
	urlRegex = regexp.MustCompile(`[-a-zA-Z0-9@:%_+.~#?&/=]{2,256}\.[a-zA-Z]{2,4}\b(/[-a-zA-Z0-9@:%_+.~#?&/=]*)?`)

	hexColorRegex = regexp.MustCompile(`^#?([0-9a-fA-F]{3}){1,2}$`)

	// An uppercase letter followed later on the same line by a lowercase one, or vice versa.
	bothCasesRegex = regexp.MustCompile(`[A-Z]` + notLineTerminator + `*[a-z]|[a-z]` + notLineTerminator + `*[A-Z]`)

	digitRegex  = regexp.MustCompile(`[0-9]`)
	symbolRegex = regexp.MustCompile(`[@#$%.<>?!]`)
)

// evaluate runs every rule against value and applies the blank override:
// unless the required rule fired, a blank value yields an empty report.
func evaluate(value string, rules []Rule) Errors {
	var errs Errors
	length := textLength(value)

	for _, rule := range rules {
		switch r := rule.(type) {
		case MinLengthRule:
			if r.Length > length {
				errs.MinLength = &LengthViolation{CurrentLength: length, AllowedLength: r.Length}
			}
		case MaxLengthRule:
			if r.Length < length {
				errs.MaxLength = &LengthViolation{CurrentLength: length, AllowedLength: r.Length}
			}
		case EmailRule:
			if !emailRegex.MatchString(value) {
				errs.Email = true
			}
		case PasswordRule:
			if pv := checkPassword(value, length, r); !pv.empty() {
				errs.Password = &pv
			}
		case RequiredRule:
			if isBlank(value) {
				errs.Required = true
			}
		case URLRule:
			if !urlRegex.MatchString(value) {
				errs.URL = true
			}
		case HexColorRule:
			if !hexColorRegex.MatchString(value) {
				errs.HexColor = true
			}
		case PatternRule:
			if r.Regexp != nil && !r.Regexp.MatchString(value) {
				errs.Pattern = true
			}
		}
	}

	if !errs.Required && isBlank(value) {
		return Errors{}
	}
	return errs
}

func checkPassword(value string, length int, r PasswordRule) PasswordViolation {
	var pv PasswordViolation
	if r.MinLength > length {
		pv.MinLength = &LengthViolation{CurrentLength: length, AllowedLength: r.MinLength}
	}
	if r.HasMaxLength && r.MaxLength < length {
		pv.MaxLength = &LengthViolation{CurrentLength: length, AllowedLength: r.MaxLength}
	}
	if r.BothCases && !bothCasesRegex.MatchString(value) {
		pv.BothCases = true
	}
	if r.Numbers && !digitRegex.MatchString(value) {
		pv.Numbers = true
	}
	if r.Symbols && !symbolRegex.MatchString(value) {
		pv.Symbols = true
	}
	return pv
}

// textLength counts UTF-16 code units so lengths agree with browser peers.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, isTrimSpace) == ""
}

// isTrimSpace matches the characters JavaScript's String.prototype.trim
// strips: Unicode spaces and line terminators plus U+FEFF, without U+0085.
func isTrimSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return r == '\uFEFF' || unicode.IsSpace(r)
}
