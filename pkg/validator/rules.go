package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// EmailPattern is the address shape accepted by the site's forms.
const EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

var emailRegex = regexp.MustCompile(EmailPattern)

// Failure codes reported in ValidationError.Code.
const (
	CodeRequired  = "required"
	CodeEmail     = "email"
	CodePattern   = "pattern"
	CodeMinLength = "min_length"
	CodeMaxLength = "max_length"
	CodeMismatch  = "mismatch"
	CodeUnchecked = "unchecked"
)

// Length counts user-perceived characters: runes after NFC normalisation,
// so a decomposed "é" counts once.
func Length(value string) int {
	return utf8.RuneCountInString(norm.NFC.String(value))
}

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{Field: field, Message: "field is required", Code: CodeRequired},
	}
}

// ValidEmail validates value against EmailPattern. Empty values pass; pair
// with Required when the address is mandatory.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value == "" || emailRegex.MatchString(value)
		},
		Error: ValidationError{Field: field, Message: "must be a valid email address", Code: CodeEmail},
	}
}

// MatchesPattern validates a non-empty value against re. The match is
// unanchored, like a script-side RegExp test. A nil re (an uncompilable
// pattern) always fails.
func MatchesPattern(field, value string, re *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			return re != nil && re.MatchString(value)
		},
		Error: ValidationError{Field: field, Message: "has an invalid format", Code: CodePattern},
	}
}

func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return Length(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
			Code:    CodeMinLength,
		},
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return Length(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
			Code:    CodeMaxLength,
		},
	}
}

// EqualTo validates that value equals other exactly, without trimming.
func EqualTo(field, value, other string) Rule {
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: ValidationError{Field: field, Message: "values do not match", Code: CodeMismatch},
	}
}

// Checked validates that a checkbox value is truthy.
func Checked(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsChecked(value)
		},
		Error: ValidationError{Field: field, Message: "must be checked", Code: CodeUnchecked},
	}
}

// IsChecked reports whether a submitted checkbox value means "checked".
func IsChecked(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes", "checked":
		return true
	default:
		return false
	}
}
