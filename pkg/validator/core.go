package validator

import (
	"errors"
	"slices"
	"strings"
)

// ValidationError is one failed check on one field. Code is a stable
// machine-readable identifier; Message is what the user sees.
type ValidationError struct {
	Field   string
	Message string
	Code    string
}

// ValidationErrors is the error form of a failed validation pass, in the
// order the failures were reported.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	var b strings.Builder
	b.WriteString("validation failed")
	for i, e := range ve {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(e.Field)
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Has reports whether field failed at least once.
func (ve ValidationErrors) Has(field string) bool {
	return slices.ContainsFunc(ve, func(e ValidationError) bool { return e.Field == field })
}

// Messages returns every message reported for field.
func (ve ValidationErrors) Messages(field string) []string {
	var out []string
	for _, e := range ve {
		if e.Field == field {
			out = append(out, e.Message)
		}
	}
	return out
}

// Fields returns failing field ids in first-failure order, without duplicates.
func (ve ValidationErrors) Fields() []string {
	var out []string
	for _, e := range ve {
		if !slices.Contains(out, e.Field) {
			out = append(out, e.Field)
		}
	}
	return out
}

// Rule pairs a deferred check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs every rule and returns the failures as ValidationErrors,
// or nil when all checks pass.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if !r.Check() {
			errs = append(errs, r.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ExtractValidationErrors unwraps ValidationErrors from err, or returns nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if err == nil || !errors.As(err, &ve) {
		return nil
	}
	return ve
}

// IsValidationError reports whether err carries ValidationErrors.
func IsValidationError(err error) bool {
	return len(ExtractValidationErrors(err)) > 0
}
