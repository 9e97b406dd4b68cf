package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/uikit/pkg/cache"
)

// Kind selects the checks a FieldRule performs.
type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindPassword Kind = "password"
	KindPattern  Kind = "pattern"
	// KindMatches requires the field to equal the field named by Match.
	KindMatches Kind = "matches"
	// KindChecked requires a checkbox to be ticked.
	KindChecked Kind = "checked"
)

// FieldRule is a declarative constraint attached to one form input.
// Several rules may target the same field; they are evaluated in declaration
// order and, in the default mode, the first failing one wins.
type FieldRule struct {
	Field     string
	Required  bool
	Kind      Kind
	Pattern   string
	MinLength int // 0 = unset
	MaxLength int // 0 = unset
	Match     string
	Message   string
}

func Text(field string) FieldRule     { return FieldRule{Field: field, Kind: KindText} }
func Email(field string) FieldRule    { return FieldRule{Field: field, Kind: KindEmail} }
func Password(field string) FieldRule { return FieldRule{Field: field, Kind: KindPassword} }

func Pattern(field, pattern string) FieldRule {
	return FieldRule{Field: field, Kind: KindPattern, Pattern: pattern}
}

// Matches builds a confirmation rule: field must equal other.
func Matches(field, other string) FieldRule {
	return FieldRule{Field: field, Kind: KindMatches, Match: other}
}

func MustBeChecked(field string) FieldRule {
	return FieldRule{Field: field, Kind: KindChecked}
}

func (r FieldRule) Require() FieldRule {
	r.Required = true
	return r
}

func (r FieldRule) Min(n int) FieldRule {
	r.MinLength = n
	return r
}

func (r FieldRule) Max(n int) FieldRule {
	r.MaxLength = n
	return r
}

func (r FieldRule) WithMessage(msg string) FieldRule {
	r.Message = msg
	return r
}

// Failure is one reported violation.
type Failure struct {
	Field   string
	Message string
	Code    string
}

// Result is the verdict of one validation pass.
type Result struct {
	Valid    bool
	Failures []Failure
}

// First returns the first reported failure.
func (r Result) First() (Failure, bool) {
	if len(r.Failures) == 0 {
		return Failure{}, false
	}
	return r.Failures[0], true
}

func (r Result) Has(field string) bool {
	for _, f := range r.Failures {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Err returns the failures as ValidationErrors, or nil for a valid result.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	errs := make(ValidationErrors, 0, len(r.Failures))
	for _, f := range r.Failures {
		errs = append(errs, ValidationError(f))
	}
	return errs
}

// Mode controls how many failures a pass reports.
type Mode string

const (
	// FirstPerField reports at most one failure per field: the first failing rule wins.
	FirstPerField Mode = "first_per_field"
	// FirstOnly stops the whole pass at the first failing field.
	FirstOnly Mode = "first"
	// All reports every violated check; a field may appear more than once.
	All Mode = "all"
)

// ParseMode converts a configuration string to a Mode. Empty means FirstPerField.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return FirstPerField, nil
	case FirstPerField, FirstOnly, All:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Option configures a validation pass.
type Option func(*options)

type options struct {
	mode Mode
}

func WithMode(m Mode) Option {
	return func(o *options) {
		switch m {
		case FirstPerField, FirstOnly, All:
			o.mode = m
		}
	}
}

// patterns caches compiled field patterns across passes.
var patterns = cache.NewLRU[string, *regexp.Regexp](256)

// Validate checks values against rules in declaration order. It is a pure
// function: identical inputs always produce identical results. Missing values
// are treated as empty strings and malformed input only ever yields failures.
func Validate(rules []FieldRule, values map[string]string, opts ...Option) Result {
	o := options{mode: FirstPerField}
	for _, opt := range opts {
		opt(&o)
	}

	var failures []Failure
	failed := make(map[string]bool)

	for _, rule := range rules {
		if o.mode != All && failed[rule.Field] {
			continue
		}

		for _, check := range checksFor(rule, values) {
			if check.Check() {
				continue
			}
			failures = append(failures, Failure{
				Field:   rule.Field,
				Message: messageFor(rule, check.Error),
				Code:    check.Error.Code,
			})
			failed[rule.Field] = true
			if o.mode != All {
				break
			}
		}

		if o.mode == FirstOnly && len(failures) > 0 {
			break
		}
	}

	return Result{Valid: len(failures) == 0, Failures: failures}
}

// ValidateField runs only the rules attached to field. Cross-field rules
// still read their counterpart from values.
func ValidateField(rules []FieldRule, values map[string]string, field string, opts ...Option) Result {
	var own []FieldRule
	for _, r := range rules {
		if r.Field == field {
			own = append(own, r)
		}
	}
	return Validate(own, values, opts...)
}

// checksFor expands a rule into its ordered checks.
func checksFor(rule FieldRule, values map[string]string) []Rule {
	raw := values[rule.Field]
	value := strings.TrimSpace(raw)

	if rule.Kind == KindChecked {
		return []Rule{Checked(rule.Field, raw)}
	}

	var checks []Rule
	if rule.Required {
		checks = append(checks, Required(rule.Field, value))
	}
	if rule.Kind == KindEmail {
		checks = append(checks, ValidEmail(rule.Field, value))
	}
	if rule.Pattern != "" && (rule.Kind == KindPattern || rule.Kind == KindPassword) {
		checks = append(checks, MatchesPattern(rule.Field, value, compile(rule.Pattern)))
	}
	if rule.MinLength > 0 {
		checks = append(checks, MinLen(rule.Field, value, rule.MinLength))
	}
	if rule.MaxLength > 0 {
		checks = append(checks, MaxLen(rule.Field, value, rule.MaxLength))
	}
	if rule.Kind == KindMatches {
		checks = append(checks, EqualTo(rule.Field, raw, values[rule.Match]))
	}
	return checks
}

func compile(pattern string) *regexp.Regexp {
	re, err := patterns.GetOrLoad(pattern, regexp.Compile)
	if err != nil {
		return nil
	}
	return re
}

func messageFor(rule FieldRule, fallback ValidationError) string {
	if rule.Message != "" {
		return rule.Message
	}
	return fallback.Message
}
