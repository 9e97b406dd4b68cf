// Package validator implements declarative, synchronous form validation.
//
// A form is described as an ordered list of FieldRule values. Validate walks
// them in declaration order and returns a Result listing the failures in the
// same order. For each rule the checks run as follows, stopping at the first
// failure:
//
//  1. the value is trimmed (missing values are empty strings);
//  2. Required rejects an empty value;
//  3. KindEmail tests non-empty values against EmailPattern;
//  4. for KindPattern and KindPassword, Pattern tests non-empty values
//     (unanchored match); other kinds ignore Pattern;
//  5. MinLength / MaxLength compare the NFC rune count;
//  6. KindMatches compares the raw value with the Match field.
//
// KindChecked rules only test checkbox truthiness.
//
// # Reporting modes
//
// FirstPerField (default) reports at most one failure per field, so a second
// rule on an already failed field is skipped. FirstOnly stops the pass at the
// first failing field, which is how single-message login and registration
// forms behave. All reports every violated check.
//
// # Building blocks
//
// Each check is a Rule: a deferred Check func paired with a ValidationError.
// Rules can be used directly through Apply:
//
//	err := validator.Apply(
//	    validator.Required("email", email),
//	    validator.ValidEmail("email", email),
//	    validator.MinLen("password", password, 6),
//	)
//
// Validate never panics or errors on user input. An uncompilable pattern
// makes the field fail rather than the call. The package keeps no state
// apart from a bounded cache of compiled patterns, so it is safe for
// concurrent use.
package validator
