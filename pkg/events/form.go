package events

import (
	"time"

	"github.com/dmitrymomot/uikit/pkg/notifications"
	"github.com/dmitrymomot/uikit/pkg/validator"
)

// FormSpec binds a form to its rules and the notices it shows.
type FormSpec struct {
	Name  string
	Rules []validator.FieldRule
	Mode  validator.Mode
	// Success is shown after a valid submit; empty shows nothing.
	Success string
	// Failure, when set, replaces the first failure message in the error
	// notification. Field decorations keep their own messages.
	Failure string
	// Timeout overrides the notification timeout for this form.
	Timeout time.Duration
	// Replace shows notices in a single slot, replacing the previous one.
	Replace bool
}

// Handle implements Handler.
//
// A failed submit yields the decorations plus exactly one error notice; a
// valid submit yields the cleared decorations plus at most one success
// notice. Blur validates only the blurred field. Input clears the field's
// decoration, except that a confirmation field reports a mismatch as soon as
// both values are present.
func (s FormSpec) Handle(ev Event) []Command {
	if ev.Form != s.Name {
		return []Command{Noop{}}
	}

	switch ev.Kind {
	case KindSubmit:
		return s.submit(ev)
	case KindBlur:
		if ev.Field == "" {
			return []Command{Noop{}}
		}
		return []Command{ApplyValidationResult{
			Form:   s.Name,
			Field:  ev.Field,
			Result: validator.ValidateField(s.Rules, ev.Values, ev.Field, validator.WithMode(s.Mode)),
		}}
	case KindInput:
		if ev.Field == "" {
			return []Command{Noop{}}
		}
		return []Command{ApplyValidationResult{
			Form:   s.Name,
			Field:  ev.Field,
			Result: s.live(ev),
		}}
	default:
		return []Command{Noop{}}
	}
}

func (s FormSpec) submit(ev Event) []Command {
	res := validator.Validate(s.Rules, ev.Values, validator.WithMode(s.Mode))

	if first, failed := res.First(); failed {
		msg := first.Message
		if s.Failure != "" {
			msg = s.Failure
		}
		return []Command{
			ApplyValidationResult{Form: s.Name, Result: res, Focus: first.Field, Submit: true},
			s.notice(msg, notifications.TypeError),
		}
	}

	cmds := []Command{ApplyValidationResult{Form: s.Name, Result: res, Submit: true}}
	if s.Success != "" {
		cmds = append(cmds, s.notice(s.Success, notifications.TypeSuccess))
	}
	return cmds
}

// live reports a confirmation mismatch while typing; every other field is
// cleared until it is blurred or submitted.
func (s FormSpec) live(ev Event) validator.Result {
	for _, r := range s.Rules {
		if r.Kind != validator.KindMatches {
			continue
		}
		if r.Field != ev.Field && r.Match != ev.Field {
			continue
		}
		if ev.Values[r.Field] == "" || ev.Values[r.Match] == "" {
			continue
		}
		check := validator.FieldRule{Field: r.Field, Kind: validator.KindMatches, Match: r.Match, Message: r.Message}
		if res := validator.Validate([]validator.FieldRule{check}, ev.Values); !res.Valid {
			return res
		}
	}
	return validator.Result{Valid: true}
}

func (s FormSpec) notice(msg string, typ notifications.Type) ShowNotification {
	return ShowNotification{Message: msg, Type: typ, Timeout: s.Timeout, Replace: s.Replace}
}
