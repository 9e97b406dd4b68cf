package events

import (
	"time"

	"github.com/dmitrymomot/uikit/pkg/notifications"
	"github.com/dmitrymomot/uikit/pkg/validator"
)

// Kind identifies the user interaction behind an Event.
type Kind string

const (
	KindSubmit Kind = "submit"
	KindInput  Kind = "input"
	KindBlur   Kind = "blur"
	KindClick  Kind = "click"
)

// Event is a host UI event reduced to plain data.
// Field holds the input for input and blur events and the clicked element
// for click events. Values is a snapshot of the form's field values.
type Event struct {
	Kind   Kind
	Form   string
	Field  string
	Values map[string]string
}

// Command is an instruction for the host adapter. The set is closed:
// ShowNotification, ApplyValidationResult and Noop.
type Command interface {
	command()
}

// ShowNotification asks the notification center to show Message.
// A zero Timeout uses the center default.
type ShowNotification struct {
	Message string
	Type    notifications.Type
	Timeout time.Duration
	Replace bool
}

// ApplyValidationResult asks the surface to decorate fields.
// Field is empty for whole-form results; Focus names the field to focus.
// Submit marks results of a submit pass.
type ApplyValidationResult struct {
	Form   string
	Field  string
	Result validator.Result
	Focus  string
	Submit bool
}

// Noop means the event needs no reaction.
type Noop struct{}

func (ShowNotification) command()      {}
func (ApplyValidationResult) command() {}
func (Noop) command()                  {}

// Handler turns an event into commands. Handlers are pure: they read only
// the event and never touch the host.
type Handler interface {
	Handle(ev Event) []Command
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ev Event) []Command

func (f HandlerFunc) Handle(ev Event) []Command { return f(ev) }

// Notice returns a click handler that always shows the same notification.
func Notice(message string, typ notifications.Type) Handler {
	return HandlerFunc(func(ev Event) []Command {
		if ev.Kind != KindClick {
			return []Command{Noop{}}
		}
		return []Command{ShowNotification{Message: message, Type: typ}}
	})
}
