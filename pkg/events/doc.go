// Package events turns UI events into commands with pure handlers.
//
// A handler never touches the page. It reads an Event (submit, input, blur
// or click plus a snapshot of the form values) and returns Commands:
// ShowNotification, ApplyValidationResult or Noop. The dispatch package
// executes them against the real surface, which keeps everything here
// testable without a document.
//
//	mux := events.Site(validator.FirstPerField)
//	cmds := mux.Handle(events.Event{
//	    Kind:   events.KindSubmit,
//	    Form:   events.FormLogin,
//	    Values: map[string]string{"login-email": "", "login-password": ""},
//	})
//
// A submit produces exactly one notification: the first failure as an error,
// or the form's success message.
package events
