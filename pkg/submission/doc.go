// Package submission gates form submits while a (simulated) request is in
// flight.
//
// Each form walks idle → sending → sent → idle. The sending and sent phases
// last WithSubmitDelay and WithSentDelay; a Listener relabels the submit
// button and resets the form when it returns to idle. Submitting a form that
// is not idle returns ErrBusy, which is how double submits are dropped.
package submission
