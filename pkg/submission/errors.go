package submission

import "errors"

var (
	// ErrBusy indicates a submit while the form is still sending or showing
	// its sent state.
	ErrBusy = errors.New("submission.busy")

	// ErrClosed indicates the gate was closed.
	ErrClosed = errors.New("submission.closed")
)
