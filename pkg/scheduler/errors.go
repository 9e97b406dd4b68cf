package scheduler

import "errors"

// ErrTaskPanicked wraps the value recovered from a panicking callback.
var ErrTaskPanicked = errors.New("scheduled task panicked")
