package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/uikit/pkg/logger"
)

// Task is a cancellation token for a scheduled callback.
type Task interface {
	// Stop prevents the callback from running.
	// Returns false if the callback already ran or the task was already stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay and reports the current time.
// Implementations must be safe for concurrent use.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Task
}

// Option configures a scheduler.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report panicking callbacks.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Real schedules callbacks on wall-clock timers.
type Real struct {
	logger *slog.Logger
}

// NewReal creates a wall-clock scheduler.
func NewReal(opts ...Option) *Real {
	o := newOptions(opts)
	return &Real{logger: o.logger}
}

func (r *Real) Now() time.Time {
	return time.Now()
}

// AfterFunc runs fn on its own goroutine once d has elapsed.
func (r *Real) AfterFunc(d time.Duration, fn func()) Task {
	return time.AfterFunc(d, func() { run(r.logger, fn) })
}

// run invokes fn and swallows any panic so a failing callback never takes the host down.
func run(l *slog.Logger, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.LogAttrs(context.Background(), slog.LevelError, "scheduled task panicked",
				logger.Component("scheduler"),
				logger.Error(fmt.Errorf("%w: %v", ErrTaskPanicked, r)),
			)
		}
	}()
	fn()
}
