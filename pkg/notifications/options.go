package notifications

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/uikit/pkg/scheduler"
)

// DefaultTimeout is the auto-dismiss delay used when none is configured.
const DefaultTimeout = 5 * time.Second

// Option configures a Center.
type Option func(*Center)

// WithLogger sets the logger for the Center.
func WithLogger(l *slog.Logger) Option {
	return func(c *Center) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithScheduler sets the scheduler used for auto-dismiss timers.
func WithScheduler(s scheduler.Scheduler) Option {
	return func(c *Center) {
		if s != nil {
			c.sched = s
		}
	}
}

// WithClock overrides the time source for CreatedAt stamps.
// Defaults to the scheduler's Now.
func WithClock(now func() time.Time) Option {
	return func(c *Center) {
		if now != nil {
			c.now = now
		}
	}
}

// WithDefaultTimeout sets the auto-dismiss delay for calls without WithTimeout.
// Non-positive values are ignored.
func WithDefaultTimeout(d time.Duration) Option {
	return func(c *Center) {
		if d > 0 {
			c.defaultTimeout = d
		}
	}
}

// WithReplaceOnShow keeps only the newest notification visible.
func WithReplaceOnShow(enabled bool) Option {
	return func(c *Center) {
		c.replaceOnShow = enabled
	}
}

// WithMaxVisible caps the number of visible notifications; the oldest are
// evicted first. Zero means unlimited.
func WithMaxVisible(n int) Option {
	return func(c *Center) {
		if n >= 0 {
			c.maxVisible = n
		}
	}
}

// WithBufferSize sets the per-subscriber event buffer.
func WithBufferSize(n int) Option {
	return func(c *Center) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}

// NotifyOption adjusts a single Notify call.
type NotifyOption func(*notifyOptions)

type notifyOptions struct {
	timeout time.Duration
	replace bool
}

// WithTimeout overrides the auto-dismiss delay for one notification.
// Non-positive values fall back to the default.
func WithTimeout(d time.Duration) NotifyOption {
	return func(o *notifyOptions) {
		o.timeout = d
	}
}

// Replace removes every visible notification before showing the new one.
func Replace() NotifyOption {
	return func(o *notifyOptions) {
		o.replace = true
	}
}
