package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/uikit/pkg/events"
	"github.com/dmitrymomot/uikit/pkg/logger"
	"github.com/dmitrymomot/uikit/pkg/notifications"
	"github.com/dmitrymomot/uikit/pkg/submission"
)

// ErrSurfacePanicked wraps a panic raised by a Surface implementation.
var ErrSurfacePanicked = errors.New("dispatch.surface_panicked")

// Dispatcher executes commands against the notification center, the surface
// and the submit gate. It never fails: problems are logged and the remaining
// commands still run.
type Dispatcher struct {
	center  *notifications.Center
	surface Surface
	gate    *submission.Gate
	logger  *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithSurface sets the rendering surface. Defaults to a Recorder.
func WithSurface(s Surface) Option {
	return func(d *Dispatcher) {
		if s != nil {
			d.surface = s
		}
	}
}

// WithGate enables submit gating for valid submits.
func WithGate(g *submission.Gate) Option {
	return func(d *Dispatcher) {
		d.gate = g
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// New creates a dispatcher bound to center.
func New(center *notifications.Center, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		center:  center,
		surface: &Recorder{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Surface returns the surface commands are applied to.
func (d *Dispatcher) Surface() Surface { return d.surface }

// Dispatch runs cmds in order and returns the handles of the notifications
// it showed. When the submit gate rejects a valid submit because the form is
// still busy, the notifications that follow it in the batch are skipped, so a
// repeated submit never shows a second outcome notice.
func (d *Dispatcher) Dispatch(ctx context.Context, cmds ...events.Command) []notifications.Handle {
	var (
		handles  []notifications.Handle
		rejected bool
	)
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case events.ShowNotification:
			if rejected {
				continue
			}
			if h := d.notify(ctx, c); !h.IsZero() {
				handles = append(handles, h)
			}
		case events.ApplyValidationResult:
			rejected = !d.apply(ctx, c)
		case events.Noop, nil:
		default:
			d.logger.LogAttrs(ctx, slog.LevelWarn, "unknown command",
				logger.Component("dispatch"),
				slog.String("type", fmt.Sprintf("%T", cmd)),
			)
		}
	}
	return handles
}

func (d *Dispatcher) notify(ctx context.Context, c events.ShowNotification) notifications.Handle {
	var opts []notifications.NotifyOption
	if c.Timeout > 0 {
		opts = append(opts, notifications.WithTimeout(c.Timeout))
	}
	if c.Replace {
		opts = append(opts, notifications.Replace())
	}
	return d.center.Notify(ctx, c.Message, c.Type, opts...)
}

// apply reports false when a valid submit was refused by the gate.
// The surface is left untouched in that case: the form is still busy with
// the previous submission.
func (d *Dispatcher) apply(ctx context.Context, c events.ApplyValidationResult) bool {
	if c.Submit && c.Result.Valid && d.gate != nil {
		if err := d.gate.Submit(ctx, c.Form); err != nil {
			d.logger.LogAttrs(ctx, slog.LevelDebug, "submit ignored",
				logger.Component("dispatch"),
				logger.Form(c.Form),
				logger.Error(err),
			)
			return false
		}
	}

	d.safely(ctx, c.Form, c.Field, func() {
		if c.Field != "" {
			d.surface.ClearInvalid(c.Form, c.Field)
		} else {
			d.surface.ClearForm(c.Form)
		}
		for _, f := range c.Result.Failures {
			d.surface.MarkInvalid(c.Form, f.Field, f.Message)
		}
		if c.Focus != "" {
			d.surface.Focus(c.Form, c.Focus)
		}
	})
	return true
}

func (d *Dispatcher) safely(ctx context.Context, form, field string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			attrs := []slog.Attr{
				logger.Component("dispatch"),
				logger.Form(form),
				logger.Error(fmt.Errorf("%w: %v", ErrSurfacePanicked, r)),
			}
			if field != "" {
				attrs = append(attrs, logger.Field(field))
			}
			d.logger.LogAttrs(ctx, slog.LevelError, "surface failed", attrs...)
		}
	}()
	fn()
}
