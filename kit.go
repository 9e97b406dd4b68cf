package uikit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/uikit/pkg/dispatch"
	"github.com/dmitrymomot/uikit/pkg/environment"
	"github.com/dmitrymomot/uikit/pkg/events"
	"github.com/dmitrymomot/uikit/pkg/kvstore"
	"github.com/dmitrymomot/uikit/pkg/logger"
	"github.com/dmitrymomot/uikit/pkg/markup"
	"github.com/dmitrymomot/uikit/pkg/notifications"
	"github.com/dmitrymomot/uikit/pkg/render"
	"github.com/dmitrymomot/uikit/pkg/scheduler"
	"github.com/dmitrymomot/uikit/pkg/submission"
	"github.com/dmitrymomot/uikit/pkg/uistate"
	"github.com/dmitrymomot/uikit/pkg/validator"
)

// Kit wires the page core together: validation handlers, the notification
// center, the submit gate and the page state.
type Kit struct {
	logger     *slog.Logger
	center     *notifications.Center
	gate       *submission.Gate
	dispatcher *dispatch.Dispatcher
	state      *uistate.State
	mux        *events.Mux
	mode       validator.Mode
	snapshot   *render.Snapshot

	closeOnce sync.Once
	mu        sync.RWMutex
	closed    bool
}

// Option customizes New.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	scheduler scheduler.Scheduler
	surface   dispatch.Surface
	store     kvstore.Store
	listener  submission.Listener
}

// WithLogger replaces the logger built from Config.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithScheduler sets the scheduler for notification timers and submit
// delays. Tests pass a scheduler.Manual.
func WithScheduler(s scheduler.Scheduler) Option {
	return func(o *options) { o.scheduler = s }
}

// WithSurface sets the rendering surface commands are applied to.
func WithSurface(s dispatch.Surface) Option {
	return func(o *options) { o.surface = s }
}

// WithStore replaces the store selected by Config.StorePath.
func WithStore(s kvstore.Store) Option {
	return func(o *options) { o.store = s }
}

// WithSubmitListener observes submit phases, e.g. to relabel buttons.
func WithSubmitListener(l submission.Listener) Option {
	return func(o *options) { o.listener = l }
}

// New builds a Kit from cfg. It fails only on invalid configuration.
func New(ctx context.Context, cfg Config, opts ...Option) (*Kit, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	mode, err := validator.ParseMode(cfg.ValidationMode)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	if o.logger == nil {
		l, err := newLogger(cfg)
		if err != nil {
			return nil, err
		}
		o.logger = l
	}
	if o.scheduler == nil {
		o.scheduler = scheduler.NewReal(scheduler.WithLogger(o.logger))
	}
	if o.surface == nil {
		o.surface = &dispatch.Recorder{}
	}
	if o.store == nil {
		if cfg.StorePath != "" {
			o.store = kvstore.NewFileStore(cfg.StorePath)
		} else {
			o.store = kvstore.NewMemoryStore(nil)
		}
	}

	center := notifications.NewCenter(
		notifications.WithLogger(o.logger),
		notifications.WithScheduler(o.scheduler),
		notifications.WithDefaultTimeout(cfg.NotifyTimeout),
		notifications.WithReplaceOnShow(cfg.NotifyReplace),
		notifications.WithMaxVisible(cfg.NotifyMax),
	)

	surface := o.surface
	gate := submission.NewGate(
		submission.WithLogger(o.logger),
		submission.WithScheduler(o.scheduler),
		submission.WithSubmitDelay(cfg.SubmitDelay),
		submission.WithSentDelay(cfg.SentDelay),
		submission.WithListener(resetForm{surface: surface, next: o.listener}),
	)

	caps := make([]uistate.Capability, 0, len(cfg.Capabilities))
	for _, c := range cfg.Capabilities {
		caps = append(caps, uistate.Capability(c))
	}

	k := &Kit{
		logger: o.logger,
		center: center,
		gate:   gate,
		dispatcher: dispatch.New(center,
			dispatch.WithSurface(surface),
			dispatch.WithGate(gate),
			dispatch.WithLogger(o.logger),
		),
		state: uistate.New(
			uistate.WithCenter(center),
			uistate.WithStore(o.store),
			uistate.WithLogger(o.logger),
			uistate.WithCapabilities(caps...),
			uistate.WithPrefersDark(cfg.PrefersDark),
		),
		mux:      events.Site(mode),
		mode:     mode,
		snapshot: render.NewSnapshot(context.WithoutCancel(ctx), center, o.logger),
	}

	k.logger.LogAttrs(ctx, slog.LevelDebug, "ui kit ready",
		logger.Component("uikit"),
		slog.String("validation_mode", string(mode)),
	)
	return k, nil
}

func newLogger(cfg Config) (*slog.Logger, error) {
	opts := []logger.Option{logger.WithEnvironment(environment.Parse(cfg.Env), "uikit")}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	if cfg.LogFormat != "" {
		f := logger.Format(cfg.LogFormat)
		if f != logger.FormatJSON && f != logger.FormatText {
			return nil, fmt.Errorf("%w: log format %q", ErrInvalidConfig, cfg.LogFormat)
		}
		opts = append(opts, logger.WithFormat(f))
	}
	return logger.New(opts...), nil
}

// Register adds or replaces the handler for a form or click target.
func (k *Kit) Register(key string, h events.Handler) {
	k.mux.Register(key, h)
}

// Handle routes ev to its handler and dispatches the resulting commands.
// It returns the handles of the notifications shown.
func (k *Kit) Handle(ctx context.Context, ev events.Event) ([]notifications.Handle, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.closed {
		return nil, ErrClosed
	}
	return k.dispatcher.Dispatch(ctx, k.mux.Handle(ev)...), nil
}

// RegisterMarkup derives the rules of form formID from its HTML constraint
// attributes and registers it under that id with the configured validation
// mode. success is the notice shown after a valid submit; empty shows none.
func (k *Kit) RegisterMarkup(r io.Reader, formID, success string) error {
	rules, err := markup.ParseForm(r, formID)
	if err != nil {
		return err
	}
	k.mux.RegisterForm(events.FormSpec{
		Name:    formID,
		Rules:   rules,
		Mode:    k.mode,
		Success: success,
	})
	return nil
}

// NotificationsHTML returns the rendered notification container. It follows
// the center asynchronously, so it may trail a Notify call briefly.
func (k *Kit) NotificationsHTML() string {
	return k.snapshot.HTML()
}

// Notify shows a notification outside any form flow.
func (k *Kit) Notify(ctx context.Context, message string, typ notifications.Type, opts ...notifications.NotifyOption) notifications.Handle {
	return k.center.Notify(ctx, message, typ, opts...)
}

func (k *Kit) Center() *notifications.Center { return k.center }
func (k *Kit) Gate() *submission.Gate        { return k.gate }
func (k *Kit) State() *uistate.State         { return k.state }
func (k *Kit) Logger() *slog.Logger          { return k.logger }

// Close stops every pending timer. It is safe to call more than once.
func (k *Kit) Close() error {
	var err error
	k.closeOnce.Do(func() {
		k.mu.Lock()
		k.closed = true
		k.mu.Unlock()
		err = errors.Join(k.gate.Close(), k.snapshot.Close(), k.center.Close())
	})
	return err
}

// resetForm clears a form's decorations when its submit cycle ends, then
// forwards to the user listener.
type resetForm struct {
	surface dispatch.Surface
	next    submission.Listener
}

func (r resetForm) OnSending(ctx context.Context, form string) {
	if r.next != nil {
		r.next.OnSending(ctx, form)
	}
}

func (r resetForm) OnSent(ctx context.Context, form string) {
	if r.next != nil {
		r.next.OnSent(ctx, form)
	}
}

func (r resetForm) OnReset(ctx context.Context, form string) {
	r.surface.ClearForm(form)
	if r.next != nil {
		r.next.OnReset(ctx, form)
	}
}
