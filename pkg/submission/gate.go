package submission

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/uikit/pkg/logger"
	"github.com/dmitrymomot/uikit/pkg/scheduler"
	"github.com/dmitrymomot/uikit/pkg/statemachine"
)

// Default delays of the simulated submit lifecycle.
const (
	DefaultSubmitDelay = 1500 * time.Millisecond
	DefaultSentDelay   = 2 * time.Second
)

// State is the submit button phase of a form.
type State string

const (
	StateIdle    State = "idle"
	StateSending State = "sending"
	StateSent    State = "sent"
)

type signal string

const (
	signalSubmit    signal = "submit"
	signalDelivered signal = "delivered"
	signalReset     signal = "reset"
)

// Listener observes phase changes, typically to relabel and disable the
// submit button. Callbacks run outside the gate's locks.
type Listener interface {
	OnSending(ctx context.Context, form string)
	OnSent(ctx context.Context, form string)
	OnReset(ctx context.Context, form string)
}

// ListenerFuncs adapts optional functions to Listener.
type ListenerFuncs struct {
	Sending func(ctx context.Context, form string)
	Sent    func(ctx context.Context, form string)
	Reset   func(ctx context.Context, form string)
}

func (l ListenerFuncs) OnSending(ctx context.Context, form string) {
	if l.Sending != nil {
		l.Sending(ctx, form)
	}
}

func (l ListenerFuncs) OnSent(ctx context.Context, form string) {
	if l.Sent != nil {
		l.Sent(ctx, form)
	}
}

func (l ListenerFuncs) OnReset(ctx context.Context, form string) {
	if l.Reset != nil {
		l.Reset(ctx, form)
	}
}

// Gate tracks the submit lifecycle of every form: idle, then sending for the
// submit delay, then sent for the sent delay, then idle again with the form
// reset. A second submit before the form is idle again is rejected.
type Gate struct {
	sched       scheduler.Scheduler
	logger      *slog.Logger
	listener    Listener
	submitDelay time.Duration
	sentDelay   time.Duration

	mu     sync.Mutex
	forms  map[string]*formGate
	closed bool
}

type formGate struct {
	fsm  *statemachine.Machine[State, signal]
	task scheduler.Task
}

// Option configures a Gate.
type Option func(*Gate)

// WithScheduler sets the scheduler driving the delays.
func WithScheduler(s scheduler.Scheduler) Option {
	return func(g *Gate) {
		if s != nil {
			g.sched = s
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gate) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithListener sets the phase listener.
func WithListener(l Listener) Option {
	return func(g *Gate) {
		if l != nil {
			g.listener = l
		}
	}
}

// WithSubmitDelay sets how long a form stays in the sending phase.
func WithSubmitDelay(d time.Duration) Option {
	return func(g *Gate) {
		if d > 0 {
			g.submitDelay = d
		}
	}
}

// WithSentDelay sets how long a form stays in the sent phase.
func WithSentDelay(d time.Duration) Option {
	return func(g *Gate) {
		if d > 0 {
			g.sentDelay = d
		}
	}
}

// NewGate creates a submit gate.
func NewGate(opts ...Option) *Gate {
	g := &Gate{
		logger:      slog.Default(),
		listener:    ListenerFuncs{},
		submitDelay: DefaultSubmitDelay,
		sentDelay:   DefaultSentDelay,
		forms:       make(map[string]*formGate),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.sched == nil {
		g.sched = scheduler.NewReal(scheduler.WithLogger(g.logger))
	}
	return g
}

// newMachine builds the lifecycle of one form. Every transition is guarded
// by the gate being open and logs the phase change. Fire is only called with
// g.mu held, so the guard may read g.closed.
func (g *Gate) newMachine(form string) *statemachine.Machine[State, signal] {
	open := []statemachine.Guard[State, signal]{
		func(context.Context, State, signal) bool { return !g.closed },
	}
	logged := []statemachine.Action[State, signal]{
		func(ctx context.Context, from, to State, _ signal) error {
			g.logger.LogAttrs(ctx, slog.LevelDebug, "form phase changed",
				logger.Component("submission"),
				logger.Form(form),
				slog.String("from", string(from)),
				slog.String("state", string(to)),
			)
			return nil
		},
	}
	step := func(from, to State, sig signal) statemachine.Transition[State, signal] {
		return statemachine.Transition[State, signal]{From: from, To: to, Event: sig, Guards: open, Actions: logged}
	}
	return statemachine.New(StateIdle,
		step(StateIdle, StateSending, signalSubmit),
		step(StateSending, StateSent, signalDelivered),
		step(StateSent, StateIdle, signalReset),
	)
}

// Submit moves form into the sending phase. It returns ErrBusy unless the
// form is idle.
func (g *Gate) Submit(ctx context.Context, form string) error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return ErrClosed
	}
	fg, ok := g.forms[form]
	if !ok {
		fg = &formGate{fsm: g.newMachine(form)}
		g.forms[form] = fg
	}
	if _, err := fg.fsm.Fire(ctx, signalSubmit); err != nil {
		g.mu.Unlock()
		g.logger.LogAttrs(ctx, slog.LevelDebug, "submit rejected",
			logger.Component("submission"),
			logger.Form(form),
			logger.Error(err),
		)
		return ErrBusy
	}

	bg := context.WithoutCancel(ctx)
	fg.task = g.sched.AfterFunc(g.submitDelay, func() { g.advance(bg, form, signalDelivered) })
	g.mu.Unlock()

	g.listener.OnSending(ctx, form)
	return nil
}

// State returns the phase of form. Unknown forms are idle.
func (g *Gate) State(form string) State {
	g.mu.Lock()
	defer g.mu.Unlock()
	if fg, ok := g.forms[form]; ok {
		return fg.fsm.Current()
	}
	return StateIdle
}

// Cancel stops a pending phase change and returns form to idle without
// notifying the listener.
func (g *Gate) Cancel(form string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if fg, ok := g.forms[form]; ok {
		if fg.task != nil {
			fg.task.Stop()
		}
		fg.fsm.Reset()
	}
}

// Close cancels every pending phase change. Submit fails afterwards.
func (g *Gate) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	for _, fg := range g.forms {
		if fg.task != nil {
			fg.task.Stop()
		}
	}
	return nil
}

func (g *Gate) advance(ctx context.Context, form string, sig signal) {
	g.mu.Lock()
	fg, ok := g.forms[form]
	if !ok {
		g.mu.Unlock()
		return
	}
	next, err := fg.fsm.Fire(ctx, sig)
	if statemachine.IsRejected(err) {
		// closed while the timer was in flight
		g.mu.Unlock()
		return
	}
	if err != nil {
		g.mu.Unlock()
		g.logger.LogAttrs(ctx, slog.LevelWarn, "stale submission timer",
			logger.Component("submission"),
			logger.Form(form),
			logger.Error(err),
		)
		return
	}
	fg.task = nil
	if next == StateSent {
		fg.task = g.sched.AfterFunc(g.sentDelay, func() { g.advance(ctx, form, signalReset) })
	}
	g.mu.Unlock()

	switch next {
	case StateSent:
		g.listener.OnSent(ctx, form)
	case StateIdle:
		g.listener.OnReset(ctx, form)
	}
}
