package notifications

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/uikit/pkg/broadcast"
	"github.com/dmitrymomot/uikit/pkg/logger"
	"github.com/dmitrymomot/uikit/pkg/scheduler"
)

// Center owns the notification container: it shows typed messages, removes
// them after their timeout and lets callers dismiss them early.
// Notify and Dismiss never fail; every failure mode degrades to a no-op.
type Center struct {
	logger         *slog.Logger
	sched          scheduler.Scheduler
	now            func() time.Time
	events         *broadcast.Memory[Event]
	defaultTimeout time.Duration
	replaceOnShow  bool
	maxVisible     int
	bufferSize     int

	mu        sync.Mutex
	container *Container
	entries   []*entry
	closed    bool
}

type entry struct {
	n    Notification
	task scheduler.Task
}

// NewCenter creates a notification center. The container itself is created
// on the first Notify call.
func NewCenter(opts ...Option) *Center {
	c := &Center{
		logger:         slog.Default(),
		defaultTimeout: DefaultTimeout,
		bufferSize:     16,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sched == nil {
		c.sched = scheduler.NewReal(scheduler.WithLogger(c.logger))
	}
	if c.now == nil {
		c.now = c.sched.Now
	}
	c.events = broadcast.NewMemory[Event](c.bufferSize)
	return c
}

// Notify shows message with the given severity and schedules its removal.
// The entry is visible by the time Notify returns. An empty message shows
// nothing and yields the zero Handle.
func (c *Center) Notify(ctx context.Context, message string, typ Type, opts ...NotifyOption) Handle {
	if strings.TrimSpace(message) == "" {
		c.logger.LogAttrs(ctx, slog.LevelDebug, "empty notification ignored",
			logger.Component("notifications"),
		)
		return Handle{}
	}
	if !typ.Valid() {
		typ = TypeInfo
	}

	o := notifyOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.timeout <= 0 {
		o.timeout = c.defaultTimeout
	}

	n := Notification{
		ID:        uuid.New().String(),
		Type:      typ,
		Message:   message,
		Timeout:   o.timeout,
		CreatedAt: c.now(),
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Handle{}
	}
	created := c.ensureContainer()

	var removed []Event
	if o.replace || c.replaceOnShow {
		for len(c.entries) > 0 {
			removed = append(removed, c.removeAt(0, ReasonReplaced))
		}
	}

	id := n.ID
	c.entries = append(c.entries, &entry{
		n:    n,
		task: c.sched.AfterFunc(n.Timeout, func() { c.remove(context.Background(), id, ReasonTimeout) }),
	})

	if c.maxVisible > 0 {
		for len(c.entries) > c.maxVisible {
			removed = append(removed, c.removeAt(0, ReasonEvicted))
		}
	}
	c.mu.Unlock()

	if created {
		c.logger.LogAttrs(ctx, slog.LevelDebug, "notification container created",
			logger.Component("notifications"),
		)
	}
	for _, ev := range removed {
		c.publish(ctx, ev)
	}
	c.publish(ctx, Event{Kind: EventShown, Notification: n})

	return Handle{id: id}
}

// Dismiss removes the notification referenced by h if it is still visible
// and cancels its timer. Dismissing an expired or unknown handle is a no-op.
func (c *Center) Dismiss(ctx context.Context, h Handle) {
	if h.IsZero() {
		return
	}
	c.remove(ctx, h.id, ReasonUser)
}

// Active returns a snapshot of the visible notifications in display order.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notification, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.n)
	}
	return out
}

// Len returns the number of visible notifications.
func (c *Center) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Container returns the notification container and whether it exists yet.
func (c *Center) Container() (Container, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.container == nil {
		return Container{}, false
	}
	return *c.container, true
}

// Subscribe streams container events until ctx is done or the center is closed.
func (c *Center) Subscribe(ctx context.Context) broadcast.Subscriber[Event] {
	return c.events.Subscribe(ctx)
}

// Close cancels every pending timer and releases subscribers. Visible
// notifications are dropped without events. Notify after Close is a no-op.
func (c *Center) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	for _, e := range c.entries {
		e.task.Stop()
	}
	c.entries = nil
	c.mu.Unlock()

	return c.events.Close()
}

// ensureContainer must be called with mu held.
func (c *Center) ensureContainer() bool {
	if c.container != nil {
		return false
	}
	c.container = &Container{
		ID:        uuid.New().String(),
		CreatedAt: c.now(),
	}
	return true
}

// removeAt must be called with mu held.
func (c *Center) removeAt(i int, reason Reason) Event {
	e := c.entries[i]
	e.task.Stop()
	c.entries = slices.Delete(c.entries, i, i+1)
	return Event{Kind: EventDismissed, Notification: e.n, Reason: reason}
}

func (c *Center) remove(ctx context.Context, id string, reason Reason) {
	c.mu.Lock()
	i := slices.IndexFunc(c.entries, func(e *entry) bool { return e.n.ID == id })
	if i < 0 {
		c.mu.Unlock()
		return
	}
	ev := c.removeAt(i, reason)
	c.mu.Unlock()

	c.publish(ctx, ev)
}

func (c *Center) publish(ctx context.Context, ev Event) {
	attrs := []slog.Attr{
		logger.Component("notifications"),
		logger.NotificationID(ev.Notification.ID),
		logger.Severity(string(ev.Notification.Type)),
	}
	msg := "notification shown"
	if ev.Kind == EventDismissed {
		msg = "notification dismissed"
		attrs = append(attrs, logger.Reason(string(ev.Reason)))
	}
	c.logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)

	if err := c.events.Broadcast(ctx, broadcast.Message[Event]{Data: ev}); err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "failed to publish notification event",
			logger.Component("notifications"),
			logger.Error(err),
		)
	}
}
