package render

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/uikit/pkg/logger"
	"github.com/dmitrymomot/uikit/pkg/notifications"
)

// Snapshot keeps the rendered container in sync with a notification center
// by re-rendering on every container event.
type Snapshot struct {
	center *notifications.Center
	logger *slog.Logger

	mu      sync.RWMutex
	html    string
	version uint64

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSnapshot renders the current container and follows center until ctx is
// done or Close is called.
func NewSnapshot(ctx context.Context, center *notifications.Center, l *slog.Logger) *Snapshot {
	if l == nil {
		l = slog.Default()
	}
	ctx, cancel := context.WithCancel(ctx)
	s := &Snapshot{
		center: center,
		logger: l,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	sub := center.Subscribe(ctx)
	s.Refresh(ctx)

	go func() {
		defer close(s.done)
		for range sub.Receive() {
			s.Refresh(ctx)
		}
	}()
	return s
}

// Refresh re-renders the container from the center's current entries.
func (s *Snapshot) Refresh(ctx context.Context) {
	html, err := Render(ctx, Container(s.center.Active()))
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "failed to render notifications",
			logger.Component("render"),
			logger.Error(err),
		)
		return
	}

	s.mu.Lock()
	s.html = html
	s.version++
	s.mu.Unlock()
}

// HTML returns the latest rendered container.
func (s *Snapshot) HTML() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.html
}

// Version counts renders, starting at 1 after construction.
func (s *Snapshot) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Close stops following the center and waits for the follower to exit.
func (s *Snapshot) Close() error {
	s.cancel()
	<-s.done
	return nil
}
