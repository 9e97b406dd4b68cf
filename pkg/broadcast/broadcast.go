package broadcast

import (
	"context"
	"sync"
)

// Message carries one broadcast value.
type Message[T any] struct {
	Data T
}

// Subscriber receives messages from a Broadcaster.
type Subscriber[T any] interface {
	// Receive returns the delivery channel. It is closed when the
	// subscriber or the broadcaster is closed.
	Receive() <-chan Message[T]
	// Dropped counts messages missed because the buffer was full.
	Dropped() uint64
	// Close is idempotent.
	Close() error
}

// Broadcaster fans messages out to every active subscriber.
type Broadcaster[T any] interface {
	// Subscribe registers a subscriber for the lifetime of ctx.
	Subscribe(ctx context.Context) Subscriber[T]
	// Broadcast never blocks: full subscribers miss the message.
	Broadcast(ctx context.Context, msg Message[T]) error
	Close() error
}

type delivery int

const (
	delivered delivery = iota
	dropped
	gone
)

type subscriber[T any] struct {
	mu      sync.Mutex
	ch      chan Message[T]
	done    bool
	dropped uint64
}

func newSubscriber[T any](size int) *subscriber[T] {
	return &subscriber[T]{ch: make(chan Message[T], size)}
}

func (s *subscriber[T]) Receive() <-chan Message[T] { return s.ch }

func (s *subscriber[T]) Dropped() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return nil
	}
	s.done = true
	close(s.ch)
	return nil
}

func (s *subscriber[T]) deliver(msg Message[T]) delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return gone
	}
	select {
	case s.ch <- msg:
		return delivered
	default:
		s.dropped++
		return dropped
	}
}
