package scheduler

import (
	"log/slog"
	"sync"
	"time"
)

// Manual is a simulated clock. Callbacks run only when Advance moves time
// past their deadline, on the goroutine that calls Advance.
type Manual struct {
	now    time.Time
	seq    uint64
	tasks  map[uint64]*manualTask
	logger *slog.Logger
	mu     sync.Mutex
}

type manualTask struct {
	id       uint64
	deadline time.Time
	fn       func()
	m        *Manual
}

func (t *manualTask) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()

	if _, ok := t.m.tasks[t.id]; !ok {
		return false
	}
	delete(t.m.tasks, t.id)
	return true
}

// NewManual creates a simulated clock starting at start.
// A zero start uses the Unix epoch.
func NewManual(start time.Time, opts ...Option) *Manual {
	if start.IsZero() {
		start = time.Unix(0, 0).UTC()
	}
	o := newOptions(opts)
	return &Manual{
		now:    start,
		tasks:  make(map[uint64]*manualTask),
		logger: o.logger,
	}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTask{id: m.seq, deadline: m.now.Add(d), fn: fn, m: m}
	m.tasks[t.id] = t
	return t
}

// Advance moves the clock forward by d and runs every task whose deadline
// falls inside the window, earliest first; ties run in scheduling order.
// Tasks scheduled by callbacks run too if they come due within the window.
// Returns the number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	ran := 0
	for {
		m.mu.Lock()
		next := m.nextDue(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return ran
		}
		delete(m.tasks, next.id)
		m.now = next.deadline
		m.mu.Unlock()

		run(m.logger, next.fn)
		ran++
	}
}

// Pending returns the number of tasks waiting to run.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

func (m *Manual) nextDue(target time.Time) *manualTask {
	var next *manualTask
	for _, t := range m.tasks {
		if t.deadline.After(target) {
			continue
		}
		if next == nil || t.deadline.Before(next.deadline) ||
			(t.deadline.Equal(next.deadline) && t.id < next.id) {
			next = t
		}
	}
	return next
}
