package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Guard evaluates whether a transition may run.
type Guard[S, E comparable] func(ctx context.Context, from S, event E) bool

// Action runs a side effect during a transition. Returning an error prevents
// the state change.
type Action[S, E comparable] func(ctx context.Context, from, to S, event E) error

// Transition defines a state change triggered by an event.
type Transition[S, E comparable] struct {
	From    S
	To      S
	Event   E
	Guards  []Guard[S, E]  // All must pass for transition to proceed
	Actions []Action[S, E] // Executed in order before state change
}

// Machine is a thread-safe finite state machine over comparable states and
// events. Lookups use map[from][event][]Transition; the first transition
// whose guards pass wins.
type Machine[S, E comparable] struct {
	initial     S
	current     S
	transitions map[S]map[E][]Transition[S, E]
	mu          sync.RWMutex
}

// New creates a machine in the initial state with the given transitions.
func New[S, E comparable](initial S, transitions ...Transition[S, E]) *Machine[S, E] {
	m := &Machine[S, E]{
		initial:     initial,
		current:     initial,
		transitions: make(map[S]map[E][]Transition[S, E]),
	}
	for _, t := range transitions {
		m.Add(t)
	}
	return m
}

// Add registers a transition. Several transitions may share from/event to
// support guard-based branching.
func (m *Machine[S, E]) Add(t Transition[S, E]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transitions[t.From]; !ok {
		m.transitions[t.From] = make(map[E][]Transition[S, E])
	}
	m.transitions[t.From][t.Event] = append(m.transitions[t.From][t.Event], t)
}

// Current returns the current state.
func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Fire applies event and returns the new state. Actions run while the
// machine is locked, so they must not call back into it.
func (m *Machine[S, E]) Fire(ctx context.Context, event E) (S, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.find(ctx, event)
	if err != nil {
		return m.current, err
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, m.current, t.To, event); err != nil {
			return m.current, fmt.Errorf("action failed: %w", err)
		}
	}

	m.current = t.To
	return m.current, nil
}

// CanFire reports whether Fire would find an allowed transition.
func (m *Machine[S, E]) CanFire(ctx context.Context, event E) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, err := m.find(ctx, event)
	return err == nil
}

// Reset returns the machine to its initial state.
func (m *Machine[S, E]) Reset() {
	m.mu.Lock()
	m.current = m.initial
	m.mu.Unlock()
}

// find must be called with mu held.
func (m *Machine[S, E]) find(ctx context.Context, event E) (*Transition[S, E], error) {
	candidates := m.transitions[m.current][event]
	if len(candidates) == 0 {
		return nil, &NoTransitionError{State: fmt.Sprint(m.current), Event: fmt.Sprint(event)}
	}

	for i := range candidates {
		if guardsPass(ctx, candidates[i], m.current, event) {
			return &candidates[i], nil
		}
	}
	return nil, &RejectedError{State: fmt.Sprint(m.current), Event: fmt.Sprint(event)}
}

func guardsPass[S, E comparable](ctx context.Context, t Transition[S, E], from S, event E) bool {
	for _, g := range t.Guards {
		if g != nil && !g(ctx, from, event) {
			return false
		}
	}
	return true
}
