package events

import "sync"

// Mux routes events to handlers by form name, or by the clicked element for
// click events outside a form.
type Mux struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewMux creates an empty router.
func NewMux() *Mux {
	return &Mux{handlers: make(map[string]Handler)}
}

// Register binds h to key, replacing any previous handler.
func (m *Mux) Register(key string, h Handler) {
	m.mu.Lock()
	m.handlers[key] = h
	m.mu.Unlock()
}

// RegisterForm binds a FormSpec under its name.
func (m *Mux) RegisterForm(spec FormSpec) {
	m.Register(spec.Name, spec)
}

// Lookup returns the handler for key.
func (m *Mux) Lookup(key string) (Handler, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.handlers[key]
	return h, ok
}

// Handle implements Handler. Unrouted events yield Noop.
func (m *Mux) Handle(ev Event) []Command {
	key := ev.Form
	if key == "" {
		key = ev.Field
	}
	h, ok := m.Lookup(key)
	if !ok {
		return []Command{Noop{}}
	}
	return h.Handle(ev)
}
