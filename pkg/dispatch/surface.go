package dispatch

import "sync"

// Surface is the rendering side of the page that field decorations and focus
// changes are applied to.
type Surface interface {
	MarkInvalid(form, field, message string)
	ClearInvalid(form, field string)
	ClearForm(form string)
	Focus(form, field string)
}

// Call is one Surface invocation captured by Recorder.
type Call struct {
	Method  string
	Form    string
	Field   string
	Message string
}

// Recorder is a Surface that records every call. It serves tests and hosts
// without a document.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

func (r *Recorder) MarkInvalid(form, field, message string) {
	r.record(Call{Method: "MarkInvalid", Form: form, Field: field, Message: message})
}

func (r *Recorder) ClearInvalid(form, field string) {
	r.record(Call{Method: "ClearInvalid", Form: form, Field: field})
}

func (r *Recorder) ClearForm(form string) {
	r.record(Call{Method: "ClearForm", Form: form})
}

func (r *Recorder) Focus(form, field string) {
	r.record(Call{Method: "Focus", Form: form, Field: field})
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Reset forgets the recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

func (r *Recorder) record(c Call) {
	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()
}
