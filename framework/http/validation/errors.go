package validation

import (
	"encoding/json"
	"sort"
)

// ── Kinds ────────────────────────────────────────────────────────────────────

// Kind classifies why a field was rejected.
type Kind string

const (
	KindEmpty      Kind = "empty"
	KindFormat     Kind = "format"
	KindDomain     Kind = "domain"
	KindTooShort   Kind = "too_short"
	KindMismatch   Kind = "mismatch"
	KindNotANumber Kind = "not_a_number"
)

// Failure is the outcome of a single failing step.
type Failure struct {
	Kind    Kind
	Message string
}

func (f *Failure) Error() string { return f.Message }

// Fail builds a Failure.
func Fail(kind Kind, msg string) *Failure {
	return &Failure{Kind: kind, Message: msg}
}

// ── Error bag ────────────────────────────────────────────────────────────────

// Errors maps a field path to the first rule that failed for it.
// An absent key means the field is valid.
// JSON output: {"errors": {"field": ["msg"]}}
type Errors struct {
	entries map[string]*Failure
}

func (e *Errors) add(field string, f *Failure) {
	if e.entries == nil {
		e.entries = make(map[string]*Failure)
	}
	if _, exists := e.entries[field]; exists {
		return
	}
	e.entries[field] = f
}

// Has returns true if there are any errors.
func (e *Errors) Has() bool { return e != nil && len(e.entries) > 0 }

// HasField returns true if field failed.
func (e *Errors) HasField(field string) bool {
	if e == nil {
		return false
	}
	_, ok := e.entries[field]
	return ok
}

// First returns the message for a field, or "" when it is valid.
func (e *Errors) First(field string) string {
	if f := e.get(field); f != nil {
		return f.Message
	}
	return ""
}

// Kind returns the failure kind for a field, or "" when it is valid.
func (e *Errors) Kind(field string) Kind {
	if f := e.get(field); f != nil {
		return f.Kind
	}
	return ""
}

// Fields returns the failing field paths in sorted order.
func (e *Errors) Fields() []string {
	if e == nil {
		return nil
	}
	out := make([]string, 0, len(e.entries))
	for k := range e.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Map returns field → message.
func (e *Errors) Map() map[string]string {
	out := make(map[string]string, len(e.Fields()))
	for _, field := range e.Fields() {
		out[field] = e.entries[field].Message
	}
	return out
}

// MarshalJSON keeps the {"errors": {"field": ["msg"]}} envelope.
func (e *Errors) MarshalJSON() ([]byte, error) {
	bag := make(map[string][]string, len(e.Fields()))
	for field, msg := range e.Map() {
		bag[field] = []string{msg}
	}
	return json.Marshal(struct {
		Bag map[string][]string `json:"errors"`
	}{Bag: bag})
}

func (e *Errors) get(field string) *Failure {
	if e == nil {
		return nil
	}
	return e.entries[field]
}
