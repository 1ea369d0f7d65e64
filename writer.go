package goturlogs

import (
	"io"
	"sync"
)

// Writer is the sink capability the Logger fans out to. Write is called once
// per registered writer per accepted message, synchronously, in registration
// order, with exclusive access to the writer for the duration of the call.
//
// A writer owns its own serialization, typically by delegating to a Formatter.
type Writer[S Severity[S], M Message[S, M]] interface {
	Write(m M) error
}

// WriterFunc adapts a plain function to the Writer capability.
type WriterFunc[S Severity[S], M Message[S, M]] func(m M) error

func (f WriterFunc[S, M]) Write(m M) error { return f(m) }

// Formatter renders a message into bytes on a destination. Writers consume it;
// the Logger never does. Template-style formatters surface malformed templates
// at construction time, before any message is dispatched.
type Formatter[S Severity[S], M Message[S, M]] interface {
	Format(m M, w io.Writer) error
}

// SharedWriter wraps a Writer for shared ownership between a Logger and the
// caller, or between multiple Loggers. All access is serialized by an internal
// mutex: dispatch locks it for each Write, and the caller can take the same
// exclusive access between log calls via Do. Lifetime is that of the longest
// holder of the handle.
type SharedWriter[S Severity[S], M Message[S, M]] struct {
	mu sync.Mutex
	w  Writer[S, M]
}

// NewSharedWriter wraps w in a shareable, mutex-guarded handle.
func NewSharedWriter[S Severity[S], M Message[S, M]](w Writer[S, M]) *SharedWriter[S, M] {
	return &SharedWriter[S, M]{w: w}
}

// Write forwards to the wrapped writer under the handle's lock. No two Write
// calls on the same handle ever execute concurrently.
func (s *SharedWriter[S, M]) Write(m M) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(m)
}

// Do runs f with exclusive access to the wrapped writer. Use it to mutate a
// writer that is concurrently registered with one or more Loggers.
func (s *SharedWriter[S, M]) Do(f func(w Writer[S, M])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.w)
}
