package goturlogs

import (
	"fmt"
	"sync"

	"go.uber.org/multierr"
)

// Logger is the dispatch engine: it filters messages against a minimum
// severity and fans accepted messages out to every registered writer in
// registration order.
//
// A zero-configured Logger from New has an empty writer list and a threshold
// of S.Min(), so every message is accepted and silently discarded until a
// writer is registered. Loggers are safe for concurrent use without external
// synchronization; see LogMessage for the locking discipline.
type Logger[S Severity[S], M Message[S, M]] struct {
	// mu guards minSeverity and writers. Dispatch takes a read lock to
	// snapshot both, so registration is safe while dispatch is in progress;
	// writers added mid-dispatch are seen by the next LogMessage call.
	mu          sync.RWMutex
	minSeverity S
	writers     []*SharedWriter[S, M]
}

// New constructs a Logger with no writers and the minimum severity threshold
// set to the least severe value of S.
func New[S Severity[S], M Message[S, M]]() *Logger[S, M] {
	var zero S
	return &Logger[S, M]{minSeverity: zero.Min()}
}

// SetMinSeverity sets the threshold below which messages are dropped.
func (l *Logger[S, M]) SetMinSeverity(min S) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minSeverity = min
}

// MinSeverity returns the current threshold.
func (l *Logger[S, M]) MinSeverity() S {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.minSeverity
}

// Enabled reports whether a message at the given severity would be dispatched.
// Use it to avoid building expensive messages that would only be dropped.
func (l *Logger[S, M]) Enabled(severity S) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return !severity.Less(l.minSeverity)
}

// AddWriter takes ownership of a new writer instance, wraps it for exclusive
// mutable access and appends it to the registration list. Registration order
// determines fan-out order; no deduplication.
func (l *Logger[S, M]) AddWriter(w Writer[S, M]) {
	l.AddWriterShared(NewSharedWriter(w))
}

// AddWriterShared appends an externally-shared writer handle. The same handle
// may be registered with multiple Loggers or mutated by the caller between
// log calls via SharedWriter.Do.
func (l *Logger[S, M]) AddWriterShared(w *SharedWriter[S, M]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writers = append(l.writers, w)
}

// LogMessage dispatches a message. Below the threshold it is dropped with no
// side effects and a nil error. At or above it, the message is forwarded
// unmodified to every registered writer in registration order, acquiring each
// writer's lock only for the duration of its Write call, so contention on one
// writer never blocks another.
//
// A write failure is isolated to its writer: dispatch continues through the
// remaining writers and the failures are combined into the returned error.
func (l *Logger[S, M]) LogMessage(m M) error {
	l.mu.RLock()
	min := l.minSeverity
	writers := l.writers
	l.mu.RUnlock()

	if m.Severity().Less(min) {
		return nil
	}

	var err error
	for i, w := range writers {
		if werr := w.Write(m); werr != nil {
			err = multierr.Append(err, fmt.Errorf("writer %d: %w", i, werr))
		}
	}
	return err
}

// LogWithSeverity constructs a message from the core fields and dispatches it.
func (l *Logger[S, M]) LogWithSeverity(severity S, text string) error {
	var zero M
	return l.LogMessage(zero.New(severity, text))
}
