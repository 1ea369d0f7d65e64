package goturlogs

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// The process-wide logger lives in a single slot shared by every
// instantiation, mirroring the one-static-slot model this library grew out
// of. The slot is created on first access and lives for the remainder of the
// process. It is keyed by the (Severity, Message) type pair of that first
// access: a later Global call with a different pair is a programming error
// and panics rather than silently creating a second hidden instance.
//
// Prefer passing a Logger explicitly where practical; Global exists for the
// single-composition-point case.
var (
	globalMu   sync.Mutex
	globalSlot atomic.Value // holds the *Logger[S, M] of the first instantiation
)

// Global returns the shared process-wide Logger for the (S, M) instantiation,
// constructing it with default state on first call. Initialization is
// once-only: concurrent first callers observe exactly one construction and
// all receive the same instance.
func Global[S Severity[S], M Message[S, M]]() *Logger[S, M] {
	// Fast path: slot already holds our instantiation.
	if v := globalSlot.Load(); v != nil {
		if l, ok := v.(*Logger[S, M]); ok {
			return l
		}
	}

	globalMu.Lock()
	defer globalMu.Unlock()

	v := globalSlot.Load()
	if v == nil {
		l := New[S, M]()
		globalSlot.Store(l)
		return l
	}
	l, ok := v.(*Logger[S, M])
	if !ok {
		panic(fmt.Sprintf(
			"goturlogs: global logger already initialized as %T, requested %T",
			v, (*Logger[S, M])(nil),
		))
	}
	return l
}

// Default returns the global Logger for the default (Level, Entry[Level])
// instantiation. This is the instance the package-level facade logs through.
func Default() *Logger[Level, Entry[Level]] {
	return Global[Level, Entry[Level]]()
}
