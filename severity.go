package goturlogs

// Severity is the constraint every severity type must satisfy to be usable
// with a Logger. It demands a total ordering via Less, the extremes of the
// scale, and a human-readable rendering.
//
// Min is the most verbose value, Max the most critical. The Logger compares
// message severities against its threshold exclusively through Less, never
// through identity.
type Severity[S any] interface {
	// Less reports whether the receiver is strictly less severe than other.
	Less(other S) bool
	// Min returns the least severe value of the type.
	Min() S
	// Max returns the most severe value of the type.
	Max() S
	// String returns the serialized rendering, e.g. "info" or "dev warning".
	String() string
}

// Named-level capabilities. Each one is independent and optional: a severity
// type implements only the subset of well-known levels it actually supports,
// and the matching convenience entry points (LogTrace, LogDebug, ...) are
// constrained on these interfaces so an unsupported level is a compile error
// at the call site, not a runtime check.

// HasTrace is implemented by severity types that have a trace level.
type HasTrace[S any] interface {
	TraceLevel() S
}

// HasDebug is implemented by severity types that have a debug level.
type HasDebug[S any] interface {
	DebugLevel() S
}

// HasDevWarning is implemented by severity types that have a developer
// warning level.
type HasDevWarning[S any] interface {
	DevWarningLevel() S
}

// HasInfo is implemented by severity types that have an info level.
type HasInfo[S any] interface {
	InfoLevel() S
}

// HasWarning is implemented by severity types that have a warning level.
type HasWarning[S any] interface {
	WarningLevel() S
}

// HasError is implemented by severity types that have an error level.
type HasError[S any] interface {
	ErrorLevel() S
}

// HasFatal is implemented by severity types that have a fatal level.
type HasFatal[S any] interface {
	FatalLevel() S
}
