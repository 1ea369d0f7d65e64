package goturlogs

// Level shortcuts for arbitrary Logger instantiations. Each is a free function
// rather than a method so its constraint can require the matching named-level
// capability: calling LogTrace with a severity type that has no trace level is
// a compile error, not a runtime check.

// LogTrace logs text at the trace level.
func LogTrace[S interface {
	Severity[S]
	HasTrace[S]
}, M Message[S, M]](l *Logger[S, M], text string) error {
	var zero S
	return l.LogWithSeverity(zero.TraceLevel(), text)
}

// LogDebug logs text at the debug level.
func LogDebug[S interface {
	Severity[S]
	HasDebug[S]
}, M Message[S, M]](l *Logger[S, M], text string) error {
	var zero S
	return l.LogWithSeverity(zero.DebugLevel(), text)
}

// LogDevWarning logs text at the developer warning level.
func LogDevWarning[S interface {
	Severity[S]
	HasDevWarning[S]
}, M Message[S, M]](l *Logger[S, M], text string) error {
	var zero S
	return l.LogWithSeverity(zero.DevWarningLevel(), text)
}

// LogInfo logs text at the info level.
func LogInfo[S interface {
	Severity[S]
	HasInfo[S]
}, M Message[S, M]](l *Logger[S, M], text string) error {
	var zero S
	return l.LogWithSeverity(zero.InfoLevel(), text)
}

// LogWarning logs text at the warning level.
func LogWarning[S interface {
	Severity[S]
	HasWarning[S]
}, M Message[S, M]](l *Logger[S, M], text string) error {
	var zero S
	return l.LogWithSeverity(zero.WarningLevel(), text)
}

// LogError logs text at the error level.
func LogError[S interface {
	Severity[S]
	HasError[S]
}, M Message[S, M]](l *Logger[S, M], text string) error {
	var zero S
	return l.LogWithSeverity(zero.ErrorLevel(), text)
}

// LogFatal logs text at the fatal level. Dispatch only; the process is not
// terminated.
func LogFatal[S interface {
	Severity[S]
	HasFatal[S]
}, M Message[S, M]](l *Logger[S, M], text string) error {
	var zero S
	return l.LogWithSeverity(zero.FatalLevel(), text)
}
