package goturlogs

// Facade helpers over the default global logger.
// Usage: goturlogs.Info("hello, world")

// LogEntry dispatches a prebuilt entry through the default global logger.
func LogEntry(e Entry[Level]) error { return Default().LogMessage(e) }

// Log logs text at an explicit level through the default global logger.
func Log(level Level, text string) error { return Default().LogWithSeverity(level, text) }

func Trace(text string) error      { return Log(LevelTrace, text) }
func Debug(text string) error      { return Log(LevelDebug, text) }
func DevWarning(text string) error { return Log(LevelDevWarning, text) }
func Info(text string) error       { return Log(LevelInfo, text) }
func Warning(text string) error    { return Log(LevelWarning, text) }
func Error(text string) error      { return Log(LevelError, text) }
func Fatal(text string) error      { return Log(LevelFatal, text) }
