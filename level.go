package goturlogs

// Level is the default severity type. Values mirror slog numeric semantics and
// extend with Trace (-8), DevWarning (-2) and Fatal (12); the gaps leave room
// for intermediate custom levels.
type Level int

const (
	LevelTrace      Level = -8
	LevelDebug      Level = -4
	LevelDevWarning Level = -2
	LevelInfo       Level = 0
	LevelWarning    Level = 4
	LevelError      Level = 8
	LevelFatal      Level = 12
)

// Less orders levels numerically; lower is more verbose.
func (l Level) Less(other Level) bool { return l < other }

// Min returns the most verbose level.
func (Level) Min() Level { return LevelTrace }

// Max returns the most critical level.
func (Level) Max() Level { return LevelFatal }

// String returns the serialized rendering of the level. Unknown values render
// as the nearest named level at or below them.
func (l Level) String() string {
	switch {
	case l <= LevelTrace:
		return "trace"
	case l < LevelDevWarning:
		return "debug"
	case l < LevelInfo:
		return "dev warning"
	case l < LevelWarning:
		return "info"
	case l < LevelError:
		return "warning"
	case l < LevelFatal:
		return "error"
	default:
		return "fatal"
	}
}

// Named-level capabilities for the default type. Level supports the full set.

func (Level) TraceLevel() Level      { return LevelTrace }
func (Level) DebugLevel() Level      { return LevelDebug }
func (Level) DevWarningLevel() Level { return LevelDevWarning }
func (Level) InfoLevel() Level       { return LevelInfo }
func (Level) WarningLevel() Level    { return LevelWarning }
func (Level) ErrorLevel() Level      { return LevelError }
func (Level) FatalLevel() Level      { return LevelFatal }
