// Package zerolog bridges the logging facade to rs/zerolog: accepted messages
// are forwarded to a zerolog.Logger, which owns formatting and output.
package zerolog

import (
	"github.com/rs/zerolog"

	goturlogs "github.com/sophie-katz/got-ur-logs-uwu"
)

// Writer forwards messages to a zerolog.Logger. It is fixed to the default
// Level severity and generic over the message representation.
type Writer[M goturlogs.Message[goturlogs.Level, M]] struct {
	l zerolog.Logger
}

// New returns a bridge writer around l.
func New[M goturlogs.Message[goturlogs.Level, M]](l zerolog.Logger) *Writer[M] {
	return &Writer[M]{l: l}
}

// Write emits the message at the mapped zerolog level. Never fails; zerolog
// swallows sink errors internally.
func (w *Writer[M]) Write(m M) error {
	w.l.WithLevel(mapLevel(m.Severity())).Msg(m.Text())
	return nil
}

// mapLevel converts a Level to a zerolog.Level. Fatal maps to Error to avoid
// zerolog.Fatal's os.Exit; dev warning has no zerolog equivalent and maps to
// Debug.
func mapLevel(l goturlogs.Level) zerolog.Level {
	switch {
	case l <= goturlogs.LevelTrace:
		return zerolog.TraceLevel
	case l <= goturlogs.LevelDevWarning:
		return zerolog.DebugLevel
	case l <= goturlogs.LevelInfo:
		return zerolog.InfoLevel
	case l <= goturlogs.LevelWarning:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
