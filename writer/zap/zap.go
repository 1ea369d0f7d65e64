// Package zap bridges the logging facade to go.uber.org/zap.
package zap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	goturlogs "github.com/sophie-katz/got-ur-logs-uwu"
)

// Writer forwards messages to a *zap.Logger. It is fixed to the default Level
// severity and generic over the message representation.
type Writer[M goturlogs.Message[goturlogs.Level, M]] struct {
	l *zap.Logger
}

// New returns a bridge writer around l. A nil logger falls back to zap.NewNop.
func New[M goturlogs.Message[goturlogs.Level, M]](l *zap.Logger) *Writer[M] {
	if l == nil {
		l = zap.NewNop()
	}
	return &Writer[M]{l: l}
}

// Write emits the message at the mapped zap level.
func (w *Writer[M]) Write(m M) error {
	w.l.Log(mapLevel(m.Severity()), m.Text())
	return nil
}

// mapLevel converts a Level to a zapcore.Level. Zap has no trace level, so
// trace and dev warning collapse into Debug; Fatal maps to Error to keep
// os.Exit and DPanic out of library code.
func mapLevel(l goturlogs.Level) zapcore.Level {
	switch {
	case l <= goturlogs.LevelDevWarning:
		return zapcore.DebugLevel
	case l <= goturlogs.LevelInfo:
		return zapcore.InfoLevel
	case l <= goturlogs.LevelWarning:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
