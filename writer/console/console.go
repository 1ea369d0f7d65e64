// Package console provides a writer that renders messages through a Formatter
// and emits one line per message to stdout, stderr or an arbitrary byte sink.
package console

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	goturlogs "github.com/sophie-katz/got-ur-logs-uwu"
)

// Writer formats each message and writes the rendered line, newline included,
// with a single Write call on the destination. Serialization against other
// users of the same destination is the Logger's per-writer lock; Writer holds
// no lock of its own.
type Writer[S goturlogs.Severity[S], M goturlogs.Message[S, M]] struct {
	dst       io.Writer
	formatter goturlogs.Formatter[S, M]
	colorize  bool
	buf       bytes.Buffer
}

// Option configures a Writer.
type Option func(*options)

type options struct {
	colorize    bool
	hasColorize bool
}

// WithColor forces severity coloring on or off, overriding TTY detection.
// Coloring applies to the default Level severity; other severity types render
// uncolored regardless.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.colorize = enabled
		o.hasColorize = true
	}
}

// NewStdout returns a writer for standard output. Color is enabled when
// stdout is a terminal.
func NewStdout[S goturlogs.Severity[S], M goturlogs.Message[S, M]](f goturlogs.Formatter[S, M], opts ...Option) *Writer[S, M] {
	return newWriter(os.Stdout, f, isTerminal(os.Stdout), opts)
}

// NewStderr returns a writer for standard error. Color is enabled when
// stderr is a terminal.
func NewStderr[S goturlogs.Severity[S], M goturlogs.Message[S, M]](f goturlogs.Formatter[S, M], opts ...Option) *Writer[S, M] {
	return newWriter(os.Stderr, f, isTerminal(os.Stderr), opts)
}

// New returns a writer for an arbitrary byte sink. Color is disabled unless
// forced with WithColor.
func New[S goturlogs.Severity[S], M goturlogs.Message[S, M]](dst io.Writer, f goturlogs.Formatter[S, M], opts ...Option) *Writer[S, M] {
	return newWriter(dst, f, false, opts)
}

func newWriter[S goturlogs.Severity[S], M goturlogs.Message[S, M]](dst io.Writer, f goturlogs.Formatter[S, M], colorize bool, opts []Option) *Writer[S, M] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasColorize {
		colorize = o.colorize
	}
	return &Writer[S, M]{dst: dst, formatter: f, colorize: colorize}
}

// Write renders the message and emits it as one line.
func (w *Writer[S, M]) Write(m M) error {
	w.buf.Reset()
	if err := w.formatter.Format(m, &w.buf); err != nil {
		return err
	}
	w.buf.WriteByte('\n')

	line := w.buf.Bytes()
	if w.colorize {
		if c := severityColor(m.Severity()); c != nil {
			line = []byte(c.Sprint(string(line[:len(line)-1])) + "\n")
		}
	}
	if _, err := w.dst.Write(line); err != nil {
		return fmt.Errorf("console: write: %w", err)
	}
	return nil
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// severityColor maps default levels to colors. Non-Level severity types get
// no color.
func severityColor(severity any) *color.Color {
	l, ok := severity.(goturlogs.Level)
	if !ok {
		return nil
	}
	switch {
	case l < goturlogs.LevelDebug:
		return color.New(color.FgHiBlack)
	case l < goturlogs.LevelInfo:
		return color.New(color.FgCyan)
	case l < goturlogs.LevelWarning:
		return nil // info renders plain
	case l < goturlogs.LevelError:
		return color.New(color.FgYellow)
	case l < goturlogs.LevelFatal:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgHiRed, color.Bold)
	}
}
