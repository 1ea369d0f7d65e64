// Package plaintext renders messages as plain text through a small template
// language with two substitution points: {{severity}} and {{text}}.
package plaintext

import (
	"fmt"
	"io"
	"strings"

	goturlogs "github.com/sophie-katz/got-ur-logs-uwu"
)

// DefaultTemplate is the template Default compiles, rendering messages like
//
//	[INFO] hello, world
const DefaultTemplate = "[{{severity}}] {{text}}"

type segmentKind uint8

const (
	segLiteral segmentKind = iota
	segSeverity
	segText
)

type segment struct {
	kind    segmentKind
	literal string
}

// Formatter writes messages using a template compiled at construction time.
// Compilation failures (unclosed or unknown substitutions) surface from New,
// before any message is ever dispatched; Format itself can only fail on the
// destination's io errors.
type Formatter[S goturlogs.Severity[S], M goturlogs.Message[S, M]] struct {
	segments      []segment
	upperSeverity bool
}

// Option configures a Formatter.
type Option func(*options)

type options struct {
	upperSeverity bool
}

// WithUppercaseSeverity renders the severity substitution in upper case
// ("INFO", "DEV WARNING") instead of the serialized lower-case form.
func WithUppercaseSeverity() Option {
	return func(o *options) { o.upperSeverity = true }
}

// New compiles a template. The only recognized substitutions are
// {{severity}} and {{text}}; anything else between braces is a compile error.
//
//	f, err := plaintext.New[goturlogs.Level, goturlogs.Entry[goturlogs.Level]](
//		"{{severity}}: {{text}}")
func New[S goturlogs.Severity[S], M goturlogs.Message[S, M]](template string, opts ...Option) (*Formatter[S, M], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	segments, err := compile(template)
	if err != nil {
		return nil, err
	}
	return &Formatter[S, M]{segments: segments, upperSeverity: o.upperSeverity}, nil
}

// Default returns a formatter for DefaultTemplate with uppercase severities,
// rendering "[INFO] hello, world".
func Default[S goturlogs.Severity[S], M goturlogs.Message[S, M]]() *Formatter[S, M] {
	f, err := New[S, M](DefaultTemplate, WithUppercaseSeverity())
	if err != nil {
		panic(fmt.Sprintf("plaintext: default template failed to compile: %v", err))
	}
	return f
}

// Format renders the message to w.
func (f *Formatter[S, M]) Format(m M, w io.Writer) error {
	for _, seg := range f.segments {
		var out string
		switch seg.kind {
		case segLiteral:
			out = seg.literal
		case segSeverity:
			out = m.Severity().String()
			if f.upperSeverity {
				out = strings.ToUpper(out)
			}
		case segText:
			out = m.Text()
		}
		if _, err := io.WriteString(w, out); err != nil {
			return fmt.Errorf("plaintext: render: %w", err)
		}
	}
	return nil
}

func compile(template string) ([]segment, error) {
	var segments []segment
	rest := template
	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			if rest != "" {
				segments = append(segments, segment{kind: segLiteral, literal: rest})
			}
			return segments, nil
		}
		if open > 0 {
			segments = append(segments, segment{kind: segLiteral, literal: rest[:open]})
		}
		rest = rest[open+2:]
		end := strings.Index(rest, "}}")
		if end < 0 {
			return nil, &TemplateError{Template: template, Detail: "unclosed substitution"}
		}
		name := strings.TrimSpace(rest[:end])
		switch name {
		case "severity":
			segments = append(segments, segment{kind: segSeverity})
		case "text":
			segments = append(segments, segment{kind: segText})
		default:
			return nil, &TemplateError{Template: template, Detail: fmt.Sprintf("unknown substitution %q", name)}
		}
		rest = rest[end+2:]
	}
}

// TemplateError reports a malformed template at compile time.
type TemplateError struct {
	Template string
	Detail   string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("plaintext: template %q: %s", e.Template, e.Detail)
}
