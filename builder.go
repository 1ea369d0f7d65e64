package goturlogs

import (
	"time"

	"github.com/trickstertwo/xclock"
)

// EntryBuilder accumulates fields for an Entry (Builder pattern). Severity and
// text are required; the timestamp defaults to xclock.Now() at Build time.
//
// Usage: goturlogs.NewEntryBuilder[goturlogs.Level]().
//	WithSeverity(goturlogs.LevelInfo).
//	WithText("hello, world").
//	Build()
type EntryBuilder[S Severity[S]] struct {
	severity    S
	hasSeverity bool
	text        string
	hasText     bool
	at          time.Time
}

// NewEntryBuilder returns an empty builder.
func NewEntryBuilder[S Severity[S]]() *EntryBuilder[S] {
	return &EntryBuilder[S]{}
}

// WithSeverity sets the severity of the entry.
func (b *EntryBuilder[S]) WithSeverity(severity S) *EntryBuilder[S] {
	b.severity = severity
	b.hasSeverity = true
	return b
}

// WithText sets the text content of the entry.
func (b *EntryBuilder[S]) WithText(text string) *EntryBuilder[S] {
	b.text = text
	b.hasText = true
	return b
}

// WithTime overrides the entry timestamp. Unset, Build stamps xclock.Now().
func (b *EntryBuilder[S]) WithTime(at time.Time) *EntryBuilder[S] {
	b.at = at
	return b
}

// Build produces the Entry. A missing required field is a precondition
// violation: Build panics with ErrSeverityNotSet or ErrTextNotSet. Callers
// that want a recoverable result use TryBuild.
func (b *EntryBuilder[S]) Build() Entry[S] {
	e, err := b.TryBuild()
	if err != nil {
		panic(err)
	}
	return e
}

// TryBuild produces the Entry, or reports which required field is missing.
func (b *EntryBuilder[S]) TryBuild() (Entry[S], error) {
	if !b.hasSeverity {
		return Entry[S]{}, ErrSeverityNotSet
	}
	if !b.hasText {
		return Entry[S]{}, ErrTextNotSet
	}
	at := b.at
	if at.IsZero() {
		at = xclock.Now()
	}
	return Entry[S]{severity: b.severity, text: b.text, at: at}, nil
}
