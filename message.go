package goturlogs

import (
	"time"

	"github.com/trickstertwo/xclock"
)

// Message is the constraint every message type must satisfy to flow through a
// Logger: it carries a severity and a text payload, and it can construct a new
// value of itself from those two core fields. The constructor is invoked on
// the zero value, which lets LogWithSeverity and the level shortcuts build
// messages without knowing the concrete representation.
//
// Separating the capability from the concrete Entry lets callers substitute
// enriched message types (source location, request ids, ...) without touching
// the Logger.
type Message[S Severity[S], M any] interface {
	// Severity returns the severity of the message.
	Severity() S
	// Text returns the text content of the message.
	Text() string
	// New constructs a message from the core fields. Called on the zero value.
	New(severity S, text string) M
}

// Entry is the default message representation: severity, immutable text and a
// single authoritative timestamp taken from xclock at construction.
type Entry[S Severity[S]] struct {
	severity S
	text     string
	at       time.Time
}

// NewEntry constructs an Entry from the core fields, stamped with xclock.Now().
func NewEntry[S Severity[S]](severity S, text string) Entry[S] {
	return Entry[S]{severity: severity, text: text, at: xclock.Now()}
}

// New implements the constructor capability.
func (Entry[S]) New(severity S, text string) Entry[S] {
	return NewEntry(severity, text)
}

// Severity returns the severity of the entry.
func (e Entry[S]) Severity() S { return e.severity }

// Text returns the text content of the entry.
func (e Entry[S]) Text() string { return e.text }

// At returns the time the entry was constructed.
func (e Entry[S]) At() time.Time { return e.at }
