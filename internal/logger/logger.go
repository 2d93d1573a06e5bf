// Package logger is the console-output layer: one Logger capability
// interface with three interchangeable variants. StandardLogger writes
// directly to the terminal, BufferLogger captures everything in memory for
// tests, and VerboseLogger annotates each message with the wall-clock time it
// was held before emission.
package logger

import "time"

// Logger is the output capability handed to commands at startup. A command
// picks one implementation and keeps it for the process lifetime.
type Logger interface {
	// Error writes an error message to the error stream. stackTrace is
	// rendered only when non-empty.
	Error(message string, stackTrace string)
	// Status writes a user-facing progress message. emphasis renders the
	// message bold when the terminal supports it; newline controls the
	// trailing line break.
	Status(message string, emphasis bool, newline bool)
	// Trace writes diagnostic output. Only variants that keep or show trace
	// output do anything with it.
	Trace(message string)
	// Progress starts an indeterminate progress indication and returns its
	// handle. Starting a new one cancels any handle still live.
	Progress(message string) Status
	// Flush forces out any held-back output. Only the verbose variant
	// defers anything.
	Flush()

	// Verbose reports whether this is the verbose variant.
	Verbose() bool

	Quiet() bool
	SetQuiet(quiet bool)
}

type messageKind int

const (
	kindError messageKind = iota
	kindStatus
	kindTrace
)

// message is one deferred log entry. At most one exists at a time: the
// verbose logger emits the pending message before storing a new one.
type message struct {
	kind       messageKind
	text       string
	stackTrace string
	start      time.Time
}

func newMessage(kind messageKind, text, stackTrace string) *message {
	return &message{kind: kind, text: text, stackTrace: stackTrace, start: time.Now()}
}

// base carries the caller-set quiet flag. The interface stores it without
// enforcing it; each variant decides whether to honor it.
type base struct {
	quiet bool
}

func (b *base) Quiet() bool         { return b.quiet }
func (b *base) SetQuiet(quiet bool) { b.quiet = quiet }
