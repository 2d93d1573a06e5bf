package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/conchshell/conch/internal/terminal"
)

// slowThreshold marks messages whose hold time gets a bold prefix.
const slowThreshold = 100 * time.Millisecond

// prefixWidth is the rendered width of "NNNNms " so continuation lines align
// under the message body.
const prefixWidth = 7

// VerboseLogger holds each message back until the next message arrives or
// Flush is called, then emits it annotated with how long it was held. The
// delay between two messages approximates how long the work logged by the
// first one took, which is what the trace mode is for.
type VerboseLogger struct {
	base

	Term *terminal.Terminal
	Out  io.Writer
	Err  io.Writer

	pending *message
}

func NewVerbose(term *terminal.Terminal) *VerboseLogger {
	return &VerboseLogger{Term: term, Out: os.Stdout, Err: os.Stderr}
}

func (l *VerboseLogger) Verbose() bool { return true }

func (l *VerboseLogger) Error(message string, stackTrace string) {
	l.emit()
	l.pending = newMessage(kindError, message, stackTrace)
}

// Status defers the message like every other kind. The emphasis and newline
// arguments are accepted for interface compatibility but ignored: every
// deferred message renders as its own annotated line.
func (l *VerboseLogger) Status(message string, emphasis bool, newline bool) {
	l.emit()
	l.pending = newMessage(kindStatus, message, "")
}

func (l *VerboseLogger) Trace(message string) {
	l.emit()
	l.pending = newMessage(kindTrace, message, "")
}

func (l *VerboseLogger) Progress(message string) Status {
	l.Status(message, false, true)
	return noopStatus{}
}

// Flush emits the pending message, if any, and clears the slot.
func (l *VerboseLogger) Flush() {
	l.emit()
}

// emit renders and discards the pending message. Each message is prefixed
// with the milliseconds it was held, right-aligned in four columns; embedded
// line breaks are reindented so the body stays aligned under the prefix.
func (l *VerboseLogger) emit() {
	m := l.pending
	if m == nil {
		return
	}
	l.pending = nil

	elapsed := time.Since(m.start)
	body := m.text
	if m.stackTrace != "" {
		body += "\n" + m.stackTrace
	}
	body = strings.ReplaceAll(body, "\n", "\n"+strings.Repeat(" ", prefixWidth))

	switch m.kind {
	case kindError:
		fmt.Fprintln(l.Err, l.Term.Bold(fmt.Sprintf("%4dms %s", elapsed.Milliseconds(), body)))
	case kindStatus:
		fmt.Fprintln(l.Out, l.Term.Bold(fmt.Sprintf("%4dms %s", elapsed.Milliseconds(), body)))
	case kindTrace:
		num := fmt.Sprintf("%4d", elapsed.Milliseconds())
		if elapsed >= slowThreshold {
			num = l.Term.Bold(num)
		}
		fmt.Fprintf(l.Out, "%sms %s\n", num, body)
	}
}
