package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/conchshell/conch/internal/terminal"
)

// StandardLogger writes messages to the output streams as they arrive. It
// holds at most one live progress handle; any call that begins new output
// cancels the handle first so the progress line never interleaves with a
// message.
type StandardLogger struct {
	base

	Term *terminal.Terminal
	// Out and Err default to os.Stdout and os.Stderr; tests redirect them.
	Out io.Writer
	Err io.Writer

	progress Status
}

func NewStandard(term *terminal.Terminal) *StandardLogger {
	return &StandardLogger{Term: term, Out: os.Stdout, Err: os.Stderr}
}

func (l *StandardLogger) Verbose() bool { return false }

// cancelProgress kills any live progress display before new output starts.
func (l *StandardLogger) cancelProgress() {
	if l.progress != nil {
		l.progress.Cancel()
		l.progress = nil
	}
}

func (l *StandardLogger) Error(message string, stackTrace string) {
	l.cancelProgress()
	fmt.Fprintln(l.Err, message)
	if stackTrace != "" {
		fmt.Fprintln(l.Err, stackTrace)
	}
}

func (l *StandardLogger) Status(message string, emphasis bool, newline bool) {
	l.cancelProgress()
	if l.quiet {
		return
	}
	if emphasis {
		message = l.Term.Bold(message)
	}
	if newline {
		fmt.Fprintln(l.Out, message)
		return
	}
	fmt.Fprint(l.Out, message)
}

// Trace output is never shown in standard mode.
func (l *StandardLogger) Trace(message string) {}

func (l *StandardLogger) Progress(message string) Status {
	l.cancelProgress()
	if l.quiet {
		return noopStatus{}
	}
	if !l.Term.SupportsColor() {
		l.Status(message, false, true)
		return noopStatus{}
	}
	s := newAnimatedStatus(l.Out, message)
	l.progress = s
	return s
}

func (l *StandardLogger) Flush() {}
