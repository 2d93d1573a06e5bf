package logger

import "strings"

// BufferLogger captures every message in memory instead of writing to the
// terminal. Each message kind accumulates into its own log, read back through
// the accessor methods; nothing is ever reordered, dropped, or truncated.
// Used by tests and by callers that post-process tool output.
type BufferLogger struct {
	base

	errorLog  strings.Builder
	statusLog strings.Builder
	traceLog  strings.Builder
}

func NewBuffer() *BufferLogger { return &BufferLogger{} }

func (l *BufferLogger) Verbose() bool { return false }

func (l *BufferLogger) Error(message string, stackTrace string) {
	l.errorLog.WriteString(message)
	l.errorLog.WriteString("\n")
	if stackTrace != "" {
		l.errorLog.WriteString(stackTrace)
		l.errorLog.WriteString("\n")
	}
}

func (l *BufferLogger) Status(message string, emphasis bool, newline bool) {
	l.statusLog.WriteString(message)
	if newline {
		l.statusLog.WriteString("\n")
	}
}

func (l *BufferLogger) Trace(message string) {
	l.traceLog.WriteString(message)
	l.traceLog.WriteString("\n")
}

func (l *BufferLogger) Progress(message string) Status {
	l.Status(message, false, true)
	return noopStatus{}
}

func (l *BufferLogger) Flush() {}

// ErrorText returns everything passed to Error so far.
func (l *BufferLogger) ErrorText() string { return l.errorLog.String() }

// StatusText returns everything passed to Status so far.
func (l *BufferLogger) StatusText() string { return l.statusLog.String() }

// TraceText returns everything passed to Trace so far.
func (l *BufferLogger) TraceText() string { return l.traceLog.String() }
