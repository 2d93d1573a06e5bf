package logger

import "testing"

func TestBufferAccumulatesEachKind(t *testing.T) {
	l := NewBuffer()
	l.Error("boom", "")
	l.Status("working", false, true)
	l.Trace("detail")
	l.Error("again", "at main.go:1")

	if got, want := l.ErrorText(), "boom\nagain\nat main.go:1\n"; got != want {
		t.Errorf("ErrorText = %q, want %q", got, want)
	}
	if got, want := l.StatusText(), "working\n"; got != want {
		t.Errorf("StatusText = %q, want %q", got, want)
	}
	if got, want := l.TraceText(), "detail\n"; got != want {
		t.Errorf("TraceText = %q, want %q", got, want)
	}
}

func TestBufferStatusNewlineControl(t *testing.T) {
	l := NewBuffer()
	l.Status("a", false, false)
	l.Status("b", true, true)
	if got, want := l.StatusText(), "ab\n"; got != want {
		t.Fatalf("StatusText = %q, want %q", got, want)
	}
}

func TestBufferPreservesOrderWithoutLoss(t *testing.T) {
	l := NewBuffer()
	want := ""
	for _, msg := range []string{"one", "two", "three", "four"} {
		l.Status(msg, false, true)
		want += msg + "\n"
	}
	if got := l.StatusText(); got != want {
		t.Fatalf("StatusText = %q, want %q", got, want)
	}
}

func TestBufferProgressRecordsMessageAsStatus(t *testing.T) {
	l := NewBuffer()
	s := l.Progress("scanning")
	s.Stop(true)
	s.Cancel()
	if got, want := l.StatusText(), "scanning\n"; got != want {
		t.Fatalf("StatusText = %q, want %q", got, want)
	}
	if l.Verbose() {
		t.Fatal("buffer logger must not report verbose")
	}
}
