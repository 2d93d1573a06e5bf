// Package terminal owns the process-wide terminal capability state and the
// ANSI escape helpers built on top of it. One Terminal is constructed at
// startup and passed by reference to every logger and command that renders
// output.
package terminal

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Escape sequences produced by this package.
const (
	BoldOn      = termenv.CSI + termenv.BoldSeq + "m"
	Reset       = termenv.CSI + termenv.ResetSeq + "m"
	ClearScreen = termenv.CSI + "2J" + termenv.CSI + "H"
)

// Terminal holds the mutable capability state shared by all renderers.
type Terminal struct {
	supportsColor bool

	// In is the input stream read in single-character mode.
	// Defaults to os.Stdin.
	In io.Reader

	keys     chan Key
	rawState *term.State
}

// New detects terminal capabilities from the TERM environment variable.
// Color is enabled unless TERM is unset, empty, or "dumb".
func New() *Terminal {
	termType := os.Getenv("TERM")
	return &Terminal{
		supportsColor: termType != "" && termType != "dumb",
		In:            os.Stdin,
	}
}

// SupportsColor reports whether ANSI escape sequences should be emitted.
func (t *Terminal) SupportsColor() bool { return t.supportsColor }

// SetSupportsColor overrides color detection. The change is visible
// immediately to every consumer holding this Terminal.
func (t *Terminal) SetSupportsColor(enabled bool) { t.supportsColor = enabled }

// Bold wraps text in bold/reset sequences when color is supported and returns
// it unchanged otherwise. The color flag is consulted on every call.
func (t *Terminal) Bold(text string) string {
	if !t.supportsColor {
		return text
	}
	return termenv.ANSI.String(text).Bold().String()
}

// Clear returns the clear-and-home sequence, or two newlines as a plain
// terminal fallback so cleared sections still separate visually.
func (t *Terminal) Clear() string {
	if !t.supportsColor {
		return "\n\n"
	}
	return ClearScreen
}

// IsTerminalOutput reports whether stdout is attached to a terminal.
func IsTerminalOutput() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Size returns the current terminal dimensions of stdout.
func Size() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
