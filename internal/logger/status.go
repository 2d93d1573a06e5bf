package logger

import (
	"fmt"
	"io"
	"time"
)

// Status is the handle for one in-flight, user-visible progress indication.
// Both terminators are idempotent: after the first call the handle is dead
// and further calls do nothing.
type Status interface {
	// Stop ends the indication. With showElapsed the elapsed seconds are
	// printed in place of the spinner glyph.
	Stop(showElapsed bool)
	// Cancel ends the indication without reporting elapsed time. Used when
	// new output preempts the display.
	Cancel()
}

// noopStatus is returned by modes that cannot animate in place, so callers
// always get a valid handle.
type noopStatus struct{}

func (noopStatus) Stop(bool) {}
func (noopStatus) Cancel()   {}

const (
	statusColumn = 40
	spinInterval = 100 * time.Millisecond
)

var spinGlyphs = []byte{'-', '\\', '|', '/', '-', '\\', '|', '/'}

// animatedStatus draws a spinner glyph after the message and redraws it on a
// fixed interval until stopped. The ticker goroutine is the only background
// activity in the subsystem and is joined before the final frame is drawn,
// so the terminal line ends in a deterministic state.
type animatedStatus struct {
	out     io.Writer
	live    bool
	start   time.Time
	ticker  *time.Ticker
	done    chan struct{}
	stopped chan struct{}
}

func newAnimatedStatus(out io.Writer, message string) *animatedStatus {
	s := &animatedStatus{
		out:     out,
		live:    true,
		start:   time.Now(),
		ticker:  time.NewTicker(spinInterval),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	fmt.Fprintf(out, "%*s %c", statusColumn, message, spinGlyphs[0])
	go s.spin()
	return s
}

func (s *animatedStatus) spin() {
	defer close(s.stopped)
	frame := 1
	for {
		select {
		case <-s.done:
			return
		case <-s.ticker.C:
			// erase the previous glyph, draw the next
			fmt.Fprintf(s.out, "\b%c", spinGlyphs[frame%len(spinGlyphs)])
			frame++
		}
	}
}

// finish transitions to not-live and joins the animation goroutine. It
// returns false when the handle was already dead.
func (s *animatedStatus) finish() bool {
	if !s.live {
		return false
	}
	s.live = false
	s.ticker.Stop()
	close(s.done)
	<-s.stopped
	return true
}

func (s *animatedStatus) Stop(showElapsed bool) {
	if !s.finish() {
		return
	}
	if showElapsed {
		fmt.Fprintf(s.out, "\b%.1fs\n", time.Since(s.start).Seconds())
		return
	}
	fmt.Fprint(s.out, "\b \b\n")
}

func (s *animatedStatus) Cancel() {
	if !s.finish() {
		return
	}
	fmt.Fprint(s.out, "\b \b\n")
}
