package terminal

import (
	"bufio"
	"errors"
	"os"

	"golang.org/x/term"
)

// Key is one decoded unit of terminal input: either a single rune or a whole
// escape sequence such as a function key.
type Key string

// Function-key escape sequences recognized by the decoder (xterm encodings).
const (
	KeyF1  Key = "\x1bOP"
	KeyF5  Key = "\x1b[15~"
	KeyF10 Key = "\x1b[21~"
)

// Name returns a readable name for known function keys, or the key itself.
func (k Key) Name() string {
	switch k {
	case KeyF1:
		return "F1"
	case KeyF5:
		return "F5"
	case KeyF10:
		return "F10"
	}
	return string(k)
}

var errNotFile = errors.New("terminal: input stream is not a file")

// SetSingleCharMode toggles the input stream between line-buffered and raw
// per-keystroke delivery. Enabling twice or disabling an already line-buffered
// stream is a no-op.
func (t *Terminal) SetSingleCharMode(enabled bool) error {
	f, ok := t.In.(*os.File)
	if !ok {
		return errNotFile
	}
	fd := int(f.Fd())
	if enabled {
		if t.rawState != nil {
			return nil
		}
		state, err := term.MakeRaw(fd)
		if err != nil {
			return err
		}
		t.rawState = state
		return nil
	}
	if t.rawState == nil {
		return nil
	}
	err := term.Restore(fd, t.rawState)
	t.rawState = nil
	return err
}

// Keys returns the lazy stream of decoded keys read from the input. The first
// call starts the decoder; subsequent calls return the same channel, so the
// sequence is a single per-process stream. The channel closes when the input
// stream closes.
func (t *Terminal) Keys() <-chan Key {
	if t.keys != nil {
		return t.keys
	}
	t.keys = make(chan Key)
	go decodeKeys(bufio.NewReader(t.In), t.keys)
	return t.keys
}

func decodeKeys(r *bufio.Reader, out chan<- Key) {
	defer close(out)
	for {
		ch, _, err := r.ReadRune()
		if err != nil {
			return
		}
		if ch != 0x1b {
			out <- Key(string(ch))
			continue
		}
		seq, err := readEscapeTail(r)
		out <- Key("\x1b" + seq)
		if err != nil {
			return
		}
	}
}

// readEscapeTail consumes the remainder of an escape sequence after ESC.
// SS3 sequences (ESC O x) are three bytes; CSI sequences (ESC [ ...) run
// until their final byte in the 0x40-0x7e range.
func readEscapeTail(r *bufio.Reader) (string, error) {
	b, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b {
	case 'O':
		c, err := r.ReadByte()
		if err != nil {
			return string(b), err
		}
		return string([]byte{b, c}), nil
	case '[':
		seq := []byte{b}
		for {
			c, err := r.ReadByte()
			if err != nil {
				return string(seq), err
			}
			seq = append(seq, c)
			if c >= 0x40 && c <= 0x7e {
				return string(seq), nil
			}
		}
	default:
		return string(b), nil
	}
}
