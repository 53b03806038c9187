package input

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrInterrupted is returned when the player presses Ctrl+C in raw mode
var ErrInterrupted = errors.New("interrupted")

// KeyReader reads single key presses from a terminal in raw mode
type KeyReader struct {
	in *os.File
}

// NewKeyReader reads from in, normally os.Stdin
func NewKeyReader(in *os.File) *KeyReader {
	return &KeyReader{in: in}
}

// IsTerminal returns true if the reader is attached to a terminal
func (k *KeyReader) IsTerminal() bool {
	return term.IsTerminal(int(k.in.Fd()))
}

// ReadKey blocks for one key press and returns its binding code
// ("arrow_up", "e", "enter", "tab", "escape", ...).
func (k *KeyReader) ReadKey() (string, error) {
	fd := int(k.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("set terminal raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	return DecodeKey(k.in)
}

// DecodeKey reads one key press from r and returns its binding code
func DecodeKey(r io.Reader) (string, error) {
	b1, err := readByte(r)
	if err != nil {
		return "", err
	}

	switch b1 {
	case 3:
		return "", ErrInterrupted
	case '\r', '\n':
		return "enter", nil
	case '\t':
		return "tab", nil
	case 0x1b:
		return decodeEscape(r)
	}

	if b1 >= 'A' && b1 <= 'Z' {
		b1 += 'a' - 'A'
	}
	if b1 >= 32 && b1 < 127 {
		return string(b1), nil
	}
	return "", nil
}

func readByte(r io.Reader) (byte, error) {
	buf := make([]byte, 1)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// decodeEscape reads the rest of an escape sequence. A lone ESC (followed by
// end of input) is the escape key.
func decodeEscape(r io.Reader) (string, error) {
	b2, err := readByte(r)
	if err != nil {
		return "escape", nil
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}

	b3, err := readByte(r)
	if err != nil {
		return "", nil
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	case 'Z':
		return "shift_tab", nil
	case '1', '2':
		// ESC [ n n ~ function keys
		rest := make([]byte, 2)
		if _, err := io.ReadFull(r, rest); err != nil {
			return "", nil
		}
		switch string(b3) + string(rest) {
		case "15~":
			return "f5", nil
		case "19~":
			return "f8", nil
		case "24~":
			return "f12", nil
		}
	}
	// Unknown escape sequence - discard it
	return "", nil
}
