// Package terminal reports the size and capabilities of the controlling
// terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive returns true when both stdin and stdout are terminals
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Viewport returns how many map tiles fit on screen, leaving reserved rows
// for the HUD. Each tile is drawn two characters wide.
func Viewport(reservedRows int) (cols, rows int) {
	width, height := GetSize()
	cols = max(width/2, 1)
	rows = max(height-reservedRows, 1)
	return cols, rows
}
