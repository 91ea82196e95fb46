package render

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// IsTerminal reports whether f is attached to a terminal. Colour output is
// only worth enabling when it is.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalSize returns the width and height of stdout, falling back to
// DefaultWidth x DefaultHeight when it cannot be determined.
func TerminalSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Fits reports whether a board needing the given number of columns fits on
// stdout.
func Fits(columns int) bool {
	width, _ := TerminalSize()
	return columns <= width
}
