// Package render provides output formatting for initialize-repository.
package render

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Palette holds ANSI sequences. Every field is empty when color is off, so
// concatenation is a no-op.
type Palette struct {
	Bold   string
	Green  string
	Yellow string
	Reset  string
}

// NewPalette returns a colored palette when enabled, a blank one otherwise.
func NewPalette(enabled bool) Palette {
	if !enabled {
		return Palette{}
	}
	return Palette{
		Bold:   "\033[1m",
		Green:  "\033[1;92m",
		Yellow: "\033[1;93m",
		Reset:  "\033[0m",
	}
}

// PaletteFor enables color only when w is a terminal, NO_COLOR is unset and
// TERM is not "dumb".
func PaletteFor(w io.Writer) Palette {
	return NewPalette(colorEnabled(w, os.Getenv))
}

func colorEnabled(w io.Writer, getenv func(string) string) bool {
	if getenv("NO_COLOR") != "" {
		return false
	}
	if strings.ToLower(getenv("TERM")) == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
