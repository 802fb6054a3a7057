// Package termsize queries the dimensions of the controlling terminal.
package termsize

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when the output is not attached to a terminal,
// or the terminal reports dimensions nothing can be rendered in.
var ErrNotTerminal = errors.New("no usable terminal")

// Size holds terminal dimensions in character cells.
type Size struct {
	Columns int
	Rows    int
}

// Query reads the current size of the terminal attached to f. Callers query
// fresh on every run, never cache: the window may have been resized since
// the last invocation.
func Query(f *os.File) (Size, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return Size{}, fmt.Errorf("query terminal size: %w", ErrNotTerminal)
	}
	columns, rows, err := term.GetSize(fd)
	if err != nil {
		return Size{}, fmt.Errorf("query terminal size: %w", err)
	}
	if columns < 1 || rows < 1 {
		return Size{}, fmt.Errorf("query terminal size: reported %dx%d: %w", columns, rows, ErrNotTerminal)
	}
	return Size{Columns: columns, Rows: rows}, nil
}
