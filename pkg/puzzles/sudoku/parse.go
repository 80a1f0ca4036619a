package sudoku

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadGrid is returned when a grid definition cannot be parsed.
var ErrBadGrid = errors.New("sudoku: bad grid definition")

// Parse reads a grid from text: 81 digits in row order, where '0' or '.'
// marks an empty cell. Whitespace, newlines, and '|' separators are
// ignored, so both the compact 81-char form and a 9-line layout work.
func Parse(text string) (*Grid, error) {
	g := New()
	i := 0
	for _, ch := range text {
		switch {
		case ch == '.' || ch == '0':
			i++
		case ch >= '1' && ch <= '9':
			if i < 81 {
				g.Cells[i/9][i%9] = uint8(ch - '0')
			}
			i++
		case ch == ' ' || ch == '\n' || ch == '\r' || ch == '\t' || ch == '|':
			// separator
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrBadGrid, ch)
		}
	}
	if i != 81 {
		return nil, fmt.Errorf("%w: got %d cells, want 81", ErrBadGrid, i)
	}
	if conf := g.Conflicts(); len(conf) > 0 {
		return nil, fmt.Errorf("%w: duplicate value at %v", ErrBadGrid, conf[0])
	}
	return g, nil
}

// Compact renders the grid as 81 characters with '.' for empty cells,
// the inverse of Parse.
func (g *Grid) Compact() string {
	var b strings.Builder
	b.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := g.Cells[r][c]; v == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte('0' + v)
			}
		}
	}
	return b.String()
}

// String renders the grid as an ASCII box with 3x3 separators.
func (g *Grid) String() string {
	var b strings.Builder
	b.WriteString(" ___ ___ ___\n")
	for r := 0; r < 9; r++ {
		b.WriteByte('|')
		for c := 0; c < 9; c++ {
			if v := g.Cells[r][c]; v == 0 {
				b.WriteByte(' ')
			} else {
				b.WriteByte('0' + v)
			}
			if c%3 == 2 {
				b.WriteByte('|')
			}
		}
		b.WriteByte('\n')
		if r%3 == 2 {
			b.WriteString(" ---+---+---\n")
		}
	}
	return b.String()
}
