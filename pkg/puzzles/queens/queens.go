// Package queens implements N-Queens as a backtrack.Puzzle: one queen per
// column, positions are columns and values are row indices. There is no
// forced deduction; every placement is a guess.
package queens

import (
	"fmt"
	"strings"

	"github.com/bvssvni/quickbacktrack/pkg/backtrack"
)

const empty = -1

// Board places one queen per column on an n x n board. Rows[col] is the
// queen's row, or -1 while the column is undecided.
type Board struct {
	Size int
	Rows []int
}

// New returns an empty n x n board.
func New(n int) *Board {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = empty
	}
	return &Board{Size: n, Rows: rows}
}

// attacked reports whether a queen at (col, row) would be attacked by any
// queen already placed in another column.
func (b *Board) attacked(col, row int) bool {
	for c, r := range b.Rows {
		if c == col || r == empty {
			continue
		}
		if r == row || c-col == r-row || col-c == r-row {
			return true
		}
	}
	return false
}

// safeRows lists the rows still safe in col, in ascending order.
func (b *Board) safeRows(col int) []int {
	out := make([]int, 0, b.Size)
	for row := 0; row < b.Size; row++ {
		if !b.attacked(col, row) {
			out = append(out, row)
		}
	}
	return out
}

// CountCandidates implements backtrack.Puzzle.
func (b *Board) CountCandidates(col int) int { return len(b.safeRows(col)) }

// Candidate implements backtrack.Puzzle.
func (b *Board) Candidate(col int, index int) int { return b.safeRows(col)[index] }

// Assign implements backtrack.Puzzle.
func (b *Board) Assign(col int, row int) { b.Rows[col] = row }

// Unassign implements backtrack.Puzzle.
func (b *Board) Unassign(col int) { b.Rows[col] = empty }

// NextUnresolved implements backtrack.Puzzle: leftmost undecided column.
func (b *Board) NextUnresolved() (int, bool) {
	for col, r := range b.Rows {
		if r == empty {
			return col, true
		}
	}
	return 0, false
}

// PropagateForced implements backtrack.Puzzle. Queens has no forced
// deduction worth the bookkeeping; it always reports no change.
func (b *Board) PropagateForced() bool { return false }

// DeadEnd implements backtrack.Puzzle.
func (b *Board) DeadEnd() bool {
	for col, r := range b.Rows {
		if r == empty && len(b.safeRows(col)) == 0 {
			return true
		}
	}
	return false
}

// Assignments implements backtrack.Snapshotter.
func (b *Board) Assignments() map[int]int {
	out := make(map[int]int)
	for col, r := range b.Rows {
		if r != empty {
			out[col] = r
		}
	}
	return out
}

// Valid reports whether the placed queens are mutually non-attacking.
func (b *Board) Valid() bool {
	for col, r := range b.Rows {
		if r != empty && b.attacked(col, r) {
			return false
		}
	}
	return true
}

// String renders the board with Q for queens and dots elsewhere.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if b.Rows[col] == row {
				sb.WriteString("Q ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// GoString helps failure messages show the placement compactly.
func (b *Board) GoString() string {
	return fmt.Sprintf("queens%v", b.Rows)
}

var (
	_ backtrack.Puzzle[int, int]      = (*Board)(nil)
	_ backtrack.Snapshotter[int, int] = (*Board)(nil)
)
