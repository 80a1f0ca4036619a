// Package sudoku implements the classic 9x9 grid as a backtrack.Puzzle.
// Positions are cells, values the digits 1-9, and forced propagation fills
// naked singles (cells with exactly one remaining candidate).
package sudoku

import (
	"fmt"

	"github.com/bvssvni/quickbacktrack/pkg/backtrack"
)

// Cell identifies one grid position, 0-based.
type Cell struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// String renders 1-based coordinates, as seen in debug traces.
func (c Cell) String() string { return fmt.Sprintf("r%dc%d", c.Row+1, c.Col+1) }

// Heuristic selects how the grid picks the next cell to branch on. The
// choice shapes the search tree dramatically on hard puzzles.
type Heuristic int

const (
	// FirstEmpty scans rows top to bottom and takes the first empty cell.
	FirstEmpty Heuristic = iota
	// FewestCandidates takes the empty cell with the fewest legal digits.
	// Usually far fewer guesses than FirstEmpty.
	FewestCandidates
)

// Grid holds the current digits, 0 meaning empty. Heuristic defaults to
// FewestCandidates. The unexported journal tracks which cells each guess
// (and its forced consequences) filled, so Unassign can roll them back.
type Grid struct {
	Cells     [9][9]uint8
	Heuristic Heuristic

	frames [][]Cell
}

// New returns an empty grid using the FewestCandidates heuristic.
func New() *Grid {
	return &Grid{Heuristic: FewestCandidates}
}

// FromValues returns a grid pre-filled with the given digits.
func FromValues(values [9][9]uint8) *Grid {
	return &Grid{Cells: values, Heuristic: FewestCandidates}
}

// Clone copies the grid's digits and heuristic. The undo journal is not
// carried over; a clone starts with no in-progress guesses.
func (g *Grid) Clone() *Grid {
	return &Grid{Cells: g.Cells, Heuristic: g.Heuristic}
}

// allowed reports whether v can be placed at (r, c) without clashing with
// its row, column, or 3x3 box.
func (g *Grid) allowed(r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g.Cells[r][i] == v || g.Cells[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g.Cells[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// candidates lists the legal digits at pos in ascending order. A filled
// cell has its own value as the only candidate.
func (g *Grid) candidates(pos Cell) []uint8 {
	if v := g.Cells[pos.Row][pos.Col]; v != 0 {
		return []uint8{v}
	}
	out := make([]uint8, 0, 9)
	for v := uint8(1); v <= 9; v++ {
		if g.allowed(pos.Row, pos.Col, v) {
			out = append(out, v)
		}
	}
	return out
}

// CountCandidates implements backtrack.Puzzle.
func (g *Grid) CountCandidates(pos Cell) int { return len(g.candidates(pos)) }

// Candidate implements backtrack.Puzzle.
func (g *Grid) Candidate(pos Cell, index int) uint8 { return g.candidates(pos)[index] }

// Assign implements backtrack.Puzzle. It opens a new journal frame so the
// assignment and any forced moves that follow unwind together.
func (g *Grid) Assign(pos Cell, val uint8) {
	g.Cells[pos.Row][pos.Col] = val
	g.frames = append(g.frames, []Cell{pos})
}

// Unassign implements backtrack.Puzzle. It clears the cells recorded in
// the most recent journal frame: the guess itself plus every naked single
// deduced after it.
func (g *Grid) Unassign(pos Cell) {
	if len(g.frames) == 0 {
		g.Cells[pos.Row][pos.Col] = 0
		return
	}
	frame := g.frames[len(g.frames)-1]
	g.frames = g.frames[:len(g.frames)-1]
	for _, c := range frame {
		g.Cells[c.Row][c.Col] = 0
	}
}

// NextUnresolved implements backtrack.Puzzle using the configured
// heuristic.
func (g *Grid) NextUnresolved() (Cell, bool) {
	if g.Heuristic == FewestCandidates {
		return g.fewestCandidates()
	}
	return g.firstEmpty()
}

func (g *Grid) firstEmpty() (Cell, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g.Cells[r][c] == 0 {
				return Cell{Row: r, Col: c}, true
			}
		}
	}
	return Cell{}, false
}

func (g *Grid) fewestCandidates() (Cell, bool) {
	best := Cell{}
	bestCount := -1
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g.Cells[r][c] != 0 {
				continue
			}
			n := len(g.candidates(Cell{Row: r, Col: c}))
			if bestCount < 0 || n < bestCount {
				best, bestCount = Cell{Row: r, Col: c}, n
			}
		}
	}
	return best, bestCount >= 0
}

// PropagateForced implements backtrack.Puzzle: one sweep filling every
// naked single it finds, journaled against the open guess so it can be
// rolled back with it.
func (g *Grid) PropagateForced() bool {
	changed := false
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g.Cells[r][c] != 0 {
				continue
			}
			cand := g.candidates(Cell{Row: r, Col: c})
			if len(cand) != 1 {
				continue
			}
			g.Cells[r][c] = cand[0]
			if n := len(g.frames); n > 0 {
				g.frames[n-1] = append(g.frames[n-1], Cell{Row: r, Col: c})
			}
			changed = true
		}
	}
	return changed
}

// DeadEnd implements backtrack.Puzzle.
func (g *Grid) DeadEnd() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g.Cells[r][c] == 0 && len(g.candidates(Cell{Row: r, Col: c})) == 0 {
				return true
			}
		}
	}
	return false
}

// Assignments implements backtrack.Snapshotter.
func (g *Grid) Assignments() map[Cell]uint8 {
	out := make(map[Cell]uint8)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := g.Cells[r][c]; v != 0 {
				out[Cell{Row: r, Col: c}] = v
			}
		}
	}
	return out
}

// Conflicts lists cells whose value duplicates another in the same row,
// column, or box. A freshly parsed puzzle should have none.
func (g *Grid) Conflicts() []Cell {
	conf := make([]Cell, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			v := g.Cells[r][c]
			if v == 0 {
				continue
			}
			bit := 1 << v
			if m&bit != 0 {
				conf = append(conf, Cell{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			v := g.Cells[r][c]
			if v == 0 {
				continue
			}
			bit := 1 << v
			if m&bit != 0 {
				conf = append(conf, Cell{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r, c := br*3+dr, bc*3+dc
					v := g.Cells[r][c]
					if v == 0 {
						continue
					}
					bit := 1 << v
					if m&bit != 0 {
						conf = append(conf, Cell{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return conf
}

// EmptyCount reports how many cells are still unfilled.
func (g *Grid) EmptyCount() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g.Cells[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

var (
	_ backtrack.Puzzle[Cell, uint8]      = (*Grid)(nil)
	_ backtrack.Snapshotter[Cell, uint8] = (*Grid)(nil)
)
