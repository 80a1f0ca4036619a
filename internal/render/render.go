// Package render draws solved puzzles for the terminal, highlighting the
// cells the solver filled in so they stand out from the givens.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bvssvni/quickbacktrack/pkg/backtrack"
	"github.com/bvssvni/quickbacktrack/pkg/puzzles/knapsack"
	"github.com/bvssvni/quickbacktrack/pkg/puzzles/queens"
	"github.com/bvssvni/quickbacktrack/pkg/puzzles/sudoku"
)

var (
	givenStyle  = lipgloss.NewStyle().Faint(true)
	solvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	frameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Sudoku renders the grid in the classic box layout. Cells present in
// filled are drawn in the solved style; pass nil to render uniformly.
func Sudoku(g *sudoku.Grid, filled backtrack.Diff[sudoku.Cell, uint8]) string {
	var b strings.Builder
	b.WriteString(frameStyle.Render(" ___ ___ ___"))
	b.WriteByte('\n')
	for r := 0; r < 9; r++ {
		b.WriteString(frameStyle.Render("|"))
		for c := 0; c < 9; c++ {
			v := g.Cells[r][c]
			cell := " "
			if v != 0 {
				cell = string('0' + v)
			}
			if _, ok := filled[sudoku.Cell{Row: r, Col: c}]; ok {
				cell = solvedStyle.Render(cell)
			} else if v != 0 {
				cell = givenStyle.Render(cell)
			}
			b.WriteString(cell)
			if c%3 == 2 {
				b.WriteString(frameStyle.Render("|"))
			}
		}
		b.WriteByte('\n')
		if r%3 == 2 {
			b.WriteString(frameStyle.Render(" ---+---+---"))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Queens renders the board, styling queens the solver placed.
func Queens(board *queens.Board, filled backtrack.Diff[int, int]) string {
	var b strings.Builder
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			mark := ". "
			if board.Rows[col] == row {
				mark = "Q "
				if _, ok := filled[col]; ok {
					mark = solvedStyle.Render("Q") + " "
				}
			}
			b.WriteString(mark)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Knapsack lists the items, highlighting the taken ones, and closes with
// the weight and value totals.
func Knapsack(s *knapsack.Selection) string {
	var b strings.Builder
	picks := s.Assignments()
	for i, it := range s.Items {
		line := fmt.Sprintf("%-12s weight %2d  value %2d", it.Name, it.Weight, it.Value)
		if picks[i] {
			b.WriteString(solvedStyle.Render("take  " + line))
		} else {
			b.WriteString(givenStyle.Render("leave " + line))
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "total weight %d/%d, value %d (target %d)\n",
		s.SelectedWeight(), s.Capacity, s.SelectedValue(), s.Target)
	return b.String()
}
