package sudoku

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bvssvni/quickbacktrack/pkg/backtrack"
)

// The classic solvable grid (0 = empty) with a unique solution.
var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

const sampleSolution = `
534678912
672195348
198342567
859761423
426853791
713924856
961537284
287419635
345286179
`

func TestSolveSample(t *testing.T) {
	g := FromValues(sample)
	solver := backtrack.NewSolver[Cell, uint8](backtrack.NewSolveSettings())

	outcome, stats := solver.Solve(g)
	require.Equal(t, backtrack.Succeeded, outcome)
	require.Zero(t, g.EmptyCount())
	require.Empty(t, g.Conflicts())
	require.False(t, g.DeadEnd())

	want, err := Parse(sampleSolution)
	require.NoError(t, err)
	require.Equal(t, want.Cells, g.Cells)
	t.Logf("guesses=%d forced=%d dur=%v", stats.Guesses, stats.ForcedRounds, stats.Duration)
}

func TestHeuristicsAgreeOnUniquePuzzle(t *testing.T) {
	first := FromValues(sample)
	first.Heuristic = FirstEmpty
	fewest := FromValues(sample)
	fewest.Heuristic = FewestCandidates

	solver := backtrack.NewSolver[Cell, uint8](backtrack.NewSolveSettings())
	o1, _ := solver.Solve(first)
	o2, _ := solver.Solve(fewest)

	require.Equal(t, backtrack.Succeeded, o1)
	require.Equal(t, backtrack.Succeeded, o2)
	require.Equal(t, first.Cells, fewest.Cells, "unique solution regardless of branching order")
}

// starvedGrid has no duplicate givens, yet cell r1c1 can take no digit:
// its row supplies 2..9 and its box supplies 1.
func starvedGrid() *Grid {
	g := New()
	for c := 1; c <= 8; c++ {
		g.Cells[0][c] = uint8(c + 1)
	}
	g.Cells[1][1] = 1
	return g
}

func TestSolveUnsolvableRestoresGrid(t *testing.T) {
	g := starvedGrid()
	require.Empty(t, g.Conflicts())
	before := g.Cells

	solver := backtrack.NewSolver[Cell, uint8](backtrack.NewSolveSettings())
	outcome, _ := solver.Solve(g)

	require.Equal(t, backtrack.Failed, outcome)
	require.Equal(t, before, g.Cells, "failed solve leaves the givens untouched")
}

func TestPropagationAloneSolvesSinglesGrid(t *testing.T) {
	// Start from the solved sample and clear one cell per row, column,
	// and box: every hole is a naked single.
	solved, err := Parse(sampleSolution)
	require.NoError(t, err)
	holes := []Cell{
		{0, 0}, {1, 3}, {2, 6}, {3, 1}, {4, 4}, {5, 7}, {6, 2}, {7, 5}, {8, 8},
	}
	for _, h := range holes {
		solved.Cells[h.Row][h.Col] = 0
	}

	solver := backtrack.NewSolver[Cell, uint8](backtrack.NewSolveSettings())
	outcome, stats := solver.Solve(solved)

	require.Equal(t, backtrack.Succeeded, outcome)
	require.Zero(t, stats.Guesses, "naked singles need no branching")
	require.Greater(t, stats.ForcedRounds, 0)
}

func TestAssignUnassignIdempotent(t *testing.T) {
	g := FromValues(sample)
	snapshot := func() map[Cell][]uint8 {
		out := make(map[Cell][]uint8)
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				pos := Cell{Row: r, Col: c}
				out[pos] = g.candidates(pos)
			}
		}
		return out
	}

	before := snapshot()
	pos, ok := g.NextUnresolved()
	require.True(t, ok)
	v := g.Candidate(pos, 0)
	g.Assign(pos, v)
	g.Unassign(pos)
	require.Equal(t, before, snapshot())
}

func TestDiffAgainstPrefilledStart(t *testing.T) {
	g := FromValues(sample)
	empties := g.EmptyCount()
	before := backtrack.TakeSnapshot[Cell, uint8](g)

	solver := backtrack.NewSolver[Cell, uint8](backtrack.NewSolveSettings())
	outcome, _ := solver.Solve(g)
	require.Equal(t, backtrack.Succeeded, outcome)

	d := backtrack.Compare(before, g)
	require.Len(t, d, empties, "only the solver-filled cells appear")
	require.NotContains(t, d, Cell{Row: 0, Col: 0}, "prefilled given excluded")
	for pos, ch := range d {
		require.False(t, ch.WasSet, "%v was empty before", pos)
		require.True(t, ch.IsSet)
	}
}

func TestSolveDeterministicTrace(t *testing.T) {
	run := func() string {
		g := FromValues(sample)
		var buf bytes.Buffer
		settings := backtrack.NewSolveSettings().Debug(true).Trace(&buf)
		solver := backtrack.NewSolver[Cell, uint8](settings)
		outcome, _ := solver.Solve(g)
		require.Equal(t, backtrack.Succeeded, outcome)
		return buf.String()
	}
	require.Equal(t, run(), run())
}

func TestParseRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"too short", "123"},
		{"bad rune", "x" + Compact81(sample)[1:]},
		{"duplicate in row", "55" + Compact81(sample)[2:]},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.in)
			require.ErrorIs(t, err, ErrBadGrid)
		})
	}
}

func TestParseCompactRoundTrip(t *testing.T) {
	g := FromValues(sample)
	back, err := Parse(g.Compact())
	require.NoError(t, err)
	require.Equal(t, g.Cells, back.Cells)
}

func TestGenerateAllDifficulties(t *testing.T) {
	cases := []struct {
		name string
		diff Difficulty
	}{
		{"easy", Easy},
		{"medium", Medium},
		{"hard", Hard},
		{"expert", Expert},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			g, err := Generate(ctx, 12345, tc.diff)
			require.NoError(t, err)

			givens := 81 - g.EmptyCount()
			require.GreaterOrEqual(t, givens, 17)
			require.LessOrEqual(t, givens, 81)
			require.Empty(t, g.Conflicts())
			require.True(t, g.Unique(), "generated puzzle must keep a unique solution")
		})
	}
}

// Compact81 is a test helper rendering raw values without a Grid.
func Compact81(values [9][9]uint8) string {
	return FromValues(values).Compact()
}
