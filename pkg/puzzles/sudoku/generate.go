package sudoku

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Difficulty labels target puzzle generation.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a label back to its Difficulty; unknown labels
// default to Medium.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Medium
	}
}

// targetGivens is the clue count carving aims for per difficulty.
func targetGivens(d Difficulty) int {
	switch d {
	case Easy:
		return 40
	case Medium:
		return 34
	case Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// CountSolutions counts complete assignments of the grid, stopping early
// once limit is reached. Uniqueness checks pass limit 2. The receiver is
// not modified.
func (g *Grid) CountSolutions(limit int) int {
	work := g.Cells
	count := 0
	var dfs func() bool
	dfs = func() bool {
		if count >= limit {
			return true
		}
		var tmp Grid
		tmp.Cells = work
		pos, open := tmp.firstEmpty()
		if !open {
			count++
			return count >= limit
		}
		for v := uint8(1); v <= 9; v++ {
			if tmp.allowed(pos.Row, pos.Col, v) {
				work[pos.Row][pos.Col] = v
				if dfs() {
					return true
				}
				work[pos.Row][pos.Col] = 0
			}
		}
		return false
	}
	_ = dfs()
	return count
}

// Unique reports whether the grid has exactly one solution.
func (g *Grid) Unique() bool { return g.CountSolutions(2) == 1 }

// Generate produces a puzzle at the target difficulty: it fills a complete
// random solution from the seed, then carves cells out in random order,
// keeping each removal only if the puzzle still has a unique solution.
// Carving stops at the difficulty's clue target or when the time limit
// runs out, whichever comes first.
func Generate(ctx context.Context, seed int64, diff Difficulty) (*Grid, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	g := New()
	if !fillRandom(ctx, rng, g) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New("sudoku: could not fill a full solution")
	}

	positions := make([]int, 81)
	for i := range positions {
		positions[i] = i
	}
	rng.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})

	target := targetGivens(diff)
	deadline := start.Add(900 * time.Millisecond)

	for _, pos := range positions {
		if ctx.Err() != nil || time.Now().After(deadline) {
			break
		}
		if 81-g.EmptyCount() <= target {
			break
		}
		r, c := pos/9, pos%9
		old := g.Cells[r][c]
		if old == 0 {
			continue
		}
		g.Cells[r][c] = 0
		if !g.Unique() {
			g.Cells[r][c] = old // revert
		}
	}
	return g, nil
}

// fillRandom solves the empty grid into a full valid solution, trying the
// digits in a fresh random order at every cell.
func fillRandom(ctx context.Context, rng *rand.Rand, g *Grid) bool {
	var nums [9]uint8
	for i := range nums {
		nums[i] = uint8(i + 1)
	}
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			if g.allowed(r, c, v) {
				g.Cells[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				g.Cells[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}
