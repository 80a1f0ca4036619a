package backtrack

import (
	"fmt"
	"time"
)

// Outcome is the result of a solve: the first full assignment found, or
// exhaustion of the search space. Dead ends encountered mid-search are
// ordinary control flow and never surface here.
type Outcome int

const (
	// Failed means every branch was exhausted without a full assignment.
	Failed Outcome = iota
	// Succeeded means the puzzle reached a full assignment.
	Succeeded
)

func (o Outcome) String() string {
	if o == Succeeded {
		return "succeeded"
	}
	return "failed"
}

// Solved reports whether the outcome is Succeeded.
func (o Outcome) Solved() bool { return o == Succeeded }

// Stats captures search effort for one solve.
type Stats struct {
	Guesses      int // branch openings plus retries
	Backtracks   int // guesses undone
	ForcedRounds int // propagation rounds that changed something
	MaxDepth     int // deepest guess stack seen
	Duration     time.Duration
}

// solver states. The machine starts propagating and terminates in
// stateSucceeded or stateFailed.
type state int

const (
	statePropagating state = iota
	stateBranching
	stateBacktracking
	stateSucceeded
	stateFailed
)

// Solver runs the depth-first search over a Puzzle. It is single-threaded
// and holds the guess stack privately per Solve call; a Solver value may be
// reused for consecutive solves but not concurrent ones.
type Solver[P comparable, V comparable] struct {
	settings *SolveSettings
}

// NewSolver returns a solver using the given settings. Nil settings mean
// defaults.
func NewSolver[P comparable, V comparable](settings *SolveSettings) *Solver[P, V] {
	if settings == nil {
		settings = NewSolveSettings()
	}
	return &Solver[P, V]{settings: settings}
}

// Solve runs a one-shot search over p with the given settings (nil for
// defaults). It is shorthand for NewSolver followed by Solver.Solve.
func Solve[P comparable, V comparable](p Puzzle[P, V], settings *SolveSettings) (Outcome, Stats) {
	return NewSolver[P, V](settings).Solve(p)
}

// Solve mutates p in place toward the first full assignment found in
// depth-first order and reports the outcome. On Failed the puzzle is left
// with every guess rolled back; whatever forced moves were deduced before
// the first guess remain.
//
// Candidates at a slot are tried strictly in the puzzle's enumeration
// order starting at index 0, so two solves of identical initial state
// produce identical traces and results.
func (s *Solver[P, V]) Solve(p Puzzle[P, V]) (Outcome, Stats) {
	start := time.Now()
	var stats Stats
	var stack guessStack[P, V]

	st := statePropagating
	for {
		switch st {
		case statePropagating:
			if s.settings.solveSimple {
				for p.PropagateForced() {
					stats.ForcedRounds++
					if p.DeadEnd() {
						break
					}
				}
			}
			if p.DeadEnd() {
				st = stateBacktracking
			} else {
				st = stateBranching
			}

		case stateBranching:
			pos, ok := p.NextUnresolved()
			if !ok {
				st = stateSucceeded
				continue
			}
			n := p.CountCandidates(pos)
			if n == 0 {
				st = stateBacktracking
				continue
			}
			g := guess[P, V]{
				move:  Move[P, V]{Pos: pos, Val: p.Candidate(pos, 0), Index: 0},
				total: n,
				depth: len(stack),
			}
			stack.push(g)
			p.Assign(g.move.Pos, g.move.Val)
			s.step(g, len(stack), &stats)
			st = statePropagating

		case stateBacktracking:
			if stack.empty() {
				st = stateFailed
				continue
			}
			g := stack.pop()
			p.Unassign(g.move.Pos)
			stats.Backtracks++
			if g.move.Index+1 >= g.total {
				// Candidates exhausted here; keep unwinding.
				continue
			}
			g.move.Index++
			g.move.Val = p.Candidate(g.move.Pos, g.move.Index)
			stack.push(g)
			p.Assign(g.move.Pos, g.move.Val)
			s.step(g, len(stack), &stats)
			st = statePropagating

		case stateSucceeded:
			stats.Duration = time.Since(start)
			return Succeeded, stats

		case stateFailed:
			stats.Duration = time.Since(start)
			return Failed, stats
		}
	}
}

// step records a guess in the stats and, with debug on, emits one trace
// line and applies the configured pause.
func (s *Solver[P, V]) step(g guess[P, V], depth int, stats *Stats) {
	stats.Guesses++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	if !s.settings.debug {
		return
	}
	fmt.Fprintf(s.settings.trace, "Guess %v, %v depth %d %d\n",
		g.move.Pos, g.move.Val, g.depth, g.total)
	if s.settings.stepDelay > 0 {
		time.Sleep(s.settings.stepDelay)
	}
}
