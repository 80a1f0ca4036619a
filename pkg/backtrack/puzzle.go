// Package backtrack implements a generic depth-first backtracking solver
// for constraint puzzles. The search algorithm is puzzle-agnostic: a
// concrete puzzle (a Sudoku grid, an item list, a board) plugs in through
// the Puzzle interface and decides what counts as a legal move, in which
// order candidates are tried, and which deductions can be made without
// guessing.
package backtrack

// Puzzle is the capability contract a concrete puzzle must satisfy.
// P identifies one assignable slot (a cell, an item index, a column) and
// must be usable as a map key. V is the payload assigned to a slot; the
// solver only ever compares values for equality.
//
// The solver owns the puzzle exclusively for the duration of a solve. All
// operations must be deterministic for a fixed puzzle state: CountCandidates
// and Candidate must agree with each other and remain stable between
// mutations, otherwise search behavior is undefined.
type Puzzle[P comparable, V comparable] interface {
	// CountCandidates reports how many legal values are currently
	// assignable at pos given the partial assignment so far.
	CountCandidates(pos P) int

	// Candidate returns the index-th legal value at pos, 0-based.
	// The enumeration order is the order the solver tries branches in.
	Candidate(pos P, index int) V

	// Assign commits a tentative assignment.
	Assign(pos P, val V)

	// Unassign reverses a prior Assign, restoring the puzzle to the exact
	// state it had before that assignment. Any forced moves the puzzle
	// applied since (via PropagateForced) must be rolled back too.
	Unassign(pos P)

	// NextUnresolved selects the next slot to branch on. The second
	// return is false when the puzzle is fully assigned. The selection
	// heuristic is the puzzle's own; it shapes the search tree and the
	// debug trace but not correctness.
	NextUnresolved() (P, bool)

	// PropagateForced applies one round of forced deduction (for example
	// filling slots with exactly one remaining candidate) and reports
	// whether anything changed. The solver calls it to fixpoint before
	// every branch when simple-step solving is enabled.
	PropagateForced() bool

	// DeadEnd reports whether some slot has zero legal candidates under
	// the current partial assignment.
	DeadEnd() bool
}

// Snapshotter exports a puzzle's current assignments for snapshotting and
// diffing. It is deliberately separate from Puzzle: the search loop never
// needs it.
type Snapshotter[P comparable, V comparable] interface {
	// Assignments returns the currently assigned slots and their values.
	// The returned map is owned by the caller.
	Assignments() map[P]V
}

// Move is one candidate assignment at one slot. Index records which of the
// enumerated candidates it is, so a failed branch can resume at the next one.
type Move[P comparable, V comparable] struct {
	Pos   P
	Val   V
	Index int
}
