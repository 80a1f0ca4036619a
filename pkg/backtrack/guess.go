package backtrack

// guess is one open branch decision: the move currently tried at a slot,
// how many candidates that slot had when the branch opened, and the stack
// depth at which it was opened. Popping a guess must leave the puzzle as it
// was before the guess was applied; the puzzle's Unassign guarantees that.
type guess[P comparable, V comparable] struct {
	move  Move[P, V]
	total int
	depth int
}

// guessStack records the in-progress branch decisions, bottom first.
type guessStack[P comparable, V comparable] []guess[P, V]

func (s *guessStack[P, V]) push(g guess[P, V]) {
	*s = append(*s, g)
}

func (s *guessStack[P, V]) pop() guess[P, V] {
	old := *s
	g := old[len(old)-1]
	*s = old[:len(old)-1]
	return g
}

func (s guessStack[P, V]) empty() bool { return len(s) == 0 }
