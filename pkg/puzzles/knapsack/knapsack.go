// Package knapsack implements bounded subset selection as a
// backtrack.Puzzle. Positions are item indices and values are take/leave
// decisions. Taking an item is illegal once it would exceed the capacity;
// leaving one is illegal once the remaining items can no longer reach the
// target value. Both make the solver back out of hopeless branches early.
package knapsack

import (
	"github.com/bvssvni/quickbacktrack/pkg/backtrack"
)

// Item is one selectable thing with a weight and a value.
type Item struct {
	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`
	Value  int    `yaml:"value"`
}

const undecided = -1

// Selection is a knapsack instance plus its decision state.
type Selection struct {
	Items    []Item
	Capacity int
	// Target is the minimum total value a selection must reach to count
	// as solved.
	Target int

	picks []int8 // undecided / 0 leave / 1 take
}

// New returns an undecided selection over the given items.
func New(items []Item, capacity, target int) *Selection {
	picks := make([]int8, len(items))
	for i := range picks {
		picks[i] = undecided
	}
	return &Selection{Items: items, Capacity: capacity, Target: target, picks: picks}
}

// SelectedWeight sums the weight of taken items.
func (s *Selection) SelectedWeight() int {
	w := 0
	for i, p := range s.picks {
		if p == 1 {
			w += s.Items[i].Weight
		}
	}
	return w
}

// SelectedValue sums the value of taken items.
func (s *Selection) SelectedValue() int {
	v := 0
	for i, p := range s.picks {
		if p == 1 {
			v += s.Items[i].Value
		}
	}
	return v
}

// Selected returns the taken items in input order.
func (s *Selection) Selected() []Item {
	var out []Item
	for i, p := range s.picks {
		if p == 1 {
			out = append(out, s.Items[i])
		}
	}
	return out
}

// potential is the value still reachable from undecided items, excluding
// index skip (-1 to exclude none). It ignores capacity, an optimistic
// bound that never prunes a feasible branch.
func (s *Selection) potential(skip int) int {
	v := 0
	for i, p := range s.picks {
		if p == undecided && i != skip {
			v += s.Items[i].Value
		}
	}
	return v
}

// options lists the legal decisions for item i, take before leave.
func (s *Selection) options(i int) []bool {
	out := make([]bool, 0, 2)
	if s.SelectedWeight()+s.Items[i].Weight <= s.Capacity {
		out = append(out, true)
	}
	if s.SelectedValue()+s.potential(i) >= s.Target {
		out = append(out, false)
	}
	return out
}

// CountCandidates implements backtrack.Puzzle.
func (s *Selection) CountCandidates(i int) int { return len(s.options(i)) }

// Candidate implements backtrack.Puzzle.
func (s *Selection) Candidate(i int, index int) bool { return s.options(i)[index] }

// Assign implements backtrack.Puzzle.
func (s *Selection) Assign(i int, take bool) {
	if take {
		s.picks[i] = 1
	} else {
		s.picks[i] = 0
	}
}

// Unassign implements backtrack.Puzzle.
func (s *Selection) Unassign(i int) { s.picks[i] = undecided }

// NextUnresolved implements backtrack.Puzzle: first undecided item.
func (s *Selection) NextUnresolved() (int, bool) {
	for i, p := range s.picks {
		if p == undecided {
			return i, true
		}
	}
	return 0, false
}

// PropagateForced implements backtrack.Puzzle; selection has no forced
// deduction.
func (s *Selection) PropagateForced() bool { return false }

// DeadEnd implements backtrack.Puzzle: some item has no legal decision
// left, or the target is out of reach even if every undecided item were
// taken.
func (s *Selection) DeadEnd() bool {
	if s.SelectedValue()+s.potential(-1) < s.Target {
		return true
	}
	for i, p := range s.picks {
		if p == undecided && len(s.options(i)) == 0 {
			return true
		}
	}
	return false
}

// Assignments implements backtrack.Snapshotter.
func (s *Selection) Assignments() map[int]bool {
	out := make(map[int]bool)
	for i, p := range s.picks {
		if p != undecided {
			out[i] = p == 1
		}
	}
	return out
}

var (
	_ backtrack.Puzzle[int, bool]      = (*Selection)(nil)
	_ backtrack.Snapshotter[int, bool] = (*Selection)(nil)
)
