package backtrack

// Snapshot is a copy of a puzzle's assignments, taken before solving so the
// solved state can be compared against it afterwards. It is independent of
// the live puzzle and stays valid across mutation.
type Snapshot[P comparable, V comparable] map[P]V

// TakeSnapshot copies the puzzle's current assignments.
func TakeSnapshot[P comparable, V comparable](s Snapshotter[P, V]) Snapshot[P, V] {
	return Snapshot[P, V](s.Assignments())
}

// Change is the before/after pair for one slot. WasSet and IsSet
// distinguish "empty" from a zero value.
type Change[V comparable] struct {
	Old    V
	New    V
	WasSet bool
	IsSet  bool
}

// Diff maps each slot whose value changed to its before/after pair.
type Diff[P comparable, V comparable] map[P]Change[V]

// Compare reports the slots that differ between a snapshot and the
// puzzle's current state. Slots assigned since the snapshot appear with
// IsSet only; a slot whose value was replaced (which a well-behaved puzzle
// never does, but is not assumed impossible) appears with both set.
func Compare[P comparable, V comparable](before Snapshot[P, V], after Snapshotter[P, V]) Diff[P, V] {
	now := after.Assignments()
	d := make(Diff[P, V])
	for pos, old := range before {
		cur, ok := now[pos]
		if !ok {
			d[pos] = Change[V]{Old: old, WasSet: true}
		} else if cur != old {
			d[pos] = Change[V]{Old: old, New: cur, WasSet: true, IsSet: true}
		}
	}
	for pos, cur := range now {
		if _, ok := before[pos]; !ok {
			d[pos] = Change[V]{New: cur, IsSet: true}
		}
	}
	return d
}
