package backtrack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type mapState map[string]int

func (m mapState) Assignments() map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func TestCompareEmptyStart(t *testing.T) {
	before := TakeSnapshot[string, int](mapState{})
	after := mapState{"a": 1, "b": 2}

	d := Compare(before, after)
	require.Len(t, d, 2)
	require.Equal(t, Change[int]{New: 1, IsSet: true}, d["a"])
	require.Equal(t, Change[int]{New: 2, IsSet: true}, d["b"])
}

func TestCompareExcludesPrefilled(t *testing.T) {
	start := mapState{"a": 5}
	before := TakeSnapshot[string, int](start)
	after := mapState{"a": 5, "b": 3}

	d := Compare(before, after)
	require.Len(t, d, 1)
	require.NotContains(t, d, "a")
	require.Equal(t, Change[int]{New: 3, IsSet: true}, d["b"])
}

func TestCompareReplacedAndCleared(t *testing.T) {
	before := TakeSnapshot[string, int](mapState{"a": 1, "b": 2})
	after := mapState{"a": 9}

	d := Compare(before, after)
	require.Equal(t, Change[int]{Old: 1, New: 9, WasSet: true, IsSet: true}, d["a"])
	require.Equal(t, Change[int]{Old: 2, WasSet: true}, d["b"])
}

func TestSnapshotIndependentOfLiveState(t *testing.T) {
	live := mapState{"a": 1}
	before := TakeSnapshot[string, int](live)
	live["a"] = 2
	live["b"] = 3

	require.Equal(t, Snapshot[string, int]{"a": 1}, before)
}
