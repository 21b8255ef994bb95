package hanoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustState(t *testing.T, pegs ...[]int) State {
	t.Helper()
	s, err := NewState(pegs...)
	require.NoError(t, err)
	return s
}

// reachable walks every state reachable from n disks on the first peg.
func reachable(t *testing.T, n int) []State {
	t.Helper()
	start, err := Initial(n)
	require.NoError(t, err)

	seen := map[Key]bool{start.Key(): true}
	out := []State{start}
	for i := 0; i < len(out); i++ {
		for from := 0; from < PegCount; from++ {
			for to := 0; to < PegCount; to++ {
				next, ok := out[i].Move(from, to)
				if !ok || seen[next.Key()] {
					continue
				}
				seen[next.Key()] = true
				out = append(out, next)
			}
		}
	}
	return out
}

func TestInitialAndGoal(t *testing.T) {
	s, err := Initial(3)
	require.NoError(t, err)
	assert.Equal(t, "[[3,2,1],[],[]]", s.String())
	assert.Equal(t, 3, s.Disks())

	g, err := Goal(3)
	require.NoError(t, err)
	assert.Equal(t, "[[],[],[3,2,1]]", g.String())
	assert.True(t, g.Solved())

	for _, n := range []int{0, -1, MaxDisks + 1} {
		_, err := Initial(n)
		assert.ErrorIs(t, err, ErrInvalidDiskCount)
		_, err = Goal(n)
		assert.ErrorIs(t, err, ErrInvalidDiskCount)
	}
}

func TestNewState_Validation(t *testing.T) {
	tests := []struct {
		name string
		pegs [][]int
		ok   bool
	}{
		{"ordered", [][]int{{3, 1}, {2}, {}}, true},
		{"missing pegs are empty", [][]int{{2, 1}}, true},
		{"larger on smaller", [][]int{{1, 2}, {}, {}}, false},
		{"duplicate disk", [][]int{{2, 1}, {1}, {}}, false},
		{"gap in sizes", [][]int{{3, 1}, {}, {}}, false},
		{"zero disk", [][]int{{0}, {}, {}}, false},
		{"four pegs", [][]int{{1}, {}, {}, {}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewState(tt.pegs...)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidState)
			}
		})
	}
}

func TestNewState_CopiesInput(t *testing.T) {
	peg := []int{2, 1}
	s := mustState(t, peg)
	peg[0] = 9
	assert.Equal(t, []int{2, 1}, s.Peg(0))

	out := s.Peg(0)
	out[0] = 7
	assert.Equal(t, []int{2, 1}, s.Peg(0))
}

func TestMove(t *testing.T) {
	s := mustState(t, []int{3}, []int{2}, []int{1})

	next, ok := s.Move(2, 1)
	require.True(t, ok)
	assert.Equal(t, "[[3],[2,1],[]]", next.String())
	assert.Equal(t, "[[3],[2],[1]]", s.String(), "receiver must not change")

	_, ok = s.Move(0, 1)
	assert.False(t, ok, "3 onto 2")
	_, ok = s.Move(1, 1)
	assert.False(t, ok, "same peg")
	_, ok = mustState(t, []int{1}).Move(1, 0)
	assert.False(t, ok, "empty source")
	_, ok = s.Move(0, PegCount)
	assert.False(t, ok, "destination out of range")
}

func TestIsGoal(t *testing.T) {
	goal, err := Goal(3)
	require.NoError(t, err)
	assert.True(t, goal.IsGoal(3))
	assert.False(t, goal.IsGoal(4))

	assert.False(t, mustState(t, []int{1}, nil, []int{3, 2}).IsGoal(3))
	assert.False(t, mustState(t, nil, []int{1}, []int{3, 2}).IsGoal(3))

	for _, s := range reachable(t, 3) {
		if s.Equal(goal) {
			continue
		}
		assert.False(t, s.IsGoal(3), s.String())
	}
}

func TestKey_InjectiveAndIdempotent(t *testing.T) {
	states := reachable(t, 4)
	assert.Len(t, states, 81)

	keys := make(map[Key]State, len(states))
	for _, s := range states {
		k := s.Key()
		assert.Equal(t, k, s.Key())
		if prev, dup := keys[k]; dup {
			t.Fatalf("key %q shared by %s and %s", k, prev, s)
		}
		keys[k] = s
	}

	a := mustState(t, []int{2, 1}, nil, nil)
	b := mustState(t, []int{2}, []int{1}, nil)
	assert.NotEqual(t, a.Key(), b.Key())
	assert.True(t, a.Equal(mustState(t, []int{2, 1})))
	assert.Equal(t, a.Key(), mustState(t, []int{2, 1}).Key())
}

func TestMinMoves(t *testing.T) {
	assert.Equal(t, 0, MinMoves(0))
	assert.Equal(t, 1, MinMoves(1))
	assert.Equal(t, 7, MinMoves(3))
	assert.Equal(t, 31, MinMoves(5))
}
