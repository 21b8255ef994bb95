// Package hanoi models the three-peg Tower of Hanoi as a state space and
// searches it with a breadth-first strategy and a best-first (A*) strategy.
package hanoi

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	PegCount = 3
	GoalPeg  = PegCount - 1
	// MaxDisks bounds the state space at 3^10 states. Breadth-first search
	// keeps every generated child attached to its parent, so memory grows
	// with roughly three nodes per reachable state.
	MaxDisks = 10
)

var (
	ErrInvalidDiskCount = errors.New("disk count out of range")
	ErrInvalidState     = errors.New("invalid peg configuration")
)

// State is a snapshot of the three pegs. Index 0 of each peg is the bottom
// disk. A State is never mutated after construction.
type State struct {
	pegs [PegCount][]int
}

// Key is the canonical, comparable form of a State.
type Key string

// NewState builds a State from up to three pegs, bottom first. Missing pegs
// are empty.
func NewState(pegs ...[]int) (State, error) {
	if len(pegs) > PegCount {
		return State{}, fmt.Errorf("%w: %d pegs", ErrInvalidState, len(pegs))
	}
	var s State
	for i, p := range pegs {
		s.pegs[i] = slices.Clone(p)
	}
	if !s.Valid() {
		return State{}, fmt.Errorf("%w: %s", ErrInvalidState, s)
	}
	return s, nil
}

// Initial returns n disks stacked on the first peg.
func Initial(n int) (State, error) {
	if n < 1 || n > MaxDisks {
		return State{}, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidDiskCount, n, MaxDisks)
	}
	var s State
	s.pegs[0] = tower(n)
	return s, nil
}

// Goal returns n disks stacked on the goal peg.
func Goal(n int) (State, error) {
	if n < 1 || n > MaxDisks {
		return State{}, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidDiskCount, n, MaxDisks)
	}
	var s State
	s.pegs[GoalPeg] = tower(n)
	return s, nil
}

// MinMoves is the optimal solution length for n disks, 2^n - 1.
func MinMoves(n int) int {
	if n < 1 {
		return 0
	}
	return 1<<n - 1
}

func tower(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - i
	}
	return out
}

// Disks counts every disk on every peg.
func (s State) Disks() int {
	total := 0
	for _, p := range s.pegs {
		total += len(p)
	}
	return total
}

// Peg returns a copy of peg i.
func (s State) Peg(i int) []int {
	if i < 0 || i >= PegCount {
		return nil
	}
	return slices.Clone(s.pegs[i])
}

// Top returns the smallest (last) disk of peg i.
func (s State) Top(i int) (int, bool) {
	if i < 0 || i >= PegCount || len(s.pegs[i]) == 0 {
		return 0, false
	}
	p := s.pegs[i]
	return p[len(p)-1], true
}

// Move relocates the top disk of peg from onto peg to. The receiver is left
// untouched; ok is false when the move would break the ordering rule.
func (s State) Move(from, to int) (State, bool) {
	if from == to || to < 0 || to >= PegCount {
		return State{}, false
	}
	disk, ok := s.Top(from)
	if !ok {
		return State{}, false
	}
	if top, occupied := s.Top(to); occupied && top <= disk {
		return State{}, false
	}

	var next State
	for i, p := range s.pegs {
		next.pegs[i] = slices.Clone(p)
	}
	next.pegs[from] = next.pegs[from][:len(next.pegs[from])-1]
	next.pegs[to] = append(next.pegs[to], disk)
	return next, true
}

// Valid reports whether the pegs partition {1..n} and every peg is strictly
// decreasing from bottom to top.
func (s State) Valid() bool {
	n := s.Disks()
	seen := make([]bool, n+1)
	for _, p := range s.pegs {
		for i, d := range p {
			if d < 1 || d > n || seen[d] {
				return false
			}
			seen[d] = true
			if i > 0 && p[i-1] <= d {
				return false
			}
		}
	}
	return true
}

// IsGoal reports whether all n disks sit in order on the goal peg.
func (s State) IsGoal(n int) bool {
	for i := 0; i < GoalPeg; i++ {
		if len(s.pegs[i]) != 0 {
			return false
		}
	}
	return slices.Equal(s.pegs[GoalPeg], tower(n))
}

// Solved is IsGoal for the state's own disk count.
func (s State) Solved() bool { return s.Disks() > 0 && s.IsGoal(s.Disks()) }

// Equal compares the three pegs element-wise.
func (s State) Equal(other State) bool {
	for i := range s.pegs {
		if !slices.Equal(s.pegs[i], other.pegs[i]) {
			return false
		}
	}
	return true
}

// Key serialises the pegs as "3,2,1||" so it can be used as a map key.
func (s State) Key() Key {
	var b strings.Builder
	for i, p := range s.pegs {
		if i > 0 {
			b.WriteByte('|')
		}
		for j, d := range p {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(d))
		}
	}
	return Key(b.String())
}

// String renders the state as [[3,2,1],[],[]].
func (s State) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range s.pegs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(FormatPeg(p))
	}
	b.WriteByte(']')
	return b.String()
}

// FormatPeg renders a single peg as [3,2,1].
func FormatPeg(p []int) string {
	parts := make([]string, len(p))
	for i, d := range p {
		parts[i] = strconv.Itoa(d)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
