package hanoi

import "fmt"

// Move is a single-disk transfer between two pegs (0-based).
type Move struct {
	Disk int
	From int
	To   int
}

func (m Move) String() string {
	return fmt.Sprintf("disk %d: peg %d -> peg %d", m.Disk, m.From+1, m.To+1)
}

// MoveObserver is told about every candidate move, legal or not.
type MoveObserver func(m Move, legal bool)

// GenerateMoves attaches one child per legal move to n and returns the
// children. Expansion happens once; later calls return the same slice.
// Illegal moves are reported to observe (which may be nil) and dropped.
func GenerateMoves(n *Node, observe MoveObserver) []*Node {
	if n.expanded {
		return n.Children
	}
	n.expanded = true

	for from := 0; from < PegCount; from++ {
		disk, ok := n.State.Top(from)
		if !ok {
			continue
		}
		for to := 0; to < PegCount; to++ {
			if to == from {
				continue
			}
			m := Move{Disk: disk, From: from, To: to}
			next, legal := n.State.Move(from, to)
			if observe != nil {
				observe(m, legal)
			}
			if legal {
				n.addChild(next)
			}
		}
	}
	return n.Children
}

// MoveBetween recovers the move that turns a into b, if b is one legal move
// away from a.
func MoveBetween(a, b State) (Move, bool) {
	for from := 0; from < PegCount; from++ {
		for to := 0; to < PegCount; to++ {
			next, ok := a.Move(from, to)
			if ok && next.Equal(b) {
				disk, _ := a.Top(from)
				return Move{Disk: disk, From: from, To: to}, true
			}
		}
	}
	return Move{}, false
}
