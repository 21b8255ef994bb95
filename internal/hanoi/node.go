package hanoi

// Node wraps a State with search bookkeeping. A parent owns its children;
// Parent is only a back-reference used when tracing a path.
type Node struct {
	State    State
	Parent   *Node
	Children []*Node
	G        int // moves from the root
	H        int // disks already on the goal peg

	expanded bool
}

// NewRoot wraps the starting state.
func NewRoot(s State) *Node {
	return &Node{State: s, H: heuristic(s)}
}

// F is the best-first priority, G + H.
func (n *Node) F() int { return n.G + n.H }

// Expanded reports whether GenerateMoves already ran on n.
func (n *Node) Expanded() bool { return n.expanded }

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.Parent == nil }

func (n *Node) addChild(s State) *Node {
	child := &Node{
		State:  s,
		Parent: n,
		G:      n.G + 1,
		H:      heuristic(s),
	}
	n.Children = append(n.Children, child)
	return child
}

// heuristic counts the disks on the goal peg. It is not admissible.
func heuristic(s State) int { return len(s.pegs[GoalPeg]) }
