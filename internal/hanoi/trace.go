package hanoi

import "errors"

var ErrNilNode = errors.New("cannot trace a path from an absent node")

// Trace walks parent links from n up to the root. The result starts with n
// and ends with the root.
func Trace(n *Node) ([]*Node, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	path := make([]*Node, 0, max(n.G+1, 1))
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur)
	}
	return path, nil
}

// Reverse returns a new slice in the opposite order.
func Reverse(path []*Node) []*Node {
	out := make([]*Node, len(path))
	for i, n := range path {
		out[len(path)-1-i] = n
	}
	return out
}
