package bstree

import "fmt"

// Check validates the search tree ordering of t: every key in a left subtree
// is strictly smaller than its parent's key, every key in a right subtree
// strictly greater. Violations are reported as errors wrapping ErrInvalidTree.
//
// Check is meant for tests and debugging, the public operations of Tree
// maintain the ordering.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if t.compare == nil {
		return fmt.Errorf("%w: tree has no comparison function", ErrInvalidConfig)
	}
	return t.checkNode(t.root, nil, nil)
}

// checkNode validates that all keys of subtree n lie strictly between lower and
// upper. A nil bound is unbounded.
func (t *Tree[K]) checkNode(n *Node[K], lower, upper *K) error {
	if n == nil {
		return nil
	}
	if lower != nil && t.compare(n.key, *lower) <= 0 {
		return fmt.Errorf("%w: key %v not greater than ancestor key %v", ErrInvalidTree, n.key, *lower)
	}
	if upper != nil && t.compare(n.key, *upper) >= 0 {
		return fmt.Errorf("%w: key %v not less than ancestor key %v", ErrInvalidTree, n.key, *upper)
	}
	if err := t.checkNode(n.left, lower, &n.key); err != nil {
		return err
	}
	return t.checkNode(n.right, &n.key, upper)
}
