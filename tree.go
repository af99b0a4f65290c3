package bstree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"iter"
)

// Tree is a binary search tree over keys of type K.
//
// Trees are created from a collection of keys, which need not be sorted and
// may contain duplicates:
//
//	tree := New(5, 3, 8, 3)
//
// The resulting tree holds every distinct key exactly once and is balanced.
// Subsequent insertions may unbalance the tree; clients call Rebalance to
// restore a tree of minimal height.
//
//	Operation     |   Cost
//	--------------+-----------------
//	New           |   O(n log n)
//	Insert        |   O(h)
//	Find          |   O(h)
//	Depth         |   O(h)
//	Traversals    |   O(n)
//	IsBalanced    |   O(n log n)
//	Rebalance     |   O(n log n)
//
// where h is the height of the tree.
//
// Trees are not safe for concurrent use.
type Tree[K any] struct {
	root    *Node[K]
	compare func(a, b K) int
}

// Config configures a search tree.
type Config[K any] struct {
	// Compare defines the total order of keys. It returns a negative number
	// if a < b, a positive number if a > b, and 0 if a and b are equal.
	Compare func(a, b K) int
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparison function is required", ErrInvalidConfig)
	}
	return nil
}

// New creates a balanced tree from keys of an ordered type.
// keys may be unsorted and contain duplicates.
func New[K cmp.Ordered](keys ...K) *Tree[K] {
	return NewFunc(cmp.Compare[K], keys...)
}

// NewFunc creates a balanced tree from keys, ordered by compare.
// NewFunc panics if compare is nil.
func NewFunc[K any](compare func(a, b K) int, keys ...K) *Tree[K] {
	tree, err := NewWithConfig(Config[K]{Compare: compare}, keys...)
	assert(err == nil, "NewFunc requires a comparison function")
	return tree
}

// NewWithConfig creates a balanced tree from keys, using the configuration cfg.
// It returns ErrInvalidConfig if cfg does not provide a comparison function.
func NewWithConfig[K any](cfg Config[K], keys ...K) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	tree := &Tree[K]{compare: cfg.Compare}
	tree.root = tree.buildBalanced(keys)
	tracer().Debugf("bstree: created tree with height %d from %d keys", tree.Height(), len(keys))
	return tree, nil
}

// Root returns the root node of the tree, or nil for an empty tree.
func (t *Tree[K]) Root() *Node[K] {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	return count(t.Root())
}

func count[K any](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return 1 + count(n.left) + count(n.right)
}

// Height returns the height of the tree, which is -1 for an empty tree.
func (t *Tree[K]) Height() int {
	return t.Root().Height()
}

// IsBalanced reports whether the tree is height-balanced.
func (t *Tree[K]) IsBalanced() bool {
	return t.Root().IsBalanced()
}

// Insert adds key to the tree. Inserting a key which is already present is
// a no-op. Insert does not re-balance the tree.
func (t *Tree[K]) Insert(key K) {
	t.root = t.insert(t.root, key)
}

// insert places key into the subtree n and returns the new subtree root.
func (t *Tree[K]) insert(n *Node[K], key K) *Node[K] {
	if n == nil {
		return makeNode(key)
	}
	switch c := t.compare(key, n.key); {
	case c < 0:
		n.left = t.insert(n.left, key)
	case c > 0:
		n.right = t.insert(n.right, key)
	}
	return n
}

// Find locates the node holding key. It returns nil if key is not present.
func (t *Tree[K]) Find(key K) *Node[K] {
	if t == nil {
		return nil
	}
	return t.find(t.root, key)
}

func (t *Tree[K]) find(n *Node[K], key K) *Node[K] {
	if n == nil {
		return nil
	}
	switch c := t.compare(key, n.key); {
	case c < 0:
		return t.find(n.left, key)
	case c > 0:
		return t.find(n.right, key)
	}
	return n
}

// Contains reports whether key is present in the tree.
func (t *Tree[K]) Contains(key K) bool {
	return t.Find(key) != nil
}

// Depth returns the distance from the root to node n, with the root at depth 0.
//
// The position of n is found by descending from the root and comparing keys,
// not by node identity. Depth returns -1 if n is nil or its key is not
// present in the tree.
func (t *Tree[K]) Depth(n *Node[K]) int {
	if n == nil {
		return -1
	}
	return t.DepthOf(n.key)
}

// DepthOf returns the depth of the node holding key, or -1 if key is not present.
func (t *Tree[K]) DepthOf(key K) int {
	d := 0
	for current := t.Root(); current != nil; d++ {
		switch c := t.compare(key, current.key); {
		case c < 0:
			current = current.left
		case c > 0:
			current = current.right
		default:
			return d
		}
	}
	return -1
}

// Rebalance rebuilds the tree from its current keys, resulting in a tree of
// minimal height. All nodes are replaced by new ones; node references taken
// before the call are no longer part of the tree.
func (t *Tree[K]) Rebalance() {
	if t.IsEmpty() {
		return
	}
	before := t.Height()
	t.root = t.buildBalanced(t.Keys())
	tracer().Debugf("bstree: rebalanced tree, height %d -> %d", before, t.Height())
}

// Keys returns all keys of the tree in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.Len())
	_ = t.InOrder(func(n *Node[K]) {
		keys = append(keys, n.key)
	})
	return keys
}

// All returns an iterator over all keys of the tree in ascending order.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		walkKeys(t.Root(), yield)
	}
}

func walkKeys[K any](n *Node[K], yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return walkKeys(n.left, yield) && yield(n.key) && walkKeys(n.right, yield)
}
