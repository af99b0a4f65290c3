package bstree

import "fmt"

// Node is a node of a search tree, carrying a single key.
//
// Nodes are owned by their parent node, or by the tree in case of the root
// node. There are no references back to the parent. Keys of a node never
// change; tree operations only re-link child nodes or build new nodes.
//
// A nil *Node denotes an empty subtree and is a valid receiver for Height,
// IsBalanced and IsLeaf.
type Node[K any] struct {
	key         K
	left, right *Node[K]
}

func makeNode[K any](key K) *Node[K] {
	return &Node[K]{key: key}
}

// Key returns the key stored in n.
func (n *Node[K]) Key() K {
	return n.key
}

// Left returns the left child of n, or nil.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child of n, or nil.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

// IsLeaf is true for a non-nil node without children.
func (n *Node[K]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

func (n *Node[K]) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("<node %v|%d>", n.key, n.Height())
}

// Height returns the height of the subtree rooted at n.
// A single leaf has height 0, an empty subtree (nil) has height -1.
func (n *Node[K]) Height() int {
	if n == nil {
		return -1
	}
	return 1 + max(n.left.Height(), n.right.Height())
}

// IsBalanced reports whether the subtree rooted at n is height-balanced, i.e.
// for every node the heights of its left and right subtree differ by at most 1.
// An empty subtree is balanced.
//
// Heights are re-computed on every call, which makes this an O(n log n)
// operation for balanced trees.
func (n *Node[K]) IsBalanced() bool {
	if n == nil {
		return true
	}
	diff := n.left.Height() - n.right.Height()
	if diff < -1 || diff > 1 {
		return false
	}
	return n.left.IsBalanced() && n.right.IsBalanced()
}
