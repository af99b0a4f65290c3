package bstree

import "slices"

// buildBalanced creates a subtree of minimal height from keys.
//
// keys are copied, sorted and de-duplicated, the caller's slice stays untouched.
// The root of every subtree is the key at the lower midpoint of its (sorted)
// key range, thus sequences of even length produce subtrees with one more key
// on the left side.
func (t *Tree[K]) buildBalanced(keys []K) *Node[K] {
	if len(keys) == 0 {
		return nil
	}
	sorted := slices.Clone(keys)
	slices.SortFunc(sorted, t.compare)
	sorted = slices.CompactFunc(sorted, func(a, b K) bool {
		return t.compare(a, b) == 0
	})
	return build(sorted)
}

// build expects keys to be sorted and free of duplicates.
func build[K any](keys []K) *Node[K] {
	if len(keys) == 0 {
		return nil
	}
	mid := len(keys) / 2
	node := makeNode(keys[mid])
	node.left = build(keys[:mid])
	node.right = build(keys[mid+1:])
	return node
}
