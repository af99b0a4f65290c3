package bstree

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func checkTree[K any](t *testing.T, tree *Tree[K]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		dump(tree.Root())
		t.Fatalf("tree invariants violated: %v", err)
	}
}

func TestNewDeduplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()

	tree := New(3, 1, 2, 3, 1)
	checkTree(t, tree)
	if tree.Len() != 3 {
		t.Fatalf("unexpected size: got=%d want=3", tree.Len())
	}
	if keys := tree.Keys(); !slices.Equal(keys, []int{1, 2, 3}) {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

func TestNewDoesNotModifyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()

	input := []int{9, 4, 4, 1}
	_ = New(input...)
	if !slices.Equal(input, []int{9, 4, 4, 1}) {
		t.Fatalf("input has been modified: %v", input)
	}
}

func TestNewEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()

	tree := New[int]()
	if !tree.IsEmpty() || tree.Root() != nil {
		t.Fatalf("expected empty tree")
	}
	if tree.Len() != 0 || tree.Height() != -1 {
		t.Fatalf("unexpected empty tree state len=%d height=%d", tree.Len(), tree.Height())
	}
	if !tree.IsBalanced() {
		t.Fatalf("expected empty tree to be balanced")
	}
	checkTree(t, tree)
	tree.Rebalance()
	if !tree.IsEmpty() {
		t.Fatalf("rebalancing an empty tree should leave it empty")
	}
}

func TestNewWithConfigRequiresComparator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()

	_, err := NewWithConfig(Config[int]{}, 1, 2, 3)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestBuildRootsAtLowerMidpoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()

	tree := New(1, 2, 3, 4, 5, 6, 7)
	if tree.Root().Key() != 4 {
		t.Fatalf("unexpected root: got=%d want=4", tree.Root().Key())
	}
	if tree.Height() != 2 {
		t.Fatalf("unexpected height: got=%d want=2", tree.Height())
	}
	// even number of keys: index len/2 becomes the root
	tree = New(4, 3, 2, 1)
	if tree.Root().Key() != 3 {
		t.Fatalf("unexpected root: got=%d want=3", tree.Root().Key())
	}
	if tree.Root().Left().Key() != 2 || tree.Root().Right().Key() != 4 {
		t.Fatalf("unexpected children of root %v", tree.Root())
	}
	if tree.Root().Left().Left().Key() != 1 {
		t.Fatalf("expected 1 as leftmost leaf")
	}
}

func TestBalancedAfterBuild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()

	inputs := [][]int{
		{},
		{42},
		{2, 1},
		{1, 7, 4, 23, 8, 9, 4, 3, 5, 7, 9, 67, 6345, 324},
		{-5, 100, 0, 0, 3, -200, 17, 17, 17, 8, 9},
	}
	var ascending []int
	for i := range 1000 {
		ascending = append(ascending, i)
	}
	inputs = append(inputs, ascending)
	for _, input := range inputs {
		tree := New(input...)
		checkTree(t, tree)
		if !tree.IsBalanced() {
			dump(tree.Root())
			t.Errorf("tree built from %d keys is not balanced", len(input))
		}
	}
}

func TestInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()

	tree := New[int]()
	for _, k := range []int{32, 21, 38, 47, 28, 7, 35} {
		tree.Insert(k)
		checkTree(t, tree)
	}
	if tree.Root().Key() != 32 {
		t.Fatalf("first inserted key should be the root, root is %v", tree.Root())
	}
	want := []int{7, 21, 28, 32, 35, 38, 47}
	if keys := tree.Keys(); !slices.Equal(keys, want) {
		t.Fatalf("unexpected keys: got=%v want=%v", keys, want)
	}
}

func TestInsertIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()

	tree := New(5, 3, 8)
	before := tree.Keys()
	tree.Insert(3)
	tree.Insert(5)
	tree.Insert(8)
	if after := tree.Keys(); !slices.Equal(before, after) {
		t.Fatalf("re-inserting keys changed the tree: %v -> %v", before, after)
	}
	if tree.Len() != 3 {
		t.Fatalf("unexpected size: got=%d want=3", tree.Len())
	}
}

func TestFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()

	tree := New(1, 7, 4, 23, 8, 9, 4, 3, 5, 7, 9, 67, 6345, 324)
	for _, k := range []int{1, 4, 6345, 324} {
		n := tree.Find(k)
		if n == nil || n.Key() != k {
			t.Errorf("expected to find key %d, got %v", k, n)
		}
	}
	if n := tree.Find(999); n != nil {
		t.Errorf("expected not to find 999, got %v", n)
	}
	if tree.Contains(2) {
		t.Errorf("tree should not contain 2")
	}
	var empty *Tree[int]
	if empty.Find(1) != nil {
		t.Errorf("nil tree should not find anything")
	}
}

func TestHeightSentinel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()

	var n *Node[int]
	if n.Height() != -1 {
		t.Fatalf("height of empty subtree should be -1, is %d", n.Height())
	}
	tree := New(7)
	if h := tree.Root().Height(); h != 0 {
		t.Fatalf("height of single node should be 0, is %d", h)
	}
	if !tree.Root().IsLeaf() {
		t.Fatalf("single node should be a leaf")
	}
}

func TestDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()

	tree := New(1, 2, 3, 4, 5, 6, 7)
	cases := []struct {
		key, depth int
	}{
		{4, 0}, {2, 1}, {6, 1}, {1, 2}, {3, 2}, {5, 2}, {7, 2}, {999, -1},
	}
	for _, c := range cases {
		if d := tree.DepthOf(c.key); d != c.depth {
			t.Errorf("depth of %d: got=%d want=%d", c.key, d, c.depth)
		}
	}
	if d := tree.Depth(tree.Find(7)); d != 2 {
		t.Errorf("depth of node 7: got=%d want=2", d)
	}
	if d := tree.Depth(nil); d != -1 {
		t.Errorf("depth of nil node: got=%d want=-1", d)
	}
	// a node which is not part of the tree is located by its key
	if d := tree.Depth(makeNode(6)); d != 1 {
		t.Errorf("depth of foreign node with key 6: got=%d want=1", d)
	}
	if d := tree.Depth(makeNode(0)); d != -1 {
		t.Errorf("depth of foreign node with key 0: got=%d want=-1", d)
	}
}

func TestRebalanceRestoresBalance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()

	tree := New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	if !tree.IsBalanced() {
		t.Fatalf("expected fresh tree to be balanced")
	}
	for _, k := range []int{100, 200, 300} {
		tree.Insert(k)
	}
	checkTree(t, tree)
	if tree.IsBalanced() {
		dump(tree.Root())
		t.Fatalf("expected tree to be unbalanced after inserting a right chain")
	}
	tree.Rebalance()
	checkTree(t, tree)
	if !tree.IsBalanced() {
		dump(tree.Root())
		t.Fatalf("expected tree to be balanced after rebalancing")
	}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 100, 200, 300}
	if keys := tree.Keys(); !slices.Equal(keys, want) {
		t.Fatalf("unexpected keys after rebalancing: got=%v want=%v", keys, want)
	}
	if tree.Height() != 3 {
		t.Fatalf("unexpected height after rebalancing: got=%d want=3", tree.Height())
	}
}

func TestCustomComparator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()

	descending := func(a, b string) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	}
	tree := NewFunc(descending, "b", "d", "a", "c", "a")
	checkTree(t, tree)
	if keys := tree.Keys(); !slices.Equal(keys, []string{"d", "c", "b", "a"}) {
		t.Fatalf("unexpected key order: %v", keys)
	}
	tree.Insert("e")
	if tree.Root().Left().Left().Left().Key() != "e" {
		t.Fatalf("expected e to be inserted leftmost")
	}
	if tree.DepthOf("e") != 3 {
		t.Fatalf("unexpected depth of e: %d", tree.DepthOf("e"))
	}
}

func TestAllStopsEarly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()

	tree := New(9, 3, 7, 1, 5)
	var seen []int
	for k := range tree.All() {
		if k > 5 {
			break
		}
		seen = append(seen, k)
	}
	if !slices.Equal(seen, []int{1, 3, 5}) {
		t.Fatalf("unexpected keys from iterator: %v", seen)
	}
}

func TestCheckDetectsViolation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()

	tree := New(1, 2, 3, 4, 5, 6, 7)
	tree.Find(1).right = makeNode(5) // 5 must not appear left of root 4
	err := tree.Check()
	if !errors.Is(err, ErrInvalidTree) {
		t.Fatalf("expected ErrInvalidTree, got %v", err)
	}
	t.Logf("check reports: %v", err)
}
