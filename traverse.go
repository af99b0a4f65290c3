package bstree

import "fmt"

// Order selects a traversal order for Walk.
type Order int8

// Traversal orders
const (
	LevelOrderTraversal Order = iota // breadth first, left to right
	InOrderTraversal                 // left subtree, node, right subtree
	PreOrderTraversal                // node, left subtree, right subtree
	PostOrderTraversal               // left subtree, right subtree, node
)

func (o Order) String() string {
	switch o {
	case LevelOrderTraversal:
		return "level-order"
	case InOrderTraversal:
		return "in-order"
	case PreOrderTraversal:
		return "pre-order"
	case PostOrderTraversal:
		return "post-order"
	}
	return fmt.Sprintf("Order(%d)", int8(o))
}

// Walk traverses the tree in the given order, calling visit for every node.
func (t *Tree[K]) Walk(order Order, visit func(*Node[K])) error {
	switch order {
	case LevelOrderTraversal:
		return t.LevelOrder(visit)
	case InOrderTraversal:
		return t.InOrder(visit)
	case PreOrderTraversal:
		return t.PreOrder(visit)
	case PostOrderTraversal:
		return t.PostOrder(visit)
	}
	return fmt.Errorf("%w: unknown traversal order %s", ErrIllegalArguments, order)
}

// LevelOrder visits all nodes breadth first, starting at the root and
// visiting the nodes of each level from left to right.
//
// visit must not be nil, otherwise ErrMissingCallback is returned and no
// node is visited. Traversing an empty tree does not call visit.
func (t *Tree[K]) LevelOrder(visit func(*Node[K])) error {
	if visit == nil {
		return ErrMissingCallback
	}
	if t.IsEmpty() {
		return nil
	}
	queue := []*Node[K]{t.root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		visit(node)
		if node.left != nil {
			queue = append(queue, node.left)
		}
		if node.right != nil {
			queue = append(queue, node.right)
		}
	}
	return nil
}

// InOrder visits all nodes in ascending key order.
//
// visit must not be nil, otherwise ErrMissingCallback is returned and no
// node is visited. Traversing an empty tree does not call visit.
func (t *Tree[K]) InOrder(visit func(*Node[K])) error {
	if visit == nil {
		return ErrMissingCallback
	}
	inOrder(t.Root(), visit)
	return nil
}

// PreOrder visits every node before its left and right subtrees.
//
// visit must not be nil, otherwise ErrMissingCallback is returned and no
// node is visited. Traversing an empty tree does not call visit.
func (t *Tree[K]) PreOrder(visit func(*Node[K])) error {
	if visit == nil {
		return ErrMissingCallback
	}
	preOrder(t.Root(), visit)
	return nil
}

// PostOrder visits every node after its left and right subtrees.
//
// visit must not be nil, otherwise ErrMissingCallback is returned and no
// node is visited. Traversing an empty tree does not call visit.
func (t *Tree[K]) PostOrder(visit func(*Node[K])) error {
	if visit == nil {
		return ErrMissingCallback
	}
	postOrder(t.Root(), visit)
	return nil
}

func inOrder[K any](n *Node[K], visit func(*Node[K])) {
	if n == nil {
		return
	}
	inOrder(n.left, visit)
	visit(n)
	inOrder(n.right, visit)
}

func preOrder[K any](n *Node[K], visit func(*Node[K])) {
	if n == nil {
		return
	}
	visit(n)
	preOrder(n.left, visit)
	preOrder(n.right, visit)
}

func postOrder[K any](n *Node[K], visit func(*Node[K])) {
	if n == nil {
		return
	}
	postOrder(n.left, visit)
	postOrder(n.right, visit)
	visit(n)
}

// traverse walks a subtree in pre-order, handing the depth of each node
// relative to n to f. Iteration stops at the first error returned by f.
func traverse[K any](n *Node[K], depth int, f func(node *Node[K], depth int) error) error {
	if n == nil {
		return nil
	}
	if err := f(n, depth); err != nil {
		return err
	}
	if err := traverse(n.left, depth+1, f); err != nil {
		return err
	}
	return traverse(n.right, depth+1, f)
}
