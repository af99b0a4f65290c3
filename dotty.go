package bstree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[K any] struct {
	idTable map[*Node[K]]int
	max     int
}

func newtable[K any]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[*Node[K]]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(node *Node[K]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K]) alloc(node *Node[K]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Inner nodes with a single child get an empty placeholder node for the
// missing child, so that left and right children are distinguishable in
// the rendered graph.
func Tree2Dot[K any](tree *Tree[K], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K]()
	var nodelist, edgelist strings.Builder
	nilid := 0 // placeholders are numbered separately, as "e1", "e2", …
	err := traverse(tree.Root(), 0, func(node *Node[K], depth int) error {
		ID := ids.alloc(node)
		styles := nodeDotStyles(node.IsLeaf(), depth == 0)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%v\" %s];\n", ID, node.key, styles)
		if node.IsLeaf() {
			return nil
		}
		for _, child := range []*Node[K]{node.left, node.right} {
			if child == nil {
				nilid++
				fmt.Fprintf(&nodelist, "\"e%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"e%d\";\n", ID, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool, highlight bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	if highlight {
		s += ",fillcolor=\"#FFBB88\""
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}

// --- Debugging helper ------------------------------------------------------

func dump[K any](node *Node[K]) {
	traverse(node, 0, func(node *Node[K], depth int) error {
		if node.IsLeaf() {
			tracer().Debugf("%sL = %v", indent(depth), node.key)
			return nil
		}
		tracer().Debugf("%sN = %v", indent(depth), node)
		return nil
	})
}

func indent(d int) string {
	return strings.Repeat("  ", d)
}
