package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/bstree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Config represents a set of parameters for rendering trees.
type Config struct {
	LineWidth int            // maximum line length in ‘en’s; 0 for unlimited
	Color     bool           // use colors to distinguish kinds of nodes
	Context   *uax11.Context // context for measuring key labels
}

// Role is the structural role a node plays within its tree.
type Role int8

// Roles of nodes, used to select a style for key labels.
const (
	RootRole Role = iota
	InnerRole
	LeafRole
)

// Glyphs connecting a child node to its parent.
const (
	RightEdge = "╭─"
	LeftEdge  = "╰─"
)

const edgeWidth = 2

// Format is an interface for console-like output devices.
type Format interface {
	Preamble(io.Writer)
	Postamble(io.Writer)
	StyledKey(string, Role, io.Writer)
	Edge(string, io.Writer)
	Newline(io.Writer)
}

// Output renders a tree sideways to out.
//
// Every node occupies a line of its own. The root starts at column 0, nodes
// of depth d are indented by d times a fixed step, wide enough to hold the
// widest key label. If config.LineWidth is set, the step shrinks until the
// deepest node fits (if possible).
//
// Output does nothing for an empty tree.
func Output[K any](tree *bstree.Tree[K], out io.Writer, config *Config, format Format) error {
	if tree == nil || out == nil || config == nil || format == nil {
		return fmt.Errorf("%w: nil", bstree.ErrIllegalArguments)
	} else if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	if tree.IsEmpty() {
		return nil
	}
	grapheme.SetupGraphemeClasses()
	maxWidth := 0
	_ = tree.InOrder(func(n *bstree.Node[K]) {
		maxWidth = max(maxWidth, stringWidth(fmt.Sprintf("%v", n.Key()), config.Context))
	})
	l := layout{
		step:  layoutStep(maxWidth, tree.Height(), config.LineWidth),
		space: max(1, stringWidth(" ", config.Context)),
	}
	tracer().Debugf("format tree of height %d with step %d", tree.Height(), l.step)
	format.Preamble(out)
	renderNode(tree.Root(), 0, "", l, out, format)
	format.Postamble(out)
	return nil
}

// Print outputs a tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties and the user environment.
func Print[K any](tree *bstree.Tree[K], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	consoleFmt := NewConsoleFixedWidthFormat(nil)
	consoleFmt.Colored = config.Color
	return Output(tree, os.Stdout, config, consoleFmt)
}

// Sprint renders a tree into a string, without colors and line width limit.
func Sprint[K any](tree *bstree.Tree[K]) string {
	var sb strings.Builder
	config := &Config{Context: uax11.LatinContext}
	if err := Output(tree, &sb, config, NewConsoleFixedWidthFormat(nil)); err != nil {
		tracer().Errorf("tree format: %s", err.Error())
	}
	return sb.String()
}

// stringWidth measures s in ens. Depending on the context, digits and
// letters need not be of the same width.
func stringWidth(s string, context *uax11.Context) int {
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// layout holds the horizontal metrics of a formatted tree, in ens.
type layout struct {
	step  int // indentation per tree level
	space int // width of a blank
}

// indent returns the blanks in front of the edge of a node at depth.
func (l layout) indent(depth int) string {
	return strings.Repeat(" ", max(0, depth*l.step-edgeWidth)/l.space)
}

// layoutStep calculates the indentation per tree level. Children start right
// after the end of the widest label of their parent level.
func layoutStep(labelWidth, height, lineWidth int) int {
	step := labelWidth + edgeWidth
	if lineWidth <= 0 || height <= 0 {
		return step
	}
	if height*step+labelWidth > lineWidth {
		step = max(edgeWidth, (lineWidth-labelWidth)/height)
	}
	return step
}

// renderNode walks the subtree n in reverse in-order.
func renderNode[K any](n *bstree.Node[K], depth int, edge string, l layout, out io.Writer, format Format) {
	if n == nil {
		return
	}
	renderNode(n.Right(), depth+1, RightEdge, l, out, format)
	role := InnerRole
	if depth == 0 {
		role = RootRole
	} else if n.IsLeaf() {
		role = LeafRole
	}
	if depth > 0 {
		io.WriteString(out, l.indent(depth))
		format.Edge(edge, out)
	}
	format.StyledKey(fmt.Sprintf("%v", n.Key()), role, out)
	format.Newline(out)
	renderNode(n.Left(), depth+1, LeftEdge, l, out, format)
}
