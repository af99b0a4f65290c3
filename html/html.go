/*
Package html renders search trees as HTML and extracts keys from HTML.

A tree is rendered as a set of nested unordered lists, one list item per
node. The left child of a node is always listed before its right child; an
absent child of an inner node is rendered as an empty list item of class
"empty", which keeps left and right children distinguishable.
*/
package html

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/bstree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TreeToHTML creates an HTML element node for a tree. The result is a
// <div class="bstree"> containing the nested lists. For an empty tree the
// div has no children.
func TreeToHTML[K any](tree *bstree.Tree[K]) *html.Node {
	div := element(atom.Div, "bstree")
	if root := tree.Root(); root != nil {
		ul := element(atom.Ul, "")
		ul.AppendChild(nodeItem(root))
		div.AppendChild(ul)
	}
	return div
}

func nodeItem[K any](n *bstree.Node[K]) *html.Node {
	if n == nil {
		return element(atom.Li, "empty")
	}
	li := element(atom.Li, "")
	if n.IsLeaf() {
		li.Attr = append(li.Attr, html.Attribute{Key: "class", Val: "leaf"})
	}
	span := element(atom.Span, "key")
	span.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: fmt.Sprintf("%v", n.Key()),
	})
	li.AppendChild(span)
	if !n.IsLeaf() {
		ul := element(atom.Ul, "")
		ul.AppendChild(nodeItem(n.Left()))
		ul.AppendChild(nodeItem(n.Right()))
		li.AppendChild(ul)
	}
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

// Render writes the HTML representation of a tree to w.
func Render[K any](tree *bstree.Tree[K], w io.Writer) error {
	if tree == nil {
		return bstree.ErrIllegalArguments
	}
	return html.Render(w, TreeToHTML(tree))
}

// KeysFromHTML collects integer keys from the textual content of an HTML
// fragment. Text is split at white space and commas; every field has to be
// a base-10 integer.
//
// Applied to the output of Render, KeysFromHTML returns the keys of the
// rendered tree in pre-order, which re-creates the same set of keys when
// handed to bstree.New.
func KeysFromHTML(input io.Reader) ([]int, error) {
	nodes, err := html.ParseFragment(input, &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	})
	if err != nil {
		return nil, err
	}
	var keys []int
	for _, n := range nodes {
		if keys, err = collectKeys(n, keys); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

func collectKeys(n *html.Node, keys []int) ([]int, error) {
	if n.Type == html.TextNode {
		fields := strings.FieldsFunc(n.Data, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
		for _, f := range fields {
			k, err := strconv.Atoi(f)
			if err != nil {
				return keys, fmt.Errorf("%w: not a key: %q", bstree.ErrIllegalArguments, f)
			}
			keys = append(keys, k)
		}
	}
	var err error
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if keys, err = collectKeys(c, keys); err != nil {
			return keys, err
		}
	}
	return keys, nil
}
