// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     tree
// Description: Indented pre-order rendering of the parse tree
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package tree

import (
	"bufio"
	"io"
	"strings"
)

// DefaultIndent is the number of spaces per depth level
const DefaultIndent = 1

// Printer renders a tree one node per line, indented by depth
type Printer struct {
	Indent int // spaces per level; 0 means DefaultIndent
}

// Print writes the rendering of root to w
func (p Printer) Print(w io.Writer, root *Node) error {
	indent := p.Indent
	if indent <= 0 {
		indent = DefaultIndent
	}

	bw := bufio.NewWriter(w)
	Walk(root, func(n *Node, depth int) bool {
		bw.WriteString(strings.Repeat(" ", depth*indent))
		bw.WriteString(n.Label())
		bw.WriteByte('\n')
		return true
	})
	return bw.Flush()
}

// PrettyPrint writes root with the default indent of one space
func PrettyPrint(w io.Writer, root *Node) error {
	return Printer{}.Print(w, root)
}

// Render returns the default rendering of root as a string
func Render(root *Node) string {
	var sb strings.Builder
	_ = PrettyPrint(&sb, root)
	return sb.String()
}

// Walk visits root and its descendants depth-first in pre-order.
// Returning false from fn skips the children of that node.
func Walk(root *Node, fn func(n *Node, depth int) bool) {
	if root == nil {
		return
	}
	walk(root, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.children {
		walk(c, depth+1, fn)
	}
}

// Leaves returns the terminal leaves of root in pre-order, ε excluded
func Leaves(root *Node) []*Node {
	var leaves []*Node
	Walk(root, func(n *Node, _ int) bool {
		if n.IsLeaf() && n.Kind != Empty {
			leaves = append(leaves, n)
		}
		return true
	})
	return leaves
}
