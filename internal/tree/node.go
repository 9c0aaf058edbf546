// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     tree
// Description: Parse-tree nodes built by the predictive parser
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

// Package tree holds the concrete derivation tree produced by the parser,
// together with its indented text rendering and JSON/YAML export.
package tree

import (
	"fmt"
	"strings"
)

// Kind identifies the grammar symbol a node stands for
type Kind int

const (
	// Internal nodes, one per nonterminal
	Program Kind = iota
	StatementList
	Statement
	IdTail
	Declaration
	Expr
	Term
	TermTail
	Factor
	FactorTail
	AddOp
	MultOp

	// Leaves
	Identifier
	Number
	True
	False
	Read
	Write
	Punctuation
	Delimiter
	Not
	Empty
)

var kindNames = [...]string{
	Program:       "Program",
	StatementList: "StatementList",
	Statement:     "Statement",
	IdTail:        "IdTail",
	Declaration:   "Declaration",
	Expr:          "Expr",
	Term:          "Term",
	TermTail:      "TermTail",
	Factor:        "Factor",
	FactorTail:    "FactorTail",
	AddOp:         "AddOp",
	MultOp:        "MultOp",
	Identifier:    "Identifier",
	Number:        "Number",
	True:          "True",
	False:         "False",
	Read:          "Read",
	Write:         "Write",
	Punctuation:   "Punctuation",
	Delimiter:     "Delimiter",
	Not:           "Not",
	Empty:         "Empty",
}

// productionLabels are the fixed display names of internal nodes
var productionLabels = map[Kind]string{
	Program:       "program",
	StatementList: "stmtList",
	Statement:     "stmt",
	IdTail:        "idTail",
	Declaration:   "declaration",
	Expr:          "expr",
	Term:          "term",
	TermTail:      "termTail",
	Factor:        "factor",
	FactorTail:    "factorTail",
	AddOp:         "addOp",
	MultOp:        "multOp",
}

// String returns the name of the kind
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsLeaf reports whether nodes of this kind stand for terminals or ε
func (k Kind) IsLeaf() bool {
	return k >= Identifier && k <= Empty
}

// EndMarker is the label of the Punctuation leaf matched for end of input
const EndMarker = "$$"

// Node is one vertex of the parse tree. Children are owned by the node;
// the parent link is informational.
type Node struct {
	Kind     Kind
	Lexeme   string
	children []*Node
	parent   *Node
}

// NewNode creates an internal node for a nonterminal
func NewNode(kind Kind) *Node {
	return &Node{Kind: kind}
}

// NewLeaf creates a leaf carrying the matched lexeme
func NewLeaf(kind Kind, lexeme string) *Node {
	return &Node{Kind: kind, Lexeme: lexeme}
}

// NewEmpty creates the ε leaf
func NewEmpty() *Node {
	return &Node{Kind: Empty}
}

// Append adds child as the last child of n and returns it
func (n *Node) Append(child *Node) *Node {
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// Children returns the children in insertion order
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Child returns the i-th child or nil
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Len returns the number of children
func (n *Node) Len() int {
	return len(n.children)
}

// Parent returns the node this one was appended to, or nil for the root
func (n *Node) Parent() *Node {
	return n.parent
}

// IsLeaf reports whether n stands for a terminal or ε
func (n *Node) IsLeaf() bool {
	return n.Kind.IsLeaf()
}

// Label returns the display name used by the pretty-printer
func (n *Node) Label() string {
	if label, ok := productionLabels[n.Kind]; ok {
		return label
	}

	switch n.Kind {
	case Identifier:
		return "ID(" + n.Lexeme + ")"
	case Number:
		return "NUMBER(" + n.Lexeme + ")"
	case True:
		return "true"
	case False:
		return "false"
	case Read:
		return "read"
	case Write:
		return "write"
	case Delimiter:
		return "delimiter"
	case Not:
		return "not"
	case Empty:
		return "e"
	case Punctuation:
		if n.Lexeme == "" {
			return EndMarker
		}
		return strings.ToUpper(n.Lexeme)
	default:
		return "illegal"
	}
}

// String returns the label of the node
func (n *Node) String() string {
	return n.Label()
}
