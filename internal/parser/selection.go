// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     parser
// Description: FIRST/FOLLOW selection sets per production
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package parser

import "github.com/msto63/topdown/internal/token"

// Production names, also used in syntax errors
const (
	prodStmtList    = "stmtList"
	prodStmt        = "stmt"
	prodIdTail      = "idTail"
	prodDeclaration = "declaration"
	prodExpr        = "expr"
	prodTerm        = "term"
	prodTermTail    = "termTail"
	prodFactor      = "factor"
	prodFactorTail  = "factorTail"
	prodAddOp       = "addOp"
	prodMultOp      = "multOp"
)

// kindSet is an ordered set of token kinds
type kindSet []token.Kind

func (s kindSet) contains(k token.Kind) bool {
	for _, m := range s {
		if m == k {
			return true
		}
	}
	return false
}

func union(sets ...kindSet) kindSet {
	var out kindSet
	for _, s := range sets {
		for _, k := range s {
			if !out.contains(k) {
				out = append(out, k)
			}
		}
	}
	return out
}

// selection holds the lookahead sets that choose among a production's
// alternatives. Follow is non-empty only for productions with an ε alternative.
type selection struct {
	First  kindSet
	Follow kindSet
}

// Nullable reports whether the production has an ε alternative
func (s selection) Nullable() bool {
	return len(s.Follow) > 0
}

// Expected returns the kinds accepted as lookahead
func (s selection) Expected() []token.Kind {
	return union(s.First, s.Follow)
}

var (
	firstExpr   = kindSet{token.ID, token.NUMBER, token.LPAREN, token.TRUE, token.FALSE, token.NOT}
	firstFactor = kindSet{token.ID, token.NUMBER, token.LPAREN, token.NOT, token.TRUE, token.FALSE}
	firstStmt   = kindSet{token.ID, token.READ, token.WRITE}
	firstDecl   = kindSet{token.INTEGER, token.BOOLEAN}
	firstAddOp  = kindSet{token.PLUS, token.MINUS}
	firstMultOp = kindSet{token.MULTIPLY, token.DIVIDE}

	followTermTail   = kindSet{token.RPAREN, token.ID, token.READ, token.WRITE, token.EOF, token.DELIMITER}
	followFactorTail = kindSet{token.PLUS, token.MINUS, token.RPAREN, token.ID, token.READ, token.WRITE, token.EOF, token.DELIMITER}
)

// selectionTable maps production names to their selection sets
type selectionTable map[string]selection

// newSelectionTable builds the table; declarations extend FIRST of the
// statement productions with INT and BOOL.
func newSelectionTable(allowDeclarations bool) selectionTable {
	stmt := firstStmt
	if allowDeclarations {
		stmt = union(firstStmt, firstDecl)
	}

	return selectionTable{
		prodStmtList:    {First: stmt, Follow: kindSet{token.EOF}},
		prodStmt:        {First: stmt},
		prodIdTail:      {First: kindSet{token.ASSIGN, token.LPAREN}},
		prodDeclaration: {First: firstDecl},
		prodExpr:        {First: firstExpr},
		prodTerm:        {First: firstExpr},
		prodTermTail:    {First: firstAddOp, Follow: followTermTail},
		prodFactor:      {First: firstFactor},
		prodFactorTail:  {First: firstMultOp, Follow: followFactorTail},
		prodAddOp:       {First: firstAddOp},
		prodMultOp:      {First: firstMultOp},
	}
}

// choose decides the alternative for the lookahead: first reports a FIRST
// match, otherwise the ε alternative is taken when the lookahead is in FOLLOW.
func (t selectionTable) choose(production string, c *cursor) (first bool, err error) {
	sel := t[production]
	switch {
	case sel.First.contains(c.kind()):
		return true, nil
	case sel.Follow.contains(c.kind()):
		return false, nil
	default:
		return false, newSyntaxError(production, sel.Expected(), c.tok)
	}
}
