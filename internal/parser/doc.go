// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     parser
// Description: Recursive-descent LL(1) parser building the parse tree
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

/*
Package parser implements a predictive recursive-descent parser for the
topdown language. It holds exactly one token of lookahead and selects every
alternative from hand-encoded FIRST/FOLLOW sets:

	Program     -> StmtList EOF
	StmtList    -> Stmt StmtList | ε
	Stmt        -> ID IdTail ';' | READ ID ';' | WRITE Expr ';' | Declaration ';'
	IdTail      -> ':=' Expr | '(' ID ')'
	Declaration -> INT ID | BOOL ID
	Expr        -> Term TermTail
	Term        -> Factor FactorTail
	TermTail    -> AddOp Term TermTail | ε
	Factor      -> ID | NUMBER | '(' Expr ')' | NOT Expr | TRUE | FALSE
	FactorTail  -> MultOp Factor FactorTail | ε
	AddOp       -> '+' | '-'
	MultOp      -> '*' | '/'

Declarations are only accepted with Options.AllowDeclarations. Parsing stops
at the first error; there is no recovery.
*/
package parser
