// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     parser
// Description: One routine per nonterminal of the grammar
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package parser

import (
	"github.com/msto63/topdown/internal/token"
	"github.com/msto63/topdown/internal/tree"
)

// Program -> StmtList EOF
func (p *Parser) program(c *cursor) (*tree.Node, error) {
	root := tree.NewNode(tree.Program)
	if err := p.stmtList(c, root); err != nil {
		return nil, err
	}
	if err := p.match(c, token.EOF, root); err != nil {
		return nil, err
	}
	return root, nil
}

// StmtList -> Stmt StmtList | ε
func (p *Parser) stmtList(c *cursor, parent *tree.Node) error {
	node := parent.Append(tree.NewNode(tree.StatementList))

	first, err := p.sel.choose(prodStmtList, c)
	if err != nil {
		return err
	}
	if !first {
		node.Append(tree.NewEmpty())
		return nil
	}

	if err := p.stmt(c, node); err != nil {
		return err
	}
	return p.stmtList(c, node)
}

// Stmt -> ID IdTail ';' | READ ID ';' | WRITE Expr ';' | Declaration ';'
func (p *Parser) stmt(c *cursor, parent *tree.Node) error {
	node := parent.Append(tree.NewNode(tree.Statement))

	if _, err := p.sel.choose(prodStmt, c); err != nil {
		return err
	}

	switch c.kind() {
	case token.ID:
		if err := p.match(c, token.ID, node); err != nil {
			return err
		}
		if err := p.idTail(c, node); err != nil {
			return err
		}
	case token.READ:
		if err := p.match(c, token.READ, node); err != nil {
			return err
		}
		if err := p.match(c, token.ID, node); err != nil {
			return err
		}
	case token.WRITE:
		if err := p.match(c, token.WRITE, node); err != nil {
			return err
		}
		if err := p.expr(c, node); err != nil {
			return err
		}
	default:
		if err := p.declaration(c, node); err != nil {
			return err
		}
	}

	return p.match(c, token.DELIMITER, node)
}

// IdTail -> ':=' Expr | '(' ID ')'
func (p *Parser) idTail(c *cursor, parent *tree.Node) error {
	node := parent.Append(tree.NewNode(tree.IdTail))

	if _, err := p.sel.choose(prodIdTail, c); err != nil {
		return err
	}

	if c.kind() == token.ASSIGN {
		if err := p.match(c, token.ASSIGN, node); err != nil {
			return err
		}
		return p.expr(c, node)
	}

	if err := p.match(c, token.LPAREN, node); err != nil {
		return err
	}
	if err := p.match(c, token.ID, node); err != nil {
		return err
	}
	return p.match(c, token.RPAREN, node)
}

// Declaration -> INT ID | BOOL ID
func (p *Parser) declaration(c *cursor, parent *tree.Node) error {
	node := parent.Append(tree.NewNode(tree.Declaration))

	if _, err := p.sel.choose(prodDeclaration, c); err != nil {
		return err
	}

	if err := p.match(c, c.kind(), node); err != nil {
		return err
	}
	return p.match(c, token.ID, node)
}

// Expr -> Term TermTail
func (p *Parser) expr(c *cursor, parent *tree.Node) error {
	node := parent.Append(tree.NewNode(tree.Expr))

	if _, err := p.sel.choose(prodExpr, c); err != nil {
		return err
	}

	if err := p.term(c, node); err != nil {
		return err
	}
	return p.termTail(c, node)
}

// Term -> Factor FactorTail
func (p *Parser) term(c *cursor, parent *tree.Node) error {
	node := parent.Append(tree.NewNode(tree.Term))

	if _, err := p.sel.choose(prodTerm, c); err != nil {
		return err
	}

	if err := p.factor(c, node); err != nil {
		return err
	}
	return p.factorTail(c, node)
}

// TermTail -> AddOp Term TermTail | ε
func (p *Parser) termTail(c *cursor, parent *tree.Node) error {
	node := parent.Append(tree.NewNode(tree.TermTail))

	first, err := p.sel.choose(prodTermTail, c)
	if err != nil {
		return err
	}
	if !first {
		node.Append(tree.NewEmpty())
		return nil
	}

	if err := p.addOp(c, node); err != nil {
		return err
	}
	if err := p.term(c, node); err != nil {
		return err
	}
	return p.termTail(c, node)
}

// Factor -> ID | NUMBER | '(' Expr ')' | NOT Expr | TRUE | FALSE
func (p *Parser) factor(c *cursor, parent *tree.Node) error {
	node := parent.Append(tree.NewNode(tree.Factor))

	if _, err := p.sel.choose(prodFactor, c); err != nil {
		return err
	}

	switch c.kind() {
	case token.LPAREN:
		if err := p.match(c, token.LPAREN, node); err != nil {
			return err
		}
		if err := p.expr(c, node); err != nil {
			return err
		}
		return p.match(c, token.RPAREN, node)
	case token.NOT:
		if err := p.match(c, token.NOT, node); err != nil {
			return err
		}
		return p.expr(c, node)
	default:
		// ID, NUMBER, TRUE, FALSE
		return p.match(c, c.kind(), node)
	}
}

// FactorTail -> MultOp Factor FactorTail | ε
func (p *Parser) factorTail(c *cursor, parent *tree.Node) error {
	node := parent.Append(tree.NewNode(tree.FactorTail))

	first, err := p.sel.choose(prodFactorTail, c)
	if err != nil {
		return err
	}
	if !first {
		node.Append(tree.NewEmpty())
		return nil
	}

	if err := p.multOp(c, node); err != nil {
		return err
	}
	if err := p.factor(c, node); err != nil {
		return err
	}
	return p.factorTail(c, node)
}

// AddOp -> '+' | '-'
func (p *Parser) addOp(c *cursor, parent *tree.Node) error {
	node := parent.Append(tree.NewNode(tree.AddOp))

	if _, err := p.sel.choose(prodAddOp, c); err != nil {
		return err
	}
	return p.match(c, c.kind(), node)
}

// MultOp -> '*' | '/'
func (p *Parser) multOp(c *cursor, parent *tree.Node) error {
	node := parent.Append(tree.NewNode(tree.MultOp))

	if _, err := p.sel.choose(prodMultOp, c); err != nil {
		return err
	}
	return p.match(c, c.kind(), node)
}
