// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     parser
// Description: Parser entry point, lookahead cursor and terminal matching
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package parser

import (
	"github.com/msto63/topdown/internal/token"
	"github.com/msto63/topdown/internal/tree"
	tderror "github.com/msto63/topdown/pkg/core/error"
	tdlog "github.com/msto63/topdown/pkg/core/log"
)

// TokenSource supplies tokens one at a time; *scanner.Scanner satisfies it
type TokenSource interface {
	Next() (token.Token, error)
}

// Options configures the parser
type Options struct {
	// AllowDeclarations admits "int x;" and "bool x;" as statements
	AllowDeclarations bool
	Logger            *tdlog.Logger
}

// Parser turns a token stream into a parse tree. A Parser processes one
// source and is not reusable.
type Parser struct {
	src    TokenSource
	opts   Options
	sel    selectionTable
	logger *tdlog.Logger
	used   bool
}

// New creates a parser reading from src
func New(src TokenSource, opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = tdlog.GetDefault()
	}

	return &Parser{
		src:    src,
		opts:   opts,
		sel:    newSelectionTable(opts.AllowDeclarations),
		logger: opts.Logger.WithField("component", "parser"),
	}
}

// Parse consumes the source up to EOF and returns the Program node
func (p *Parser) Parse() (*tree.Node, error) {
	if p.used {
		p.logger.Error("parse called twice on one parser")
		return nil, tderror.New("parser already used").
			WithCode(tderror.CodeInternal).
			WithOperation("parser.Parse")
	}
	p.used = true

	p.logger.Debug("Starting parse", tdlog.Fields{
		"declarations": p.opts.AllowDeclarations,
	})
	timer := p.logger.StartTimer("parse")

	c := &cursor{src: p.src}
	if err := c.advance(); err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	root, err := p.program(c)
	if err != nil {
		timer.WithField("tokens", c.consumed).StopWithError(err)
		return nil, err
	}

	timer.WithField("tokens", c.consumed).Stop()
	return root, nil
}

// cursor holds the single token of lookahead
type cursor struct {
	src      TokenSource
	tok      token.Token
	consumed int
}

func (c *cursor) kind() token.Kind {
	return c.tok.Kind
}

// advance replaces the lookahead with the next token. Source errors are
// returned unchanged.
func (c *cursor) advance() error {
	tok, err := c.src.Next()
	if err != nil {
		return err
	}
	c.tok = tok
	c.consumed++
	return nil
}

// match appends the leaf for the lookahead to parent and advances, or fails
// if the lookahead is not of the given kind
func (p *Parser) match(c *cursor, kind token.Kind, parent *tree.Node) error {
	if c.kind() != kind {
		return newSyntaxError("match", []token.Kind{kind}, c.tok)
	}

	parent.Append(leafFor(c.tok))
	if kind == token.EOF {
		return nil
	}
	return c.advance()
}

// leafFor builds the tree leaf for a matched token
func leafFor(tok token.Token) *tree.Node {
	switch tok.Kind {
	case token.ID:
		return tree.NewLeaf(tree.Identifier, tok.Lexeme)
	case token.NUMBER:
		return tree.NewLeaf(tree.Number, tok.Lexeme)
	case token.TRUE:
		return tree.NewLeaf(tree.True, tok.Lexeme)
	case token.FALSE:
		return tree.NewLeaf(tree.False, tok.Lexeme)
	case token.READ:
		return tree.NewLeaf(tree.Read, tok.Lexeme)
	case token.WRITE:
		return tree.NewLeaf(tree.Write, tok.Lexeme)
	case token.DELIMITER:
		return tree.NewLeaf(tree.Delimiter, tok.Lexeme)
	case token.NOT:
		return tree.NewLeaf(tree.Not, tok.Lexeme)
	default:
		// ASSIGN, EOF, operators, parentheses and type names
		return tree.NewLeaf(tree.Punctuation, tok.Lexeme)
	}
}
