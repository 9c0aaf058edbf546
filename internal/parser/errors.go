// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     parser
// Description: Syntax error reporting
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package parser

import (
	"fmt"

	"github.com/msto63/topdown/internal/token"
	tderror "github.com/msto63/topdown/pkg/core/error"
)

// SyntaxError reports a lookahead no alternative of Production accepts
type SyntaxError struct {
	Production string       // grammar routine, or "match" for a terminal mismatch
	Expected   []token.Kind // kinds that would have been accepted
	Found      token.Kind
	Lexeme     string
	Line       int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: expected %s, found %s at line %d",
		e.Production, token.JoinKinds(e.Expected), e.Found, e.Line)
}

// Code returns the error code used by the error layer
func (e *SyntaxError) Code() tderror.Code {
	return tderror.CodeSyntax
}

func newSyntaxError(production string, expected []token.Kind, found token.Token) *SyntaxError {
	return &SyntaxError{
		Production: production,
		Expected:   expected,
		Found:      found.Kind,
		Lexeme:     found.Lexeme,
		Line:       found.Line,
	}
}
