// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     token
// Description: Terminal categories and the immutable token value
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package token

import (
	"fmt"
	"strings"
)

// Kind represents the terminal category of a token
type Kind int

const (
	ID Kind = iota
	NUMBER
	TRUE
	FALSE
	READ
	WRITE
	INTEGER // int
	BOOLEAN // bool
	PLUS
	MINUS
	MULTIPLY
	DIVIDE
	ASSIGN    // :=
	EQUAL     // =
	NOT       // !
	DELIMITER // ;
	LPAREN
	RPAREN
	EOF
	ERROR // malformed colon
)

var kindNames = [...]string{
	ID:        "ID",
	NUMBER:    "NUMBER",
	TRUE:      "TRUE",
	FALSE:     "FALSE",
	READ:      "READ",
	WRITE:     "WRITE",
	INTEGER:   "INTEGER",
	BOOLEAN:   "BOOLEAN",
	PLUS:      "PLUS",
	MINUS:     "MINUS",
	MULTIPLY:  "MULTIPLY",
	DIVIDE:    "DIVIDE",
	ASSIGN:    "ASSIGN",
	EQUAL:     "EQUAL",
	NOT:       "NOT",
	DELIMITER: "DELIMITER",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	EOF:       "EOF",
	ERROR:     "ERROR",
}

// String returns the upper-case name of the kind
func (k Kind) String() string {
	if k.IsValid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsValid reports whether k is one of the declared kinds
func (k Kind) IsValid() bool {
	return k >= ID && k <= ERROR
}

// keywords maps the lower-cased reserved words to their kinds
var keywords = map[string]Kind{
	"read":  READ,
	"write": WRITE,
	"true":  TRUE,
	"false": FALSE,
	"bool":  BOOLEAN,
	"int":   INTEGER,
}

// LookupKeyword matches a lexeme case-insensitively against the reserved words
func LookupKeyword(lexeme string) (Kind, bool) {
	k, ok := keywords[strings.ToLower(lexeme)]
	return k, ok
}

// symbols maps the single-character operators and punctuation to their kinds
var symbols = map[rune]Kind{
	'=': EQUAL,
	'*': MULTIPLY,
	'/': DIVIDE,
	'+': PLUS,
	'-': MINUS,
	'(': LPAREN,
	'!': NOT,
	')': RPAREN,
	';': DELIMITER,
}

// LookupSymbol returns the kind of a single-character symbol
func LookupSymbol(r rune) (Kind, bool) {
	k, ok := symbols[r]
	return k, ok
}

// Token is a lexeme with its category and the line on which it ended
type Token struct {
	Lexeme string
	Kind   Kind
	Line   int
}

// New creates a token
func New(kind Kind, lexeme string, line int) Token {
	return Token{Lexeme: lexeme, Kind: kind, Line: line}
}

// String renders the token in scan-only form: "<lexeme> : <kind>"
func (t Token) String() string {
	return t.Lexeme + " : " + t.Kind.String()
}

// JoinKinds renders kinds separated by "|"
func JoinKinds(kinds []Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, "|")
}
