// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     token
// Description: Replay of an already scanned token sequence
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package token

// Stream replays a token slice through Next. After the last token it keeps
// returning EOF, so a slice cut short by a scan failure still terminates.
type Stream struct {
	tokens []Token
	pos    int
}

// NewStream creates a stream over tokens
func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

// Next returns the next token
func (s *Stream) Next() (Token, error) {
	if s.pos < len(s.tokens) {
		tok := s.tokens[s.pos]
		s.pos++
		return tok, nil
	}

	line := 1
	if n := len(s.tokens); n > 0 {
		line = s.tokens[n-1].Line
	}
	return New(EOF, "", line), nil
}
