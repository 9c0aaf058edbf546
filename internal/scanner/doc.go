// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     scanner
// Description: Lexical analysis of topdown source text
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

// Package scanner converts a character stream into a lazy, finite sequence of
// tokens for the predictive parser.
//
// The scanner is a small pushback automaton:
//
//   - whitespace (space, tab, NBSP, CR, LF) ends a pending lexeme or is skipped
//   - the single-character symbols = * / + - ( ! ) ; end a pending lexeme and
//     are then emitted on their own
//   - a colon starts an assignment (":=") or yields an ERROR token
//   - everything else accumulates into the lexeme buffer
//
// Completed lexemes are classified as keyword, NUMBER or ID. After end of input
// Next returns the EOF token forever. The scanner owns its input and closes it
// on EOF, on error and on Close.
//
// Comment skipping ("//" to end of line, "/* ... */") is available through
// SkipLineComment and SkipBlockComment and becomes part of Next only when
// Options.Comments is set.
package scanner
