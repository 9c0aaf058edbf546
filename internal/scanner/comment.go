// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     scanner
// Description: Line and block comment skipping
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package scanner

// skipComment is called after a '/' with Options.Comments set. It reports
// whether a comment was consumed; otherwise the peeked character is pushed back.
func (s *Scanner) skipComment() (bool, error) {
	r, ok, err := s.read()
	if err != nil || !ok {
		return false, err
	}

	switch r {
	case '/':
		return true, s.SkipLineComment()
	case '*':
		return true, s.SkipBlockComment()
	default:
		s.unread(r)
		return false, nil
	}
}

// SkipLineComment discards input up to and including the next line break.
// The opening "//" must already have been consumed.
func (s *Scanner) SkipLineComment() error {
	for {
		r, ok, err := s.read()
		if err != nil || !ok {
			return err
		}
		if r == '\n' || (r == '\r' && s.opts.LineEnding == CRLF) {
			return s.lineBreak(r)
		}
	}
}

// SkipBlockComment discards input up to and including the closing "*/".
// The opening "/*" must already have been consumed. An unterminated comment
// runs to end of input.
func (s *Scanner) SkipBlockComment() error {
	star := false
	for {
		r, ok, err := s.read()
		if err != nil || !ok {
			return err
		}

		if star && r == '/' {
			return nil
		}
		star = r == '*'

		if r == '\n' || r == '\r' {
			if err := s.lineBreak(r); err != nil {
				return err
			}
		}
	}
}
