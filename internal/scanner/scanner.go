// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     scanner
// Description: Pushback automaton producing tokens on demand
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package scanner

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/msto63/topdown/internal/token"
	tderror "github.com/msto63/topdown/pkg/core/error"
	tdlog "github.com/msto63/topdown/pkg/core/log"
)

// DefaultMaxLexeme is the lexeme buffer capacity used when Options.MaxLexeme is zero
const DefaultMaxLexeme = 256

// nbsp is the tolerated non-breaking space
const nbsp = '\u00a0'

// LineEnding selects how carriage returns are counted
type LineEnding int

const (
	// CRLF counts CR LF as one line break; a lone CR is also a break
	CRLF LineEnding = iota
	// LF counts line feeds only; CR is plain whitespace
	LF
)

// String returns the configuration name of the line ending
func (e LineEnding) String() string {
	switch e {
	case CRLF:
		return "crlf"
	case LF:
		return "lf"
	default:
		return "unknown"
	}
}

// ParseLineEnding converts a configuration value into a LineEnding
func ParseLineEnding(s string) (LineEnding, error) {
	switch strings.ToLower(s) {
	case "", "crlf":
		return CRLF, nil
	case "lf":
		return LF, nil
	default:
		return CRLF, tderror.Newf("invalid line ending: %s", s).
			WithCode(tderror.CodeInvalidInput).
			WithOperation("scanner.ParseLineEnding")
	}
}

// Options controls the scanner
type Options struct {
	LineEnding LineEnding
	MaxLexeme  int  // 0 means DefaultMaxLexeme
	Comments   bool // skip "//" and "/* */" comments inside Next
	Logger     *tdlog.Logger
}

// Scanner produces tokens from a character stream
type Scanner struct {
	in       *bufio.Reader
	closer   io.Closer
	opts     Options
	logger   *tdlog.Logger
	pending  []rune // pushed-back characters, last in first out
	lexeme   []rune
	lexLine  int
	line     int
	done     bool
	closed   bool
	err      error
	closeErr error
}

// Open opens the source file at path for scanning
func Open(path string, opts Options) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, tderror.Wrap(err, "cannot open source").
			WithCode(tderror.CodeIOFailure).
			WithOperation("scanner.Open").
			WithDetail("path", path)
	}
	return New(f, opts), nil
}

// New creates a scanner reading from r. If r is an io.Closer the scanner
// takes ownership and closes it.
func New(r io.Reader, opts Options) *Scanner {
	if opts.MaxLexeme <= 0 {
		opts.MaxLexeme = DefaultMaxLexeme
	}
	logger := opts.Logger
	if logger == nil {
		logger = tdlog.GetDefault()
	}

	s := &Scanner{
		in:     bufio.NewReader(r),
		opts:   opts,
		logger: logger.WithName("scanner"),
		lexeme: make([]rune, 0, opts.MaxLexeme),
		line:   1,
	}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// Line returns the current 1-based line number
func (s *Scanner) Line() int {
	return s.line
}

// Next returns the next token. Once the input is exhausted it returns the
// EOF token on every call. A failure is sticky.
func (s *Scanner) Next() (token.Token, error) {
	if s.err != nil {
		return token.Token{}, s.err
	}
	if s.done {
		return token.New(token.EOF, "", s.line), nil
	}

	tok, err := s.scan()
	if err != nil {
		s.err = err
		s.release()
		s.logger.Debug("scan failed", tdlog.Err(err))
		return token.Token{}, err
	}

	if tok.Kind == token.EOF {
		s.done = true
		s.release()
	}

	if s.logger.IsLevelEnabled(tdlog.LevelTrace) {
		s.logger.Trace("token", tdlog.Fields{
			"kind":   tok.Kind.String(),
			"lexeme": tok.Lexeme,
			"line":   tok.Line,
		})
	}
	return tok, nil
}

// ScanAll drains the scanner into a slice ending with the EOF token
func (s *Scanner) ScanAll() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok, err := s.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// Close releases the input. It is safe to call more than once; every call
// returns the error of the first release, including one made by Next.
func (s *Scanner) Close() error {
	if !s.closed {
		s.closed = true
		s.closeErr = s.closeInput()
	}
	return s.closeErr
}

// release closes the input once the token stream has ended. A failure is
// kept for Close and does not affect the tokens already produced.
func (s *Scanner) release() {
	if err := s.Close(); err != nil {
		s.logger.Warn("cannot release source", tdlog.Err(err))
	}
}

func (s *Scanner) closeInput() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return tderror.Wrap(err, "cannot close source").
			WithCode(tderror.CodeIOFailure).
			WithSeverity(tderror.SeverityMedium).
			WithOperation("scanner.Close")
	}
	return nil
}

// scan runs the automaton until one token is complete
func (s *Scanner) scan() (token.Token, error) {
	s.lexeme = s.lexeme[:0]

	for {
		r, ok, err := s.read()
		if err != nil {
			return token.Token{}, err
		}
		if !ok {
			if len(s.lexeme) > 0 {
				return s.finish(), nil
			}
			return token.New(token.EOF, "", s.line), nil
		}

		switch {
		case isWhitespace(r):
			if err := s.lineBreak(r); err != nil {
				return token.Token{}, err
			}
			if len(s.lexeme) > 0 {
				return s.finish(), nil
			}

		case r == ':':
			if len(s.lexeme) > 0 {
				return s.finish(), nil
			}
			return s.scanColon()

		default:
			kind, symbol := token.LookupSymbol(r)
			if !symbol {
				if len(s.lexeme) >= s.opts.MaxLexeme {
					return token.Token{}, tderror.Newf("lexeme exceeds %d characters", s.opts.MaxLexeme).
						WithCode(tderror.CodeBufferOverflow).
						WithOperation("scanner.Next").
						WithDetail("line", s.line).
						WithDetail("limit", s.opts.MaxLexeme)
				}
				s.lexeme = append(s.lexeme, r)
				s.lexLine = s.line
				continue
			}

			if len(s.lexeme) > 0 {
				s.unread(r)
				return s.finish(), nil
			}

			if kind == token.DIVIDE && s.opts.Comments {
				skipped, err := s.skipComment()
				if err != nil {
					return token.Token{}, err
				}
				if skipped {
					continue
				}
			}
			return token.New(kind, string(r), s.line), nil
		}
	}
}

// scanColon handles a colon with no lexeme pending
func (s *Scanner) scanColon() (token.Token, error) {
	r, ok, err := s.read()
	if err != nil {
		return token.Token{}, err
	}
	if ok && r == '=' {
		return token.New(token.ASSIGN, ":=", s.line), nil
	}
	if ok {
		s.unread(r)
	}
	return token.New(token.ERROR, ":", s.line), nil
}

// finish classifies the pending lexeme and resets the buffer
func (s *Scanner) finish() token.Token {
	lexeme := string(s.lexeme)
	s.lexeme = s.lexeme[:0]

	if kind, ok := token.LookupKeyword(lexeme); ok {
		return token.New(kind, lexeme, s.lexLine)
	}
	if _, err := strconv.Atoi(lexeme); err == nil {
		return token.New(token.NUMBER, lexeme, s.lexLine)
	}
	return token.New(token.ID, lexeme, s.lexLine)
}

// lineBreak advances the line counter for a whitespace character
func (s *Scanner) lineBreak(r rune) error {
	switch {
	case r == '\n':
		s.line++
	case r == '\r' && s.opts.LineEnding == CRLF:
		next, ok, err := s.read()
		if err != nil {
			return err
		}
		if ok && next != '\n' {
			s.unread(next)
		}
		s.line++
	}
	return nil
}

// read returns the next character; ok is false at end of input
func (s *Scanner) read() (rune, bool, error) {
	if n := len(s.pending); n > 0 {
		r := s.pending[n-1]
		s.pending = s.pending[:n-1]
		return r, true, nil
	}

	r, _, err := s.in.ReadRune()
	if err == io.EOF {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, tderror.Wrap(err, "cannot read source").
			WithCode(tderror.CodeIOFailure).
			WithOperation("scanner.Next").
			WithDetail("line", s.line)
	}
	return r, true, nil
}

// unread pushes r back for re-reading
func (s *Scanner) unread(r rune) {
	s.pending = append(s.pending, r)
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', nbsp, '\r', '\n':
		return true
	}
	return false
}
