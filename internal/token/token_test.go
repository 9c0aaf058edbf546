package token

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{ID, "ID"},
		{NUMBER, "NUMBER"},
		{INTEGER, "INTEGER"},
		{BOOLEAN, "BOOLEAN"},
		{ASSIGN, "ASSIGN"},
		{DELIMITER, "DELIMITER"},
		{EOF, "EOF"},
		{ERROR, "ERROR"},
		{Kind(99), "Kind(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindIsValid(t *testing.T) {
	for k := ID; k <= ERROR; k++ {
		if !k.IsValid() {
			t.Errorf("%v.IsValid() = false", k)
		}
	}
	if Kind(-1).IsValid() || Kind(int(ERROR)+1).IsValid() {
		t.Error("out-of-range kind reported valid")
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		lexeme string
		want   Kind
		ok     bool
	}{
		{"read", READ, true},
		{"READ", READ, true},
		{"Write", WRITE, true},
		{"tRuE", TRUE, true},
		{"false", FALSE, true},
		{"int", INTEGER, true},
		{"Bool", BOOLEAN, true},
		{"reader", 0, false},
		{"x", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.lexeme, func(t *testing.T) {
			got, ok := LookupKeyword(tt.lexeme)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("LookupKeyword(%q) = %v, %v, want %v, %v", tt.lexeme, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLookupSymbol(t *testing.T) {
	want := map[rune]Kind{
		'=': EQUAL, '*': MULTIPLY, '/': DIVIDE, '+': PLUS, '-': MINUS,
		'(': LPAREN, '!': NOT, ')': RPAREN, ';': DELIMITER,
	}
	for r, k := range want {
		if got, ok := LookupSymbol(r); !ok || got != k {
			t.Errorf("LookupSymbol(%q) = %v, %v, want %v", r, got, ok, k)
		}
	}
	if _, ok := LookupSymbol(':'); ok {
		t.Error("LookupSymbol(':') should not resolve; the colon is handled by the scanner")
	}
}

func TestTokenString(t *testing.T) {
	tok := New(ASSIGN, ":=", 3)
	if got := tok.String(); got != ":= : ASSIGN" {
		t.Errorf("String() = %q", got)
	}
	if tok.Line != 3 {
		t.Errorf("Line = %d, want 3", tok.Line)
	}
}

func TestJoinKinds(t *testing.T) {
	if got := JoinKinds([]Kind{ID, NUMBER, LPAREN}); got != "ID|NUMBER|LPAREN" {
		t.Errorf("JoinKinds() = %q", got)
	}
	if got := JoinKinds(nil); got != "" {
		t.Errorf("JoinKinds(nil) = %q", got)
	}
}

func TestStream(t *testing.T) {
	s := NewStream([]Token{New(ID, "x", 1), New(DELIMITER, ";", 2)})

	want := []Kind{ID, DELIMITER, EOF, EOF}
	for i, k := range want {
		tok, err := s.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if tok.Kind != k {
			t.Errorf("Next() #%d = %v, want %v", i, tok.Kind, k)
		}
	}

	if tok, _ := s.Next(); tok.Line != 2 {
		t.Errorf("EOF line = %d, want 2", tok.Line)
	}
	if tok, _ := NewStream(nil).Next(); tok.Kind != EOF || tok.Line != 1 {
		t.Errorf("empty stream Next() = %+v", tok)
	}
}
