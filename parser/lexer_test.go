package parser

import "testing"

func lexAll(input string) []Token {
	l := NewLexer(input)
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == TOKEN_EOF {
			return toks
		}
	}
}

func TestLexerOperators(t *testing.T) {
	input := "+ - * / % ** = != < > <= >= && || ^^ ! & | ^ ~ := ( ) [ ] ,"
	want := []TokenType{
		TOKEN_PLUS, TOKEN_MINUS, TOKEN_STAR, TOKEN_SLASH, TOKEN_PERCENT, TOKEN_POWER,
		TOKEN_EQ, TOKEN_NE, TOKEN_LT, TOKEN_GT, TOKEN_LE, TOKEN_GE,
		TOKEN_AND, TOKEN_OR, TOKEN_XOR, TOKEN_NOT,
		TOKEN_BITAND, TOKEN_BITOR, TOKEN_BITXOR, TOKEN_BITNOT,
		TOKEN_ASSIGN,
		TOKEN_LPAREN, TOKEN_RPAREN, TOKEN_LBRACKET, TOKEN_RBRACKET, TOKEN_COMMA,
		TOKEN_EOF,
	}

	toks := lexAll(input)
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, tok := range toks {
		if tok.Type != want[i] {
			t.Errorf("token %d: got %s, want %s", i, tok.Type, want[i])
		}
	}
}

func TestLexerLiterals(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
		value string
	}{
		{"42", TOKEN_NUMBER, "42"},
		{"3.25", TOKEN_NUMBER, "3.25"},
		{".5", TOKEN_NUMBER, ".5"},
		{"stateno", TOKEN_IDENTIFIER, "stateno"},
		{"velocity.walk.fwd.x", TOKEN_IDENTIFIER, "velocity.walk.fwd.x"},
		{"vel x", TOKEN_KEYWORD, "vel x"},
		{"Vel  Y", TOKEN_KEYWORD, "vel y"},
		{"p2bodydist x", TOKEN_KEYWORD, "p2bodydist x"},
		{"vel", TOKEN_IDENTIFIER, "vel"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := NewLexer(tt.input).NextToken()
			if tok.Type != tt.typ {
				t.Fatalf("type = %s, want %s", tok.Type, tt.typ)
			}
			if tok.Value != tt.value {
				t.Errorf("value = %q, want %q", tok.Value, tt.value)
			}
		})
	}
}

func TestLexerKeywordNeedsLoneAxis(t *testing.T) {
	toks := lexAll("pos xvel")
	if toks[0].Type != TOKEN_IDENTIFIER || toks[0].Value != "pos" {
		t.Fatalf("first token = %s %q, want identifier pos", toks[0].Type, toks[0].Value)
	}
	if toks[1].Type != TOKEN_IDENTIFIER || toks[1].Value != "xvel" {
		t.Errorf("second token = %s %q, want identifier xvel", toks[1].Type, toks[1].Value)
	}
}

func TestLexerStrings(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{`"holdfwd"`, "holdfwd"},
		{`"a\"b"`, `a"b`},
		{`"a\\b"`, `a\b`},
		{`"tab\there"`, "tab\there"},
	}
	for _, tt := range tests {
		tok := NewLexer(tt.input).NextToken()
		if tok.Type != TOKEN_STRING {
			t.Fatalf("%s: type = %s", tt.input, tok.Type)
		}
		if tok.Literal != tt.literal {
			t.Errorf("%s: literal = %q, want %q", tt.input, tok.Literal, tt.literal)
		}
	}

	if tok := NewLexer(`"open`).NextToken(); tok.Type != TOKEN_ILLEGAL {
		t.Errorf("unterminated string should be ILLEGAL, got %s", tok.Type)
	}
}

func TestLexerPositions(t *testing.T) {
	toks := lexAll("a\n  b")
	if toks[0].Position.Line != 1 || toks[0].Position.Column != 1 {
		t.Errorf("a at %+v", toks[0].Position)
	}
	if toks[1].Position.Line != 2 || toks[1].Position.Column != 3 {
		t.Errorf("b at %+v", toks[1].Position)
	}
}
