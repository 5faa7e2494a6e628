package lexer

import (
	"testing"

	"github.com/deep-adeshraa/loxgo/internal/token"
)

func TestScanPunctuationAndOperators(t *testing.T) {
	src := "(){},.-+;*!= == <= >= < > = !"
	l := New(src)
	tokens := l.Scan()

	want := []token.Kind{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG_EQUAL, token.EQUAL_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.LESS, token.GREATER, token.EQUAL, token.BANG, token.EOF,
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Kind, k)
		}
	}
}

func TestScanStringLiteral(t *testing.T) {
	l := New(`"hello world"`)
	tokens := l.Scan()
	if tokens[0].Kind != token.STRING {
		t.Fatalf("got kind %s, want STRING", tokens[0].Kind)
	}
	if tokens[0].Literal != "hello world" {
		t.Errorf("got literal %q, want %q", tokens[0].Literal, "hello world")
	}
}

func TestScanUnterminatedString(t *testing.T) {
	l := New(`"hello`)
	l.Scan()
	errs := l.Errors()
	if len(errs) != 1 || errs[0].Message != "Unterminated string." {
		t.Fatalf("got errors %v, want one \"Unterminated string.\"", errs)
	}
}

func TestScanNumber(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"123", 123},
		{"3.14", 3.14},
		{"0.5", 0.5},
	}
	for _, tc := range tests {
		l := New(tc.input)
		tokens := l.Scan()
		if tokens[0].Kind != token.NUMBER {
			t.Fatalf("%q: got kind %s, want NUMBER", tc.input, tokens[0].Kind)
		}
		if tokens[0].Literal.(float64) != tc.want {
			t.Errorf("%q: got %v, want %v", tc.input, tokens[0].Literal, tc.want)
		}
	}
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	l := New("foo and or true false nil class")
	tokens := l.Scan()
	wantKinds := []token.Kind{
		token.IDENTIFIER, token.AND, token.OR, token.TRUE, token.FALSE, token.NIL, token.CLASS, token.EOF,
	}
	for i, k := range wantKinds {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Kind, k)
		}
	}
	if tokens[3].Literal != true {
		t.Errorf("true literal = %v, want true", tokens[3].Literal)
	}
	if tokens[4].Literal != false {
		t.Errorf("false literal = %v, want false", tokens[4].Literal)
	}
}

func TestScanLogicalAliases(t *testing.T) {
	l := New("&& ||")
	tokens := l.Scan()
	if tokens[0].Kind != token.AND || tokens[1].Kind != token.OR {
		t.Fatalf("got %v, want AND OR", tokens)
	}
}

func TestScanLineComment(t *testing.T) {
	l := New("var x = 1; // comment\nvar y = 2;")
	tokens := l.Scan()
	for _, tok := range tokens {
		if tok.Kind == token.ILLEGAL {
			t.Errorf("unexpected illegal token: %v", tok)
		}
	}
}

func TestScanUnexpectedCharacter(t *testing.T) {
	l := New("@")
	l.Scan()
	errs := l.Errors()
	if len(errs) != 1 || errs[0].Message != "Unexpected character" {
		t.Fatalf("got errors %v, want one \"Unexpected character\"", errs)
	}
}

func TestLineNumbersAreOneBasedAndIncrement(t *testing.T) {
	l := New("var a = 1;\nvar b = 2;\nvar c = 3;")
	tokens := l.Scan()
	var lines []int
	for _, tok := range tokens {
		if tok.Kind == token.VAR {
			lines = append(lines, tok.Pos.Line)
		}
	}
	if want := []int{1, 2, 3}; len(lines) != 3 || lines[0] != want[0] || lines[1] != want[1] || lines[2] != want[2] {
		t.Errorf("got lines %v, want %v", lines, want)
	}
}
