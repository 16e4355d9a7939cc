package lexer

import (
	"testing"

	"github.com/go-test/deep"
)

func tok(kind TokenKind, text string, row, col int) Token {
	return Token{
		LiteralToken: LiteralToken{Kind: kind, Text: text},
		Row:          row,
		Col:          col,
	}
}

func TestTokenizeFunction(t *testing.T) {
	code := `int main(){ return 5u; }`

	output := []Token{
		tok(TokenInt, "int", 1, 1),
		tok(TokenIdentifier, "main", 1, 5),
		tok(TokenBraceOpen, "(", 1, 9),
		tok(TokenBraceClose, ")", 1, 10),
		tok(TokenCurlyBraceOpen, "{", 1, 11),
		tok(TokenReturn, "return", 1, 13),
		tok(TokenUintNumber, "5u", 1, 20),
		tok(TokenSemicolon, ";", 1, 22),
		tok(TokenCurlyBraceClose, "}", 1, 24),
		tok(TokenEOF, "", 1, 25),
	}

	tokens := NewLexer("", code).Tokenize()

	if diff := deep.Equal(tokens, output); diff != nil {
		t.Error(diff)
	}
}

func TestTokenizeSkipsComments(t *testing.T) {
	code := "// leading comment\nint /* spans\ny */ a"

	output := []Token{
		tok(TokenInt, "int", 2, 1),
		tok(TokenIdentifier, "a", 3, 6),
		tok(TokenEOF, "", 3, 7),
	}

	tokens := NewLexer("", code).Tokenize()

	if diff := deep.Equal(tokens, output); diff != nil {
		t.Error(diff)
	}
}

func TestTokenKinds(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{input: "<= >= == != < > =", expected: []TokenKind{TokenLessOrEqual, TokenGreaterOrEqual, TokenEquals, TokenNotEquals, TokenLess, TokenGreater, TokenAssign, TokenEOF}},
		{input: "+ - * /", expected: []TokenKind{TokenPlus, TokenMinus, TokenMultiply, TokenSlash, TokenEOF}},
		{input: "if else return int unsigned", expected: []TokenKind{TokenIf, TokenElse, TokenReturn, TokenInt, TokenUnsigned, TokenEOF}},
		{input: "12 12u 12U", expected: []TokenKind{TokenIntNumber, TokenUintNumber, TokenUintNumber, TokenEOF}},
		{input: "x_1 _y integer", expected: []TokenKind{TokenIdentifier, TokenIdentifier, TokenIdentifier, TokenEOF}},
		{input: "a, b;", expected: []TokenKind{TokenIdentifier, TokenComma, TokenIdentifier, TokenSemicolon, TokenEOF}},
		{input: "$ !", expected: []TokenKind{TokenError, TokenError, TokenEOF}},
		{input: "int /* never closed", expected: []TokenKind{TokenInt, TokenError, TokenEOF}},
		{input: "", expected: []TokenKind{TokenEOF}},
	}

	for _, tt := range tests {
		kinds := []TokenKind{}
		for _, tok := range NewLexer("", tt.input).Tokenize() {
			kinds = append(kinds, tok.Kind)
		}
		if diff := deep.Equal(kinds, tt.expected); diff != nil {
			t.Errorf("input %q: %v", tt.input, diff)
		}
	}
}

func TestUnterminatedCommentPosition(t *testing.T) {
	tokens := NewLexer("", "int\n  /* open").Tokenize()

	if diff := deep.Equal(tokens[1], tok(TokenError, "/*", 2, 3)); diff != nil {
		t.Error(diff)
	}
}

func TestIsType(t *testing.T) {
	if !IsType(TokenInt) || !IsType(TokenUnsigned) {
		t.Errorf("int and unsigned must be types")
	}
	if IsType(TokenIdentifier) || IsType(TokenReturn) {
		t.Errorf("only int and unsigned are types")
	}
}
