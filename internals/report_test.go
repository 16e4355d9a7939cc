package internals

import (
	"errors"
	"testing"

	"github.com/BojanStipic/micko-peg/lexer"
	"github.com/go-test/deep"
	"github.com/nalgeon/be"
)

func TestRenderSnippet(t *testing.T) {
	source := "int main(){\n  x = 1;\n  return;\n}"
	err := NewSemanticError("test.mc", lexer.Token{
		LiteralToken: lexer.LiteralToken{Kind: lexer.TokenIdentifier, Text: "x"},
		Row:          2,
		Col:          3,
	}, nil, "`x` undeclared")

	output := "\033[1;90mtest.mc:2:3:\033[0m\n\n" +
		"1    int main(){\n" +
		"2      x = 1;\n" +
		"       \033[1;31m^\033[0m\n" +
		"3      return;\n" +
		"Semantic error: `x` undeclared"

	if diff := deep.Equal(Render(err, source), output); diff != nil {
		t.Error(diff)
	}
}

func TestRenderFirstLineUnderlinesToken(t *testing.T) {
	source := "int main() return;"
	err := NewSyntaxError("test.mc", lexer.Token{
		LiteralToken: lexer.LiteralToken{Kind: lexer.TokenReturn, Text: "return"},
		Row:          1,
		Col:          12,
	}, "expected `{`, got `return`")

	output := "\033[1;90mtest.mc:1:12:\033[0m\n\n" +
		"1    int main() return;\n" +
		"                \033[1;31m^^^^^^\033[0m\n" +
		"Syntax error: expected `{`, got `return`"

	if diff := deep.Equal(Render(err, source), output); diff != nil {
		t.Error(diff)
	}
}

func TestRenderWithoutPosition(t *testing.T) {
	err := NewSemanticError("test.mc", lexer.Token{}, nil, "undefined reference to `main`")

	be.Equal(t, Render(err, "int f(){ return; }"), "\033[1;90mtest.mc: \033[0mSemantic error: undefined reference to `main`")
}

func TestErrorFormatting(t *testing.T) {
	cause := errors.New("undeclared")
	tok := lexer.Token{Row: 3, Col: 7}

	tests := []struct {
		err      *Error
		expected string
	}{
		{err: NewSyntaxError("a.mc", tok, "expected ", "`;`"), expected: "a.mc:3:7: Syntax error: expected `;`"},
		{err: NewSemanticError("a.mc", tok, cause, "`x` undeclared"), expected: "a.mc:3:7: Semantic error: `x` undeclared"},
		{err: NewSemanticError("a.mc", lexer.Token{}, cause, "no main"), expected: "a.mc: Semantic error: no main"},
		{err: NewSemanticError("", lexer.Token{}, cause, "no main"), expected: "Semantic error: no main"},
	}

	for _, tt := range tests {
		be.Equal(t, tt.err.Error(), tt.expected)
	}

	be.Err(t, NewSemanticError("a.mc", tok, cause, "`x` undeclared"), cause)
}
