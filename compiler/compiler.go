package compiler

import (
	"github.com/BojanStipic/micko-peg/ast"
	"github.com/BojanStipic/micko-peg/lexer"
	"github.com/BojanStipic/micko-peg/parser"
	"github.com/BojanStipic/micko-peg/semantics"
)

// Check parses and analyzes one miniC program, returning the first
// syntax or semantic error.
func Check(filePath, source string) error {
	_, _, err := Analyze(filePath, source)
	return err
}

// Analyze is Check that also hands back the tree and the global symbols left
// once every function scope closed. The tree is nil on a syntax error.
func Analyze(filePath, source string) (*ast.Node, []semantics.Symbol, error) {
	p := parser.NewParser(lexer.NewLexer(filePath, source), filePath)
	program, err := p.Parse()
	if err != nil {
		return nil, nil, err
	}

	analyzer := semantics.NewAnalyzer(filePath)
	if err := analyzer.Analyze(program); err != nil {
		return program, nil, err
	}
	return program, analyzer.Symbols().Symbols(), nil
}
