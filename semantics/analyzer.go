package semantics

import (
	"fmt"

	"github.com/BojanStipic/micko-peg/ast"
	"github.com/BojanStipic/micko-peg/internals"
	"github.com/BojanStipic/micko-peg/lexer"
)

const (
	entryPoint = "main"

	// parameterOrdinal is shared by every parameter of a function.
	// Two parameters of one function therefore get the same ordinal; kept as
	// is until code generation settles on a parameter layout.
	parameterOrdinal = 1
)

// Analyzer walks a program tree once, filling the symbol table and stopping
// at the first semantic error.
type Analyzer struct {
	symbols  *SymbolTable
	ordinal  int // ordinal of the next local in the current function
	filePath string
}

func NewAnalyzer(filePath string) *Analyzer {
	return &Analyzer{
		symbols:  NewSymbolTable(),
		ordinal:  1,
		filePath: filePath,
	}
}

// Symbols is the table as left by the last Analyze call.
func (a *Analyzer) Symbols() *SymbolTable {
	return a.symbols
}

// Analyze checks a tree rooted at a program node. It panics when the tree
// does not have the shape the parser produces.
func (a *Analyzer) Analyze(program *ast.Node) error {
	a.symbols = NewSymbolTable()
	a.ordinal = 1

	mustBe(program, ast.Program)
	for _, node := range program.Children {
		switch node.Rule {
		case ast.Function:
			if err := a.visitFunction(node); err != nil {
				return err
			}
		default:
			unexpected(program, node)
		}
	}

	if _, ok := a.symbols.Lookup(entryPoint, KindFunction); !ok {
		return internals.NewSemanticError(a.filePath, lexer.Token{}, ErrNoEntryPoint,
			fmt.Sprintf("undefined reference to `%s`", entryPoint))
	}
	return nil
}

func (a *Analyzer) visitFunction(node *ast.Node) error {
	mark := a.symbols.EnterScope()

	for _, part := range node.Children {
		var err error
		switch part.Rule {
		case ast.IdDecl:
			_, err = a.visitIdDecl(part, KindFunction, 0)
		case ast.Parameter:
			_, err = a.visitIdDecl(part, KindParameter, parameterOrdinal)
		case ast.Body:
			err = a.visitBody(part)
		default:
			unexpected(node, part)
		}
		if err != nil {
			return err
		}
	}

	// keep the function itself, drop its parameters and locals
	a.symbols.ExitScope(mark + 1)
	a.ordinal = 1
	return nil
}

// visitIdDecl declares the `type id` pair of an id_decl or parameter node.
func (a *Analyzer) visitIdDecl(node *ast.Node, kind Kind, ordinal int) (*Symbol, error) {
	typeNode, id := node.Child(0), node.Child(1)
	mustBe(typeNode, ast.Type)
	mustBe(id, ast.Id)

	symType, ok := ParseType(typeNode.Token.Text)
	if !ok {
		panic(fmt.Sprintf("unknown type %q in %s", typeNode.Token.Text, node.Rule))
	}

	conflicts := []Kind{kind}
	if kind == KindVariable || kind == KindParameter {
		conflicts = ValueKinds
	}
	if _, ok := a.symbols.Lookup(id.Token.Text, conflicts...); ok {
		return nil, internals.NewSemanticError(a.filePath, id.Token, ErrRedefinition,
			fmt.Sprintf("redefinition of `%s`", id.Token.Text))
	}

	return a.symbols.Push(Symbol{
		Name:    id.Token.Text,
		Kind:    kind,
		Type:    symType,
		Ordinal: ordinal,
	}), nil
}

// visitBody looks at the immediate children only; nested blocks declare nothing.
func (a *Analyzer) visitBody(body *ast.Node) error {
	for _, part := range body.Children {
		var err error
		switch part.Rule {
		case ast.Variable:
			err = a.visitVariable(part)
		case ast.AssignmentStatement:
			err = a.visitAssignment(part)
		case ast.CompoundStatement, ast.IfStatement, ast.ReturnStatement:
		default:
			unexpected(body, part)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) visitVariable(node *ast.Node) error {
	decl := node.Child(0)
	mustBe(decl, ast.IdDecl)

	if _, err := a.visitIdDecl(decl, KindVariable, a.ordinal); err != nil {
		return err
	}
	a.ordinal++
	return nil
}

func (a *Analyzer) visitAssignment(node *ast.Node) error {
	lhsNode, rhsNode := node.Child(0), node.Child(1)

	lhs, err := a.visitIdentifier(lhsNode, ValueKinds...)
	if err != nil {
		return err
	}
	rhs, err := a.visitNumExp(rhsNode)
	if err != nil {
		return err
	}

	if lhs.Type != rhs.Type {
		return internals.NewSemanticError(a.filePath, lhsNode.Token, ErrIncompatibleTypes,
			fmt.Sprintf("incompatible types: `%s` is %s, expression is %s", lhs.Name, lhs.Type, rhs.Type))
	}
	return nil
}

// visitNumExp checks every operand against the first one and returns it.
func (a *Analyzer) visitNumExp(node *ast.Node) (*Symbol, error) {
	mustBe(node, ast.NumExp)

	first, err := a.visitExp(node.Child(0))
	if err != nil {
		return nil, err
	}

	for _, part := range node.Children[1:] {
		switch part.Rule {
		case ast.Arop:
		case ast.Exp:
			operand, err := a.visitExp(part)
			if err != nil {
				return nil, err
			}
			if operand.Type != first.Type {
				return nil, internals.NewSemanticError(a.filePath, part.Token, ErrIncompatibleTypes,
					fmt.Sprintf("incompatible types: `%s` is %s, `%s` is %s", first.Name, first.Type, operand.Name, operand.Type))
			}
		default:
			unexpected(node, part)
		}
	}
	return first, nil
}

func (a *Analyzer) visitExp(node *ast.Node) (*Symbol, error) {
	mustBe(node, ast.Exp)

	inner := node.Child(0)
	if inner == nil {
		panic("empty exp node")
	}
	switch inner.Rule {
	case ast.FunctionCall:
		return a.visitFunctionCall(inner)
	case ast.Literal:
		return a.visitLiteral(inner), nil
	case ast.Id:
		return a.visitIdentifier(inner, ValueKinds...)
	case ast.NumExp:
		return a.visitNumExp(inner)
	}
	unexpected(node, inner)
	return nil, nil
}

func (a *Analyzer) visitIdentifier(node *ast.Node, kinds ...Kind) (*Symbol, error) {
	mustBe(node, ast.Id)

	sym, ok := a.symbols.Lookup(node.Token.Text, kinds...)
	if !ok {
		return nil, internals.NewSemanticError(a.filePath, node.Token, ErrUndeclared,
			fmt.Sprintf("`%s` undeclared", node.Token.Text))
	}
	return sym, nil
}

// visitLiteral types a literal by its lexical form and registers it.
func (a *Analyzer) visitLiteral(node *ast.Node) *Symbol {
	number := node.Child(0)
	if number == nil {
		panic("empty literal node")
	}

	var symType Type
	switch number.Rule {
	case ast.IntNumber:
		symType = TypeInt
	case ast.UintNumber:
		symType = TypeUnsigned
	default:
		unexpected(node, number)
	}

	return a.symbols.Push(Symbol{
		Name:    number.Token.Text,
		Kind:    KindLiteral,
		Type:    symType,
		Ordinal: 0,
	})
}

// visitFunctionCall resolves the callee; the argument is only checked on its
// own, not against the callee's parameters.
func (a *Analyzer) visitFunctionCall(node *ast.Node) (*Symbol, error) {
	fn, err := a.visitIdentifier(node.Child(0), KindFunction)
	if err != nil {
		return nil, err
	}

	if arg := node.Child(1); arg != nil {
		if _, err := a.visitNumExp(arg); err != nil {
			return nil, err
		}
	}
	return fn, nil
}

func mustBe(node *ast.Node, rule ast.Rule) {
	if node == nil {
		panic(fmt.Sprintf("missing %s node", rule))
	}
	if node.Rule != rule {
		panic(fmt.Sprintf("expected %s node, got %s", rule, node.Rule))
	}
}

func unexpected(parent, node *ast.Node) {
	panic(fmt.Sprintf("unexpected %s node in %s", node.Rule, parent.Rule))
}
