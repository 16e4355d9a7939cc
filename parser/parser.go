package parser

import (
	"fmt"

	"github.com/BojanStipic/micko-peg/ast"
	"github.com/BojanStipic/micko-peg/internals"
	"github.com/BojanStipic/micko-peg/lexer"
)

type Parser struct {
	lexer    *lexer.Lexer
	FilePath string
	Pos      int

	curToken  lexer.Token
	peekToken lexer.Token // one token lookahead
}

func NewParser(lex *lexer.Lexer, filepath string) *Parser {
	p := Parser{
		lexer:    lex,
		FilePath: filepath,
	}

	// set the tok position
	p.nextToken()
	p.nextToken()
	p.Pos = 0

	return &p
}

func (p *Parser) nextToken() {
	p.Pos++
	p.curToken = p.peekToken
	p.peekToken = p.lexer.NextToken()
}

func (p *Parser) curTokenKindIs(kind lexer.TokenKind) bool {
	return p.curToken.Kind == kind
}

func (p *Parser) peekTokenKindIs(kind lexer.TokenKind) bool {
	return p.peekToken.Kind == kind
}

func (p *Parser) error(tok lexer.Token, msg ...any) error {
	return internals.NewSyntaxError(p.FilePath, tok, msg...)
}

// unexpected reports the current token against what the rule wanted.
func (p *Parser) unexpected(want string) error {
	switch p.curToken.Kind {
	case lexer.TokenEOF:
		return p.error(p.curToken, "expected ", want, ", got end of file")
	case lexer.TokenError:
		if p.curToken.Text == "/*" {
			return p.error(p.curToken, "unterminated comment")
		}
		return p.error(p.curToken, "unexpected character `", p.curToken.Text, "`")
	}
	return p.error(p.curToken, "expected ", want, ", got `", p.curToken.Text, "`")
}

// expect consumes the current token when it has the given kind.
func (p *Parser) expect(kind lexer.TokenKind) (lexer.Token, error) {
	tok := p.curToken
	if !p.curTokenKindIs(kind) {
		return tok, p.unexpected(fmt.Sprintf("`%s`", kind))
	}
	p.nextToken()
	return tok, nil
}

// leaf consumes the current token as a terminal node of the given rule.
func (p *Parser) leaf(rule ast.Rule) *ast.Node {
	node := ast.New(rule, p.curToken)
	p.nextToken()
	return node
}

// Parse reads a whole program. The first syntax error stops the parse.
func (p *Parser) Parse() (*ast.Node, error) {
	program := ast.New(ast.Program, p.curToken)

	for {
		fn, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		program.Add(fn)

		if p.curTokenKindIs(lexer.TokenEOF) {
			return program, nil
		}
	}
}

func (p *Parser) parseFunction() (*ast.Node, error) {
	fn := ast.New(ast.Function, p.curToken)

	decl, err := p.parseIdDecl(ast.IdDecl)
	if err != nil {
		return nil, err
	}
	fn.Add(decl)

	if _, err := p.expect(lexer.TokenBraceOpen); err != nil {
		return nil, err
	}

	if !p.curTokenKindIs(lexer.TokenBraceClose) {
		for {
			param, err := p.parseIdDecl(ast.Parameter)
			if err != nil {
				return nil, err
			}
			fn.Add(param)

			if !p.curTokenKindIs(lexer.TokenComma) {
				break
			}
			// consume ,
			p.nextToken()
		}
	}

	if _, err := p.expect(lexer.TokenBraceClose); err != nil {
		return nil, err
	}

	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	return fn.Add(body), nil
}

// parseIdDecl parses `type id` under the given rule (id_decl or parameter).
func (p *Parser) parseIdDecl(rule ast.Rule) (*ast.Node, error) {
	decl := ast.New(rule, p.curToken)

	if !lexer.IsType(p.curToken.Kind) {
		return nil, p.unexpected("type")
	}
	decl.Add(p.leaf(ast.Type))

	if !p.curTokenKindIs(lexer.TokenIdentifier) {
		return nil, p.unexpected("identifier")
	}
	return decl.Add(p.leaf(ast.Id)), nil
}

func (p *Parser) parseBody() (*ast.Node, error) {
	body := ast.New(ast.Body, p.curToken)

	if _, err := p.expect(lexer.TokenCurlyBraceOpen); err != nil {
		return nil, err
	}

	for lexer.IsType(p.curToken.Kind) {
		variable := ast.New(ast.Variable, p.curToken)
		decl, err := p.parseIdDecl(ast.IdDecl)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenSemicolon); err != nil {
			return nil, err
		}
		body.Add(variable.Add(decl))
	}

	for !p.curTokenKindIs(lexer.TokenCurlyBraceClose) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body.Add(stmt)
	}

	// consume }
	p.nextToken()
	return body, nil
}

func (p *Parser) parseStatement() (*ast.Node, error) {
	switch p.curToken.Kind {
	case lexer.TokenCurlyBraceOpen:
		return p.parseCompoundStatement()
	case lexer.TokenIdentifier:
		return p.parseAssignmentStatement()
	case lexer.TokenIf:
		return p.parseIfStatement()
	case lexer.TokenReturn:
		return p.parseReturnStatement()
	}
	if lexer.IsType(p.curToken.Kind) {
		return nil, p.error(p.curToken, "variable declarations must come before statements")
	}
	return nil, p.unexpected("statement")
}

func (p *Parser) parseCompoundStatement() (*ast.Node, error) {
	stmt := ast.New(ast.CompoundStatement, p.curToken)

	// consume {
	p.nextToken()

	for !p.curTokenKindIs(lexer.TokenCurlyBraceClose) {
		inner, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt.Add(inner)
	}

	// consume }
	p.nextToken()
	return stmt, nil
}

func (p *Parser) parseAssignmentStatement() (*ast.Node, error) {
	stmt := ast.New(ast.AssignmentStatement, p.curToken)
	stmt.Add(p.leaf(ast.Id))

	if _, err := p.expect(lexer.TokenAssign); err != nil {
		return nil, err
	}

	rhs, err := p.parseNumExp()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.TokenSemicolon); err != nil {
		return nil, err
	}
	return stmt.Add(rhs), nil
}

func (p *Parser) parseIfStatement() (*ast.Node, error) {
	stmt := ast.New(ast.IfStatement, p.curToken)

	// consume if
	p.nextToken()

	if _, err := p.expect(lexer.TokenBraceOpen); err != nil {
		return nil, err
	}

	cond, err := p.parseRelExp()
	if err != nil {
		return nil, err
	}
	stmt.Add(cond)

	if _, err := p.expect(lexer.TokenBraceClose); err != nil {
		return nil, err
	}

	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt.Add(then)

	if p.curTokenKindIs(lexer.TokenElse) {
		p.nextToken()
		otherwise, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt.Add(otherwise)
	}
	return stmt, nil
}

func (p *Parser) parseRelExp() (*ast.Node, error) {
	rel := ast.New(ast.RelExp, p.curToken)

	left, err := p.parseNumExp()
	if err != nil {
		return nil, err
	}
	rel.Add(left)

	if _, ok := lexer.RelOperators[p.curToken.Kind]; !ok {
		return nil, p.unexpected("relational operator")
	}
	rel.Add(p.leaf(ast.Relop))

	right, err := p.parseNumExp()
	if err != nil {
		return nil, err
	}
	return rel.Add(right), nil
}

func (p *Parser) parseReturnStatement() (*ast.Node, error) {
	stmt := ast.New(ast.ReturnStatement, p.curToken)

	// consume return
	p.nextToken()

	if !p.curTokenKindIs(lexer.TokenSemicolon) {
		value, err := p.parseNumExp()
		if err != nil {
			return nil, err
		}
		stmt.Add(value)
	}

	if _, err := p.expect(lexer.TokenSemicolon); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseNumExp() (*ast.Node, error) {
	numExp := ast.New(ast.NumExp, p.curToken)

	first, err := p.parseExp()
	if err != nil {
		return nil, err
	}
	numExp.Add(first)

	for {
		if _, ok := lexer.ArOperators[p.curToken.Kind]; !ok {
			return numExp, nil
		}
		numExp.Add(p.leaf(ast.Arop))

		operand, err := p.parseExp()
		if err != nil {
			return nil, err
		}
		numExp.Add(operand)
	}
}

func (p *Parser) parseExp() (*ast.Node, error) {
	exp := ast.New(ast.Exp, p.curToken)

	switch p.curToken.Kind {
	case lexer.TokenIntNumber:
		literal := ast.New(ast.Literal, p.curToken)
		return exp.Add(literal.Add(p.leaf(ast.IntNumber))), nil
	case lexer.TokenUintNumber:
		literal := ast.New(ast.Literal, p.curToken)
		return exp.Add(literal.Add(p.leaf(ast.UintNumber))), nil
	case lexer.TokenIdentifier:
		if p.peekTokenKindIs(lexer.TokenBraceOpen) {
			call, err := p.parseFunctionCall()
			if err != nil {
				return nil, err
			}
			return exp.Add(call), nil
		}
		return exp.Add(p.leaf(ast.Id)), nil
	case lexer.TokenBraceOpen:
		// consume (
		p.nextToken()
		inner, err := p.parseNumExp()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenBraceClose); err != nil {
			return nil, err
		}
		return exp.Add(inner), nil
	}
	return nil, p.unexpected("expression")
}

func (p *Parser) parseFunctionCall() (*ast.Node, error) {
	call := ast.New(ast.FunctionCall, p.curToken)
	call.Add(p.leaf(ast.Id))

	// consume (
	p.nextToken()

	if !p.curTokenKindIs(lexer.TokenBraceClose) {
		arg, err := p.parseNumExp()
		if err != nil {
			return nil, err
		}
		call.Add(arg)
	}

	if _, err := p.expect(lexer.TokenBraceClose); err != nil {
		return nil, err
	}
	return call, nil
}
