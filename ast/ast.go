package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BojanStipic/micko-peg/lexer"
)

// Rule tags a node with the grammar rule that produced it.
type Rule = string

const (
	Program             Rule = "program"
	Function            Rule = "function"
	IdDecl              Rule = "id_decl"
	Type                Rule = "type"
	Parameter           Rule = "parameter"
	Body                Rule = "body"
	Variable            Rule = "variable"
	CompoundStatement   Rule = "compound_statement"
	AssignmentStatement Rule = "assignment_statement"
	IfStatement         Rule = "if_statement"
	RelExp              Rule = "rel_exp"
	Relop               Rule = "relop"
	ReturnStatement     Rule = "return_statement"
	NumExp              Rule = "num_exp"
	Exp                 Rule = "exp"
	Arop                Rule = "arop"
	FunctionCall        Rule = "function_call"
	Literal             Rule = "literal"
	IntNumber           Rule = "int_number"
	UintNumber          Rule = "uint_number"
	Id                  Rule = "id"
)

// Node is one node of the concrete syntax tree. Leaves (type, id, arop,
// relop, int_number, uint_number) carry their source token; inner nodes
// carry the token they start at.
type Node struct {
	Rule     Rule
	Token    lexer.Token
	Children []*Node
}

func New(rule Rule, tok lexer.Token, children ...*Node) *Node {
	return &Node{
		Rule:     rule,
		Token:    tok,
		Children: children,
	}
}

func (n *Node) TokenLiteral() string { return n.Token.Text }
func (n *Node) GetToken() lexer.Token { return n.Token }

// Child returns the idx-th child, nil when out of range.
func (n *Node) Child(idx int) *Node {
	if idx < 0 || idx >= len(n.Children) {
		return nil
	}
	return n.Children[idx]
}

// Add appends children and returns the node.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

func isTerminal(rule Rule) bool {
	switch rule {
	case Type, Id, Arop, Relop, IntNumber, UintNumber:
		return true
	}
	return false
}

// String renders the tree one rule per line, leaves with their text.
func (n *Node) String() string {
	var out bytes.Buffer
	n.write(&out, 0)
	return out.String()
}

func (n *Node) write(out *bytes.Buffer, depth int) {
	out.WriteString(strings.Repeat("  ", depth))
	out.WriteString(n.Rule)
	if isTerminal(n.Rule) {
		out.WriteString(fmt.Sprintf(" %q", n.Token.Text))
	}
	out.WriteString("\n")
	for _, child := range n.Children {
		child.write(out, depth+1)
	}
}
