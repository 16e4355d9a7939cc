package internals

import (
	"fmt"

	"github.com/BojanStipic/micko-peg/lexer"
)

type ErrorKind = string

const (
	SyntaxError   ErrorKind = "Syntax error"
	SemanticError ErrorKind = "Semantic error"
)

// Error is the single error a compilation reports.
type Error struct {
	Kind     ErrorKind
	FilePath string
	Token    lexer.Token // Row 0 when the error has no source position
	Msg      string
	Cause    error
}

func NewSyntaxError(filePath string, tok lexer.Token, msg ...any) *Error {
	return &Error{
		Kind:     SyntaxError,
		FilePath: filePath,
		Token:    tok,
		Msg:      fmt.Sprint(msg...),
	}
}

func NewSemanticError(filePath string, tok lexer.Token, cause error, msg string) *Error {
	return &Error{
		Kind:     SemanticError,
		FilePath: filePath,
		Token:    tok,
		Msg:      msg,
		Cause:    cause,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s%s: %s", e.Position(), e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Cause }

// Position renders the "file:row:col: " prefix, empty when unknown.
func (e *Error) Position() string {
	if e.Token.Row == 0 {
		if e.FilePath == "" {
			return ""
		}
		return e.FilePath + ": "
	}
	return fmt.Sprintf("%s:%d:%d: ", e.FilePath, e.Token.Row, e.Token.Col)
}
