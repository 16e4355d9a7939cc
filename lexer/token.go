package lexer

type TokenKind = string

const (

	// Keywords
	TokenIf       TokenKind = "if"
	TokenElse     TokenKind = "else"
	TokenReturn   TokenKind = "return"
	TokenInt      TokenKind = "int"
	TokenUnsigned TokenKind = "unsigned"

	// Units
	TokenCurlyBraceOpen  TokenKind = "{"
	TokenCurlyBraceClose TokenKind = "}"
	TokenBraceOpen       TokenKind = "("
	TokenBraceClose      TokenKind = ")"
	TokenSemicolon       TokenKind = ";"
	TokenComma           TokenKind = ","

	// Arithmetic Operators
	TokenPlus     TokenKind = "+"
	TokenMinus    TokenKind = "-"
	TokenMultiply TokenKind = "*"
	TokenSlash    TokenKind = "/"

	// Relational Operators
	TokenEquals         TokenKind = "=="
	TokenNotEquals      TokenKind = "!="
	TokenGreater        TokenKind = ">"
	TokenLess           TokenKind = "<"
	TokenGreaterOrEqual TokenKind = ">="
	TokenLessOrEqual    TokenKind = "<="

	// Bind Operators
	TokenAssign TokenKind = "="

	// Var Naming
	TokenIdentifier TokenKind = "identifier"

	// number literals, uint ones carry the u/U suffix
	TokenIntNumber  TokenKind = "int_number"
	TokenUintNumber TokenKind = "uint_number"

	// Error
	TokenError TokenKind = "error"

	// EOF
	TokenEOF TokenKind = "end of file"
)

type LiteralToken struct {
	Text string
	Kind TokenKind
}

type Lexer struct {
	Content []rune
	// help mainly in error detection when having multi file execution
	FilePath string
	Row      int
	Col      int
	Cur      int
}
