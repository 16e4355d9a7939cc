package lexer

import (
	"fmt"
	"unicode"
)

func NewLexer(filePath string, content string) *Lexer {
	lexer := Lexer{
		Content:  []rune(content),
		FilePath: filePath,
		Row:      1,
		Col:      1,
		Cur:      0,
	}
	return &lexer
}

func (l *Lexer) readChar() {
	if l.Cur >= len(l.Content) {
		// reach end of file
		return
	}

	char := l.Content[l.Cur]

	switch char {
	case '\n':
		l.Row++
		l.Col = 1
	default:
		l.Col++
	}

	// increment to deal with the next char
	l.Cur++
}

// peekChar returns the rune offset positions ahead of the cursor, 0 past the end
func (l *Lexer) peekChar(offset int) rune {
	if l.Cur+offset >= len(l.Content) {
		return 0
	}
	return l.Content[l.Cur+offset]
}

type Token struct {
	LiteralToken
	Row int
	Col int
}

func (t Token) String() string {
	if t.Kind == TokenEOF {
		return fmt.Sprintf("%d:%d %s", t.Row, t.Col, t.Kind)
	}
	return fmt.Sprintf("%d:%d %s %q", t.Row, t.Col, t.Kind, t.Text)
}

func (l *Lexer) NextToken() Token {
	if tok, ok := l.skipSpaceAndComments(); !ok {
		return tok
	}

	token := Token{
		Row: l.Row,
		Col: l.Col,
	}

	if l.Cur >= len(l.Content) {
		token.LiteralToken = LiteralToken{
			Kind: TokenEOF,
			Text: "",
		}
		return token
	}

	char := l.Content[l.Cur]

	switch string(char) {
	case TokenCurlyBraceOpen, TokenCurlyBraceClose, TokenBraceOpen, TokenBraceClose,
		TokenSemicolon, TokenComma, TokenPlus, TokenMinus, TokenMultiply, TokenSlash:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: string(char),
			Text: string(char),
		}
	case TokenAssign:
		l.readChar()
		if l.peekChar(0) == '=' {
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenEquals,
				Text: "==",
			}
		} else {
			token.LiteralToken = LiteralToken{
				Kind: TokenAssign,
				Text: "=",
			}
		}
	case "!":
		l.readChar()
		if l.peekChar(0) == '=' {
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenNotEquals,
				Text: "!=",
			}
		} else {
			token.LiteralToken = LiteralToken{
				Kind: TokenError,
				Text: "!",
			}
		}
	case TokenGreater:
		l.readChar()
		if l.peekChar(0) == '=' {
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenGreaterOrEqual,
				Text: ">=",
			}
		} else {
			token.LiteralToken = LiteralToken{
				Kind: TokenGreater,
				Text: ">",
			}
		}
	case TokenLess:
		l.readChar()
		if l.peekChar(0) == '=' {
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenLessOrEqual,
				Text: "<=",
			}
		} else {
			token.LiteralToken = LiteralToken{
				Kind: TokenLess,
				Text: "<",
			}
		}
	default:
		if isLetter(char) {
			return l.readIdentifier()
		} else if isDigit(char) {
			return l.readNumber()
		} else {
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenError,
				Text: string(char),
			}
		}
	}
	return token
}

func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
	return tokens
}

func isLetter(char rune) bool {
	return unicode.IsLetter(char) || char == '_'
}

func isDigit(char rune) bool {
	return char >= '0' && char <= '9'
}

func (l *Lexer) readIdentifier() Token {
	startPos := l.Cur

	// save them to return
	row := l.Row
	col := l.Col

	for l.Cur < len(l.Content) {
		char := l.Content[l.Cur]
		if isLetter(char) || isDigit(char) {
			l.readChar()
		} else {
			break
		}
	}

	text := string(l.Content[startPos:l.Cur])

	if tokenKind, isKeyword := Keywords[text]; isKeyword {
		return Token{LiteralToken: LiteralToken{
			Kind: tokenKind,
			Text: text,
		}, Row: row, Col: col}
	}

	return Token{
		LiteralToken: LiteralToken{
			Kind: TokenIdentifier,
			Text: text,
		},
		Row: row,
		Col: col,
	}
}

func (l *Lexer) readNumber() Token {
	startPos := l.Cur
	row := l.Row
	col := l.Col

	for l.Cur < len(l.Content) && isDigit(l.Content[l.Cur]) {
		l.readChar()
	}

	kind := TokenIntNumber
	if suffix := l.peekChar(0); suffix == 'u' || suffix == 'U' {
		l.readChar()
		kind = TokenUintNumber
	}

	return Token{
		LiteralToken: LiteralToken{
			Kind: kind,
			Text: string(l.Content[startPos:l.Cur]),
		},
		Row: row,
		Col: col,
	}
}

// skipSpaceAndComments consumes whitespace, line and block comments.
// An unterminated block comment yields an error token and false.
func (l *Lexer) skipSpaceAndComments() (Token, bool) {
	for {
		l.skipWhiteSpace()

		switch {
		case l.peekChar(0) == '/' && l.peekChar(1) == '/':
			for l.Cur < len(l.Content) && l.Content[l.Cur] != '\n' {
				l.readChar()
			}
		case l.peekChar(0) == '/' && l.peekChar(1) == '*':
			tok := Token{
				LiteralToken: LiteralToken{Kind: TokenError, Text: "/*"},
				Row:          l.Row,
				Col:          l.Col,
			}
			l.readChar()
			l.readChar()
			for !(l.peekChar(0) == '*' && l.peekChar(1) == '/') {
				if l.Cur >= len(l.Content) {
					return tok, false
				}
				l.readChar()
			}
			l.readChar()
			l.readChar()
		default:
			return Token{}, true
		}
	}
}

func (l *Lexer) skipWhiteSpace() {
	for l.Cur < len(l.Content) && unicode.IsSpace(l.Content[l.Cur]) {
		l.readChar()
	}
}
