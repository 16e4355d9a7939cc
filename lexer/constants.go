package lexer

import "slices"

type Operator = string

var (
	Keywords = map[string]TokenKind{
		"if":       TokenIf,
		"else":     TokenElse,
		"return":   TokenReturn,
		"int":      TokenInt,
		"unsigned": TokenUnsigned,
	}

	TypeKeywords = []TokenKind{
		TokenInt,
		TokenUnsigned,
	}

	ArOperators = map[TokenKind]Operator{
		TokenPlus:     "+",
		TokenMinus:    "-",
		TokenMultiply: "*",
		TokenSlash:    "/",
	}

	RelOperators = map[TokenKind]Operator{
		TokenEquals:         "==",
		TokenNotEquals:      "!=",
		TokenGreater:        ">",
		TokenLess:           "<",
		TokenGreaterOrEqual: ">=",
		TokenLessOrEqual:    "<=",
	}
)

// IsType reports whether kind names one of the primitive types.
func IsType(kind TokenKind) bool {
	return slices.Contains(TypeKeywords, kind)
}
