package classifiers

import (
	"strings"

	"github.com/vandior/vlex/scanners"
	"github.com/vandior/vlex/tokens"
)

// KeywordTable resolves ASCII identifiers to keyword kinds.
type KeywordTable map[string]tokens.Type

var DefaultKeywords = KeywordTable{
	"main":   tokens.KMain,
	"var":    tokens.KVar,
	"if":     tokens.KIf,
	"while":  tokens.KWhile,
	"else":   tokens.KElse,
	"for":    tokens.KFor,
	"break":  tokens.KBreak,
	"fun":    tokens.KFun,
	"return": tokens.KReturn,
}

func (k KeywordTable) Lookup(ident string) tokens.Type {
	if typ, ok := k[ident]; ok {
		return typ
	}
	return tokens.Identifier
}

var direct = [scanners.NumClasses]tokens.Type{
	scanners.SingleLineComment: tokens.Comment,
	scanners.MultiLineComment:  tokens.Comment,
	scanners.Plus:              tokens.Plus,
	scanners.Minus:             tokens.Minus,
	scanners.Star:              tokens.Star,
	scanners.Slash:             tokens.Divide,
	scanners.Less:              tokens.Less,
	scanners.Greater:           tokens.Greater,
	scanners.Not:               tokens.Not,
	scanners.Xor:               tokens.Xor,
	scanners.Percent:           tokens.Percent,
	scanners.Or:                tokens.Or,
	scanners.And:               tokens.And,
	scanners.Equal:             tokens.Equal,
	scanners.Colon:             tokens.Colon,
	scanners.Comma:             tokens.Comma,
	scanners.PlusPlus:          tokens.PlusPlus,
	scanners.MinusMinus:        tokens.MinusMinus,
	scanners.PlusEqual:         tokens.PlusEqual,
	scanners.MinusEqual:        tokens.MinusEqual,
	scanners.LessEqual:         tokens.LessEqual,
	scanners.GreaterEqual:      tokens.GreaterEqual,
	scanners.NotEqual:          tokens.NotEqual,
	scanners.XorEqual:          tokens.XorEqual,
	scanners.PercentEqual:      tokens.PercentEqual,
	scanners.OrOr:              tokens.OrOr,
	scanners.AndAnd:            tokens.AndAnd,
	scanners.OpenParen:         tokens.OpenParenthesis,
	scanners.CloseParen:        tokens.CloseParenthesis,
	scanners.OpenSquare:        tokens.OpenSqParenthesis,
	scanners.CloseSquare:       tokens.CloseSqParenthesis,
	scanners.OpenCurly:         tokens.OpenCurParenthesis,
	scanners.CloseCurly:        tokens.CloseCurParenthesis,
	scanners.Boolean:           tokens.Boolean,
	scanners.Dot:               tokens.Dot,
	scanners.TypeI8:            tokens.TypeI8,
	scanners.TypeI16:           tokens.TypeI16,
	scanners.TypeI32:           tokens.TypeI32,
	scanners.TypeI64:           tokens.TypeI64,
	scanners.TypeU8:            tokens.TypeU8,
	scanners.TypeU16:           tokens.TypeU16,
	scanners.TypeU32:           tokens.TypeU32,
	scanners.TypeU64:           tokens.TypeU64,
	scanners.TypeF32:           tokens.TypeF32,
	scanners.TypeF64:           tokens.TypeF64,
	scanners.TypeC32:           tokens.TypeC32,
	scanners.TypeC64:           tokens.TypeC64,
	scanners.TypeChar:          tokens.TypeChar,
	scanners.TypeString:        tokens.TypeString,
	scanners.TypeBool:          tokens.TypeBool,
}

// Classify maps a raw class and its matched text to a token kind and normalized lexeme.
func Classify(class scanners.Class, lexeme string, keywords KeywordTable) (tokens.Type, string) {
	switch class {

	case scanners.IdentifierASCII:
		return keywords.Lookup(lexeme), lexeme

	case scanners.IdentifierUnicode:
		// keywords are ASCII only
		return tokens.Identifier, lexeme

	case scanners.Binary, scanners.Hexadecimal, scanners.Octal:
		return tokens.Integer, lexeme

	case scanners.Number:
		// exponent-only literals like 1e10 stay Integer
		if strings.Contains(lexeme, ".") {
			return tokens.Double, lexeme
		}
		return tokens.Integer, lexeme

	case scanners.String:
		return tokens.String, trimQuotes(lexeme)

	case scanners.Char:
		return tokens.Char, trimQuotes(lexeme)

	case scanners.Whitespace:
		return tokens.Unknown, lexeme

	}

	if class < scanners.NumClasses {
		return direct[class], lexeme
	}
	return tokens.Unknown, lexeme
}

// trimQuotes drops exactly one character from each end. Escapes are kept as written.
func trimQuotes(s string) string {
	if len(s) < 2 {
		return ""
	}
	return s[1 : len(s)-1]
}
