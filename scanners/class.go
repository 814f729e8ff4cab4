package scanners

// Class is the raw lexical class produced by the grammar, before classification.
type Class uint8

const (
	IdentifierASCII Class = iota
	IdentifierUnicode
	Number
	Binary
	Hexadecimal
	Octal
	Whitespace
	SingleLineComment
	MultiLineComment
	Plus
	Minus
	Star
	Slash
	Less
	Greater
	Not
	Xor
	Percent
	Or
	And
	Equal
	Colon
	Comma
	PlusPlus
	MinusMinus
	PlusEqual
	MinusEqual
	LessEqual
	GreaterEqual
	NotEqual
	XorEqual
	PercentEqual
	OrOr
	AndAnd
	OpenParen
	CloseParen
	OpenSquare
	CloseSquare
	OpenCurly
	CloseCurly
	Boolean
	String
	Char
	Dot
	TypeI8
	TypeI16
	TypeI32
	TypeI64
	TypeU8
	TypeU16
	TypeU32
	TypeU64
	TypeF32
	TypeF64
	TypeC32
	TypeC64
	TypeChar
	TypeString
	TypeBool

	NumClasses
)

var classNames = [NumClasses]string{
	IdentifierASCII:   "IdentifierASCII",
	IdentifierUnicode: "IdentifierUnicode",
	Number:            "Number",
	Binary:            "Binary",
	Hexadecimal:       "Hexadecimal",
	Octal:             "Octal",
	Whitespace:        "Whitespace",
	SingleLineComment: "SingleLineComment",
	MultiLineComment:  "MultiLineComment",
	Plus:              "Plus",
	Minus:             "Minus",
	Star:              "Star",
	Slash:             "Slash",
	Less:              "Less",
	Greater:           "Greater",
	Not:               "Not",
	Xor:               "Xor",
	Percent:           "Percent",
	Or:                "Or",
	And:               "And",
	Equal:             "Equal",
	Colon:             "Colon",
	Comma:             "Comma",
	PlusPlus:          "PlusPlus",
	MinusMinus:        "MinusMinus",
	PlusEqual:         "PlusEqual",
	MinusEqual:        "MinusEqual",
	LessEqual:         "LessEqual",
	GreaterEqual:      "GreaterEqual",
	NotEqual:          "NotEqual",
	XorEqual:          "XorEqual",
	PercentEqual:      "PercentEqual",
	OrOr:              "OrOr",
	AndAnd:            "AndAnd",
	OpenParen:         "OpenParen",
	CloseParen:        "CloseParen",
	OpenSquare:        "OpenSquare",
	CloseSquare:       "CloseSquare",
	OpenCurly:         "OpenCurly",
	CloseCurly:        "CloseCurly",
	Boolean:           "Boolean",
	String:            "String",
	Char:              "Char",
	Dot:               "Dot",
	TypeI8:            "TypeI8",
	TypeI16:           "TypeI16",
	TypeI32:           "TypeI32",
	TypeI64:           "TypeI64",
	TypeU8:            "TypeU8",
	TypeU16:           "TypeU16",
	TypeU32:           "TypeU32",
	TypeU64:           "TypeU64",
	TypeF32:           "TypeF32",
	TypeF64:           "TypeF64",
	TypeC32:           "TypeC32",
	TypeC64:           "TypeC64",
	TypeChar:          "TypeChar",
	TypeString:        "TypeString",
	TypeBool:          "TypeBool",
}

func (c Class) String() string {
	if c >= NumClasses {
		return "Class(?)"
	}
	return classNames[c]
}
