package tokens

// Type is the parser-facing token kind.
// Values cross the C boundary as integers, so the order is fixed.
type Type int32

const (
	Integer Type = iota
	Double
	Boolean
	Plus
	Minus
	Not
	Star
	Divide
	Xor
	Percent
	Or
	And
	Equal
	Less
	Greater
	PlusPlus
	MinusMinus
	PlusEqual
	MinusEqual
	NotEqual
	StarEqual
	DivideEqual
	XorEqual
	PercentEqual
	OrOr
	AndAnd
	EqualEqual
	LessEqual
	GreaterEqual
	Dot
	Identifier
	Char
	String
	KMain
	KVar
	KIf
	KWhile
	KElse
	KFor
	KBreak
	KFun
	KReturn
	KNullptr
	OpenParenthesis
	OpenSqParenthesis
	OpenCurParenthesis
	CloseParenthesis
	CloseSqParenthesis
	CloseCurParenthesis
	Comma
	Colon
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
	Comment
	Unknown
	Eoft

	numTypes
)

var typeNames = [numTypes]string{
	Integer:             "Integer",
	Double:              "Double",
	Boolean:             "Boolean",
	Plus:                "Plus",
	Minus:               "Minus",
	Not:                 "Not",
	Star:                "Star",
	Divide:              "Divide",
	Xor:                 "Xor",
	Percent:             "Percent",
	Or:                  "Or",
	And:                 "And",
	Equal:               "Equal",
	Less:                "Less",
	Greater:             "Greater",
	PlusPlus:            "PlusPlus",
	MinusMinus:          "MinusMinus",
	PlusEqual:           "PlusEqual",
	MinusEqual:          "MinusEqual",
	NotEqual:            "NotEqual",
	StarEqual:           "StarEqual",
	DivideEqual:         "DivideEqual",
	XorEqual:            "XorEqual",
	PercentEqual:        "PercentEqual",
	OrOr:                "OrOr",
	AndAnd:              "AndAnd",
	EqualEqual:          "EqualEqual",
	LessEqual:           "LessEqual",
	GreaterEqual:        "GreaterEqual",
	Dot:                 "Dot",
	Identifier:          "Identifier",
	Char:                "Char",
	String:              "String",
	KMain:               "KMain",
	KVar:                "KVar",
	KIf:                 "KIf",
	KWhile:              "KWhile",
	KElse:               "KElse",
	KFor:                "KFor",
	KBreak:              "KBreak",
	KFun:                "KFun",
	KReturn:             "KReturn",
	KNullptr:            "KNullptr",
	OpenParenthesis:     "OpenParenthesis",
	OpenSqParenthesis:   "OpenSqParenthesis",
	OpenCurParenthesis:  "OpenCurParenthesis",
	CloseParenthesis:    "CloseParenthesis",
	CloseSqParenthesis:  "CloseSqParenthesis",
	CloseCurParenthesis: "CloseCurParenthesis",
	Comma:               "Comma",
	Colon:               "Colon",
	TypeI8:              "TypeI8",
	TypeI16:             "TypeI16",
	TypeI32:             "TypeI32",
	TypeI64:             "TypeI64",
	TypeU8:              "TypeU8",
	TypeU16:             "TypeU16",
	TypeU32:             "TypeU32",
	TypeU64:             "TypeU64",
	TypeF32:             "TypeF32",
	TypeF64:             "TypeF64",
	TypeC32:             "TypeC32",
	TypeC64:             "TypeC64",
	TypeChar:            "TypeChar",
	TypeString:          "TypeString",
	TypeBool:            "TypeBool",
	Comment:             "Comment",
	Unknown:             "Unknown",
	Eoft:                "Eoft",
}

var compactNames = [numTypes]string{
	Integer:             "INT",
	Double:              "DBL",
	Boolean:             "BOOL",
	Plus:                "PLUS_OP",
	Minus:               "MINUS_OP",
	Not:                 "NOT_OP",
	Star:                "STAR_OP",
	Divide:              "DIVIDE_OP",
	Xor:                 "XOR_OP",
	Percent:             "PERCENT_OP",
	Or:                  "OR_OP",
	And:                 "AND_OP",
	Equal:               "EQUAL_OP",
	Less:                "LESS_OP",
	Greater:             "GREATER_OP",
	PlusPlus:            "PLUSPLUS_OP",
	MinusMinus:          "MINUSMINUS_OP",
	PlusEqual:           "PLUSEQUAL_OP",
	MinusEqual:          "MINUSEQUAL_OP",
	NotEqual:            "NOTEQUAL_OP",
	StarEqual:           "STAREQUAL_OP",
	DivideEqual:         "DIVIDEEQUAL_OP",
	XorEqual:            "XOREQUAL_OP",
	PercentEqual:        "PERCENTEQUAL_OP",
	OrOr:                "OROR_OP",
	AndAnd:              "ANDAND_OP",
	EqualEqual:          "EQUALEQUAL_OP",
	LessEqual:           "LESSEQUAL_OP",
	GreaterEqual:        "GREATEREQUAL_OP",
	Dot:                 "DOT_OP",
	Identifier:          "IDENT",
	Char:                "CH",
	String:              "STR",
	KMain:               "K_MAIN",
	KVar:                "K_VAR",
	KIf:                 "K_IF",
	KWhile:              "K_WHILE",
	KElse:               "K_ELSE",
	KFor:                "K_FOR",
	KBreak:              "BREAK",
	KFun:                "K_FUN",
	KReturn:             "K_RETURN",
	KNullptr:            "K_NULLPTR",
	OpenParenthesis:     "OPEN_PAR",
	OpenSqParenthesis:   "OPEN_SQ_PAR",
	OpenCurParenthesis:  "OPEN_CUR_PAR",
	CloseParenthesis:    "CLOSE_PAR",
	CloseSqParenthesis:  "CLOSE_SQ_PAR",
	CloseCurParenthesis: "CLOSE_CUR_PAR",
	Comma:               "COMMA",
	Colon:               "COLON",
	TypeI8:              "I8",
	TypeI16:             "I16",
	TypeI32:             "I32",
	TypeI64:             "I64",
	TypeU8:              "U8",
	TypeU16:             "U16",
	TypeU32:             "U32",
	TypeU64:             "U64",
	TypeF32:             "F32",
	TypeF64:             "F64",
	TypeC32:             "C32",
	TypeC64:             "C64",
	TypeChar:            "CHAR",
	TypeString:          "STRING",
	TypeBool:            "BOOL",
	Comment:             "COMMENT",
	Unknown:             "UNKNOWN",
	Eoft:                "EOF",
}

// Types returns every kind in discriminant order.
func Types() []Type {
	ret := make([]Type, 0, numTypes)
	for t := Type(0); t < numTypes; t++ {
		ret = append(ret, t)
	}
	return ret
}

func (t Type) Valid() bool {
	return t >= 0 && t < numTypes
}

func (t Type) String() string {
	if !t.Valid() {
		return "Type(?)"
	}
	return typeNames[t]
}

// Compact returns the short upper case name used in token dumps.
func (t Type) Compact() string {
	if !t.Valid() {
		return "UNKNOWN"
	}
	return compactNames[t]
}

func (t Type) IsKeyword() bool {
	switch t {
	case KMain, KVar, KIf, KWhile, KElse, KFor, KBreak, KFun, KReturn:
		return true
	}
	return false
}
