package tokens

import (
	"fmt"
	"slices"
)

type Token struct {
	Type     Type
	Lexeme   string
	Location Location
}

func (t Token) Is(typ Type) bool {
	return t.Type == typ
}

func (t Token) IsAnyOf(types ...Type) bool {
	return slices.Contains(types, t.Type)
}

func (t Token) String() string {
	if t.Lexeme == "" {
		return fmt.Sprintf("Token(type: %s, sourceLocation: %s)", t.Type, t.Location)
	}
	return fmt.Sprintf("Token(type: %s, value: '%s', sourceLocation: %s)", t.Type, t.Lexeme, t.Location)
}

func (t Token) Compact() string {
	if t.Lexeme == "" {
		return fmt.Sprintf("(typ: %s, sl: %s)", t.Type.Compact(), t.Location.Compact())
	}
	return fmt.Sprintf("(typ: %s, val: '%s', sl: %s)", t.Type.Compact(), t.Lexeme, t.Location.Compact())
}
