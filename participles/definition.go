package participles

import (
	"io"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/vandior/vlex/lexers"
	"github.com/vandior/vlex/tokens"
)

// Definition lexes with the Vandior grammar for participle parsers.
// Symbol names are the long token type names, for example "Identifier" or "KVar".
type Definition struct {
	Options lexers.Options
}

var _ lexer.Definition = new(Definition)

var _ lexer.StringDefinition = new(Definition)

// TokenType maps a token type to its participle symbol.
// Participle reserves -1 for end of input, so types count down from -2.
func TokenType(typ tokens.Type) lexer.TokenType {
	if typ == tokens.Eoft {
		return lexer.EOF
	}
	return lexer.TokenType(-(int(typ) + 2))
}

func (d *Definition) Symbols() map[string]lexer.TokenType {
	ret := map[string]lexer.TokenType{
		"EOF": lexer.EOF,
	}
	for _, typ := range tokens.Types() {
		if typ == tokens.Eoft {
			continue
		}
		ret[typ.String()] = TokenType(typ)
	}
	return ret
}

func (d *Definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexString(filename, string(content))
}

func (d *Definition) LexString(filename string, input string) (lexer.Lexer, error) {
	input, _ = lexers.DecodeText(input)
	toks, err := lexers.NewTokenizer(filename, input, d.Options).Tokenize()
	if err != nil {
		return nil, err
	}
	return &Lexer{
		tokens: toks,
	}, nil
}

// Lexer replays a completed scan. Columns are 1-based as participle expects.
type Lexer struct {
	tokens []tokens.Token
	next   int
}

var _ lexer.Lexer = new(Lexer)

func (l *Lexer) Next() (lexer.Token, error) {
	if l.next >= len(l.tokens) {
		// the scan always ends with Eoft
		last := l.tokens[len(l.tokens)-1]
		return convert(last), nil
	}
	token := l.tokens[l.next]
	l.next++
	return convert(token), nil
}

func convert(token tokens.Token) lexer.Token {
	return lexer.Token{
		Type:  TokenType(token.Type),
		Value: token.Lexeme,
		Pos: lexer.Position{
			Filename: token.Location.FileName,
			Line:     token.Location.Line,
			Column:   token.Location.Column + 1,
		},
	}
}
