package lexers

import (
	"unicode/utf8"

	"github.com/vandior/vlex/tokens"
)

// Placeholder replaces input text that is not valid UTF-8.
const Placeholder = "Unknown"

// DecodeText returns s, or Placeholder if s is not valid UTF-8.
func DecodeText(s string) (ret string, ok bool) {
	if !utf8.ValidString(s) {
		return Placeholder, false
	}
	return s, true
}

// TokenizeText scans input completely and returns a buffer sized to the token count.
func TokenizeText(fileName string, input string, options Options) (*tokens.Buffer, error) {
	toks, err := NewTokenizer(fileName, input, options).Tokenize()
	if err != nil {
		return nil, err
	}
	buf := tokens.NewBuffer(len(toks))
	for _, tok := range toks {
		buf.Push(tok)
	}
	return buf, nil
}
