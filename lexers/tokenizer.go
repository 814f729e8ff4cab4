package lexers

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/vandior/vlex/classifiers"
	"github.com/vandior/vlex/lexconfigs"
	"github.com/vandior/vlex/locations"
	"github.com/vandior/vlex/scanners"
	"github.com/vandior/vlex/tokens"
)

type Options struct {
	Grammar   *scanners.Grammar          // if nil, scanners.DefaultGrammar()
	Keywords  classifiers.KeywordTable   // if nil, classifiers.DefaultKeywords
	Unmatched lexconfigs.UnmatchedPolicy // if empty, abort
	OnUnknown func(tokens.Token)         // called for each Unknown token emitted under the unknown policy
}

// Tokenizer performs one complete scan of one input. It is not safe for concurrent use.
type Tokenizer struct {
	fileName string
	input    string
	options  Options
}

func NewTokenizer(fileName string, input string, options Options) *Tokenizer {
	if options.Grammar == nil {
		options.Grammar = scanners.DefaultGrammar()
	}
	if options.Keywords == nil {
		options.Keywords = classifiers.DefaultKeywords
	}
	if options.Unmatched == "" {
		options.Unmatched = lexconfigs.UnmatchedAbort
	}
	return &Tokenizer{
		fileName: fileName,
		input:    input,
		options:  options,
	}
}

// Tokenize returns every token in source order, terminated by one Eoft token.
// The Eoft token sits one column after the start of the last token, or at (0, 0) when there is none.
func (t *Tokenizer) Tokenize() ([]tokens.Token, error) {
	scanner := scanners.NewGrammarScanner(t.options.Grammar, t.input)
	tracker := locations.NewTracker(t.input)

	var ret []tokens.Token
	line, column := 0, 0

	for {
		match, err := scanner.Next()
		if err == io.EOF {
			break
		}

		if err != nil {
			var unmatched *scanners.UnmatchedError
			if !errors.As(err, &unmatched) ||
				t.options.Unmatched != lexconfigs.UnmatchedUnknown {
				l, c := tracker.Locate(scanner.Offset())
				return nil, &PosError{
					Err:      err,
					Location: t.location(l, c),
					Source:   t.input,
				}
			}

			_, size := utf8.DecodeRuneInString(t.input[unmatched.Offset:])
			l, c := tracker.Locate(unmatched.Offset)
			token := tokens.Token{
				Type:     tokens.Unknown,
				Lexeme:   t.input[unmatched.Offset : unmatched.Offset+size],
				Location: t.location(l, c),
			}
			ret = append(ret, token)
			if t.options.OnUnknown != nil {
				t.options.OnUnknown(token)
			}
			line, column = l, c+1
			scanner.Skip(size)
			continue
		}

		typ, lexeme := classifiers.Classify(match.Class, match.Text, t.options.Keywords)
		l, c := tracker.Locate(match.Start)
		ret = append(ret, tokens.Token{
			Type:     typ,
			Lexeme:   lexeme,
			Location: t.location(l, c),
		})
		line, column = l, c+1
	}

	ret = append(ret, tokens.Token{
		Type:     tokens.Eoft,
		Location: t.location(line, column),
	})

	return ret, nil
}

func (t *Tokenizer) location(line, column int) tokens.Location {
	return tokens.Location{
		FileName: t.fileName,
		Line:     line,
		Column:   column,
	}
}
