package scanners

import (
	"fmt"
	"io"
	"iter"
	"unicode/utf8"
)

// Match is one yielded lexical class and its byte span in the input.
type Match struct {
	Class Class
	Start int
	End   int
	Text  string
}

// UnmatchedError reports an offset where no rule matches.
type UnmatchedError struct {
	Offset int
	Rune   rune
}

func (u *UnmatchedError) Error() string {
	return fmt.Sprintf("no lexical rule matches %q at offset %d", u.Rune, u.Offset)
}

// Scanner yields raw classes one at a time. Skip rules are consumed silently.
type Scanner struct {
	grammar *Grammar
	input   string
	pos     int
}

func NewScanner(input string) *Scanner {
	return NewGrammarScanner(DefaultGrammar(), input)
}

func NewGrammarScanner(grammar *Grammar, input string) *Scanner {
	return &Scanner{
		grammar: grammar,
		input:   input,
	}
}

// Offset is the byte offset of the next unscanned input.
func (s *Scanner) Offset() int {
	return s.pos
}

// Next returns the next match, io.EOF at end of input, or *UnmatchedError.
// After an UnmatchedError the scanner stays at the offending offset until Skip is called.
func (s *Scanner) Next() (Match, error) {
	for {
		if s.pos >= len(s.input) {
			return Match{}, io.EOF
		}
		rule, length, ok := s.grammar.match(s.input[s.pos:])
		if !ok {
			r, _ := utf8.DecodeRuneInString(s.input[s.pos:])
			return Match{}, &UnmatchedError{
				Offset: s.pos,
				Rune:   r,
			}
		}
		start := s.pos
		s.pos += length
		if rule.Skip {
			continue
		}
		return Match{
			Class: rule.Class,
			Start: start,
			End:   s.pos,
			Text:  s.input[start:s.pos],
		}, nil
	}
}

// Skip advances past n bytes without matching.
func (s *Scanner) Skip(n int) {
	s.pos = min(s.pos+n, len(s.input))
}

// All iterates matches until end of input or the first error.
func (s *Scanner) All() iter.Seq2[Match, error] {
	return func(yield func(Match, error) bool) {
		for {
			m, err := s.Next()
			if err == io.EOF {
				return
			}
			if !yield(m, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}
