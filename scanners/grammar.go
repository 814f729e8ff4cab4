package scanners

import (
	"fmt"
	"regexp"
	"sync"
	"unicode/utf8"
)

// Rule is one lexical class of the grammar.
// Among candidates at the same offset the longest match wins, then the higher Priority.
type Rule struct {
	Class    Class
	Pattern  string
	Priority int
	// Skip rules are matched but never yielded.
	Skip bool
}

const whitespacePattern = `[ \t\n\f\x{00A0}\x{1680}\x{2000}-\x{200A}\x{202F}\x{205F}\x{3000}]+`

// Rules is the Vandior grammar.
var Rules = []Rule{
	{Class: IdentifierASCII, Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`, Priority: 2},
	{Class: IdentifierUnicode, Pattern: `[\p{L}\p{M}_][\p{L}\p{M}\p{N}_]*`, Priority: 1},
	// digits are any Unicode decimal digit
	{Class: Number, Pattern: `(\p{Nd}*\.\p{Nd}+|\p{Nd}+\.|\p{Nd}+)([eE][+-]?\p{Nd}+)?[if]*`, Priority: 4},
	{Class: Binary, Pattern: `##[01]+`, Priority: 2},
	{Class: Hexadecimal, Pattern: `#[0-9a-fA-F]+`, Priority: 3},
	{Class: Octal, Pattern: `#o[0-7]+`, Priority: 2},
	{Class: Whitespace, Pattern: whitespacePattern, Skip: true},
	{Class: SingleLineComment, Pattern: `//[^\n]*`},
	{Class: MultiLineComment, Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
	{Class: Boolean, Pattern: `true|false`, Priority: 5},
	{Class: String, Pattern: `"([^"\\]|\\.)*"`},
	{Class: Char, Pattern: `'([^'\\]|\\.)'`},

	literal(Plus, "+"),
	literal(Minus, "-"),
	literal(Star, "*"),
	literal(Slash, "/"),
	literal(Less, "<"),
	literal(Greater, ">"),
	literal(Not, "!"),
	literal(Xor, "^"),
	literal(Percent, "%"),
	literal(Or, "|"),
	literal(And, "&"),
	literal(Equal, "="),
	literal(Colon, ":"),
	literal(Comma, ","),
	literal(PlusPlus, "++"),
	literal(MinusMinus, "--"),
	literal(PlusEqual, "+="),
	literal(MinusEqual, "-="),
	literal(LessEqual, "<="),
	literal(GreaterEqual, ">="),
	literal(NotEqual, "!="),
	literal(XorEqual, "^="),
	literal(PercentEqual, "%="),
	literal(OrOr, "||"),
	literal(AndAnd, "&&"),
	literal(OpenParen, "("),
	literal(CloseParen, ")"),
	literal(OpenSquare, "["),
	literal(CloseSquare, "]"),
	literal(OpenCurly, "{"),
	literal(CloseCurly, "}"),
	literal(Dot, "."),

	literal(TypeI8, "i8"),
	literal(TypeI16, "i16"),
	literal(TypeI32, "i32"),
	literal(TypeI64, "i64"),
	literal(TypeU8, "u8"),
	literal(TypeU16, "u16"),
	literal(TypeU32, "u32"),
	literal(TypeU64, "u64"),
	literal(TypeF32, "f32"),
	literal(TypeF64, "f64"),
	literal(TypeC32, "c32"),
	literal(TypeC64, "c64"),
	literal(TypeChar, "char"),
	literal(TypeString, "string"),
	literal(TypeBool, "bool"),
}

// literal rules rank by length: two points per rune.
func literal(class Class, text string) Rule {
	return Rule{
		Class:    class,
		Pattern:  regexp.QuoteMeta(text),
		Priority: 2 * utf8.RuneCountInString(text),
	}
}

type compiledRule struct {
	Rule
	re *regexp.Regexp
}

// Grammar is a compiled rule set. It is immutable and safe to share between scanners.
type Grammar struct {
	rules []compiledRule
}

func CompileGrammar(rules []Rule) (*Grammar, error) {
	ret := &Grammar{
		rules: make([]compiledRule, 0, len(rules)),
	}
	for _, rule := range rules {
		re, err := regexp.Compile(`^(?:` + rule.Pattern + `)`)
		if err != nil {
			return nil, fmt.Errorf("compile rule %v: %w", rule.Class, err)
		}
		re.Longest()
		ret.rules = append(ret.rules, compiledRule{
			Rule: rule,
			re:   re,
		})
	}
	return ret, nil
}

var DefaultGrammar = sync.OnceValue(func() *Grammar {
	g, err := CompileGrammar(Rules)
	if err != nil {
		panic(err)
	}
	return g
})

// match returns the winning rule at the start of input.
func (g *Grammar) match(input string) (rule *compiledRule, length int, ok bool) {
	for i := range g.rules {
		r := &g.rules[i]
		loc := r.re.FindStringIndex(input)
		if loc == nil || loc[1] == 0 {
			continue
		}
		if !ok ||
			loc[1] > length ||
			loc[1] == length && r.Priority > rule.Priority {
			rule = r
			length = loc[1]
			ok = true
		}
	}
	return
}
