package scanners

import (
	"errors"
	"io"
	"testing"
)

type classText struct {
	Class Class
	Text  string
}

func scanAll(t *testing.T, input string) (ret []classText) {
	t.Helper()
	for m, err := range NewScanner(input).All() {
		if err != nil {
			t.Fatalf("scan %q: %v", input, err)
		}
		if input[m.Start:m.End] != m.Text {
			t.Fatalf("bad span %v", m)
		}
		ret = append(ret, classText{m.Class, m.Text})
	}
	return
}

func TestScanner(t *testing.T) {
	tests := []struct {
		input string
		want  []classText
	}{
		{
			input: "var x = 1 + 2.5 // sum",
			want: []classText{
				{IdentifierASCII, "var"},
				{IdentifierASCII, "x"},
				{Equal, "="},
				{Number, "1"},
				{Plus, "+"},
				{Number, "2.5"},
				{SingleLineComment, "// sum"},
			},
		},
		{
			input: "  \n\t  ",
			want:  nil,
		},
		{
			// numbers take any decimal digit
			input: "٣ ١.٥ ３e２ x٣",
			want: []classText{
				{Number, "٣"},
				{Number, "١.٥"},
				{Number, "３e２"},
				{IdentifierUnicode, "x٣"},
			},
		},
		{
			// priority: literals and booleans beat identifiers of equal length
			input: "i8 i16 char string bool true false",
			want: []classText{
				{TypeI8, "i8"},
				{TypeI16, "i16"},
				{TypeChar, "char"},
				{TypeString, "string"},
				{TypeBool, "bool"},
				{Boolean, "true"},
				{Boolean, "false"},
			},
		},
		{
			// longest match beats priority
			input: "i8x truest strings",
			want: []classText{
				{IdentifierASCII, "i8x"},
				{IdentifierASCII, "truest"},
				{IdentifierASCII, "strings"},
			},
		},
		{
			input: "变量 café _x",
			want: []classText{
				{IdentifierUnicode, "变量"},
				{IdentifierUnicode, "café"},
				{IdentifierASCII, "_x"},
			},
		},
		{
			input: "##1010 #ff #o23 #b1",
			want: []classText{
				{Binary, "##1010"},
				{Hexadecimal, "#ff"},
				{Octal, "#o23"},
				{Hexadecimal, "#b1"},
			},
		},
		{
			input: "1e10 .5 3. 2.5e-3f 7i",
			want: []classText{
				{Number, "1e10"},
				{Number, ".5"},
				{Number, "3."},
				{Number, "2.5e-3f"},
				{Number, "7i"},
			},
		},
		{
			input: "++ += + -- -= - <= < >= > != ! ^= ^ %= % || | && & = : , .",
			want: []classText{
				{PlusPlus, "++"},
				{PlusEqual, "+="},
				{Plus, "+"},
				{MinusMinus, "--"},
				{MinusEqual, "-="},
				{Minus, "-"},
				{LessEqual, "<="},
				{Less, "<"},
				{GreaterEqual, ">="},
				{Greater, ">"},
				{NotEqual, "!="},
				{Not, "!"},
				{XorEqual, "^="},
				{Xor, "^"},
				{PercentEqual, "%="},
				{Percent, "%"},
				{OrOr, "||"},
				{Or, "|"},
				{AndAnd, "&&"},
				{And, "&"},
				{Equal, "="},
				{Colon, ":"},
				{Comma, ","},
				{Dot, "."},
			},
		},
		{
			input: "( ) [ ] { } * /",
			want: []classText{
				{OpenParen, "("},
				{CloseParen, ")"},
				{OpenSquare, "["},
				{CloseSquare, "]"},
				{OpenCurly, "{"},
				{CloseCurly, "}"},
				{Star, "*"},
				{Slash, "/"},
			},
		},
		{
			input: `"a \"b\" c" 'x' '\n' /* multi
line */ a`,
			want: []classText{
				{String, `"a \"b\" c"`},
				{Char, `'x'`},
				{Char, `'\n'`},
				{MultiLineComment, "/* multi\nline */"},
				{IdentifierASCII, "a"},
			},
		},
		{
			input: "a b　c d",
			want: []classText{
				{IdentifierASCII, "a"},
				{IdentifierASCII, "b"},
				{IdentifierASCII, "c"},
				{IdentifierASCII, "d"},
			},
		},
	}

	for _, test := range tests {
		got := scanAll(t, test.input)
		if len(got) != len(test.want) {
			t.Fatalf("%q: got %v, want %v", test.input, got, test.want)
		}
		for i := range got {
			if got[i] != test.want[i] {
				t.Fatalf("%q: token %d got %v, want %v", test.input, i, got[i], test.want[i])
			}
		}
	}
}

func TestScannerUnmatched(t *testing.T) {
	s := NewScanner("a ; b")
	m, err := s.Next()
	if err != nil || m.Text != "a" {
		t.Fatalf("got %v %v", m, err)
	}
	_, err = s.Next()
	var unmatched *UnmatchedError
	if !errors.As(err, &unmatched) {
		t.Fatalf("got %v", err)
	}
	if unmatched.Offset != 2 || unmatched.Rune != ';' {
		t.Fatalf("got %+v", unmatched)
	}
	// stuck until skipped
	if _, err := s.Next(); !errors.As(err, &unmatched) {
		t.Fatalf("got %v", err)
	}
	s.Skip(1)
	m, err = s.Next()
	if err != nil || m.Text != "b" || m.Start != 4 {
		t.Fatalf("got %v %v", m, err)
	}
	if _, err := s.Next(); err != io.EOF {
		t.Fatalf("got %v", err)
	}
}

func TestScannerCarriageReturnIsNotWhitespace(t *testing.T) {
	s := NewScanner("a\r\nb")
	if _, err := s.Next(); err != nil {
		t.Fatal(err)
	}
	_, err := s.Next()
	var unmatched *UnmatchedError
	if !errors.As(err, &unmatched) || unmatched.Rune != '\r' {
		t.Fatalf("got %v", err)
	}
}

func TestGrammarTieBreak(t *testing.T) {
	grammar, err := CompileGrammar([]Rule{
		{Class: IdentifierASCII, Pattern: `[a-z]+`, Priority: 1},
		{Class: TypeBool, Pattern: `bool`, Priority: 3},
		{Class: Whitespace, Pattern: ` +`, Skip: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	s := NewGrammarScanner(grammar, "bool boolean")
	var got []classText
	for m, err := range s.All() {
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, classText{m.Class, m.Text})
	}
	if len(got) != 2 ||
		got[0] != (classText{TypeBool, "bool"}) ||
		got[1] != (classText{IdentifierASCII, "boolean"}) {
		t.Fatalf("got %v", got)
	}

	if _, err := CompileGrammar([]Rule{{Pattern: `(`}}); err == nil {
		t.Fatal("should error")
	}
}

func TestClassNames(t *testing.T) {
	for c := Class(0); c < NumClasses; c++ {
		if c.String() == "" {
			t.Fatalf("missing name for %d", c)
		}
	}
	if NumClasses.String() != "Class(?)" {
		t.Fatal()
	}
	if len(Rules) != int(NumClasses) {
		t.Fatalf("got %d rules for %d classes", len(Rules), NumClasses)
	}
}
