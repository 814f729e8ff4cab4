//go:build cgo

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vandior/vlex/lexers"
	"github.com/vandior/vlex/tokens"
)

func TestTokenizeRoundTrip(t *testing.T) {
	buffer := tokenizeString("main.vnd", "var x = 1 + 2.5 // sum")
	defer release_tokens(buffer)

	got, capacity := importBuffer(buffer)
	want := []string{
		"(typ: K_VAR, val: 'var', sl: (fn: main.vnd, ln: 1, cln: 0))",
		"(typ: IDENT, val: 'x', sl: (fn: main.vnd, ln: 1, cln: 4))",
		"(typ: EQUAL_OP, val: '=', sl: (fn: main.vnd, ln: 1, cln: 6))",
		"(typ: INT, val: '1', sl: (fn: main.vnd, ln: 1, cln: 8))",
		"(typ: PLUS_OP, val: '+', sl: (fn: main.vnd, ln: 1, cln: 10))",
		"(typ: DBL, val: '2.5', sl: (fn: main.vnd, ln: 1, cln: 12))",
		"(typ: COMMENT, val: '// sum', sl: (fn: main.vnd, ln: 1, cln: 16))",
		"(typ: EOF, sl: (fn: main.vnd, ln: 1, cln: 17))",
	}
	if len(got) != len(want) || capacity != len(want) {
		t.Fatalf("got %d tokens, capacity %d", len(got), capacity)
	}
	for i, token := range got {
		if token.Compact() != want[i] {
			t.Fatalf("got %s", token.Compact())
		}
	}
	if got[len(got)-1].Type != 68 {
		t.Fatalf("got %d", got[len(got)-1].Type)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	buffer := tokenizeString("empty.vnd", " \n\t")
	defer release_tokens(buffer)

	got, capacity := importBuffer(buffer)
	if len(got) != 1 || capacity != 1 {
		t.Fatalf("got %v", got)
	}
	if got[0] != (tokens.Token{
		Type:     tokens.Eoft,
		Location: tokens.Location{FileName: "empty.vnd"},
	}) {
		t.Fatalf("got %v", got[0])
	}
}

func TestTokenizePlaceholder(t *testing.T) {
	buffer := tokenizeString("bad\xff.vnd", "x")
	defer release_tokens(buffer)

	got, _ := importBuffer(buffer)
	for _, token := range got {
		if token.Location.FileName != lexers.Placeholder {
			t.Fatalf("got %v", token)
		}
	}
}

func TestReleaseEmptyBuffer(t *testing.T) {
	buffer := exportBuffer(tokens.NewBuffer(0))
	got, capacity := importBuffer(buffer)
	if len(got) != 0 || capacity != 0 {
		t.Fatalf("got %v", got)
	}
	release_tokens(buffer)
}

func TestTokenizeIgnoresConfigFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "vlex.cue"), []byte(`unmatched_policy: "retry"`), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	buffer := tokenizeString("ok.vnd", "var x = 1")
	defer release_tokens(buffer)
	got, _ := importBuffer(buffer)
	if len(got) != 5 {
		t.Fatalf("got %v", got)
	}
}
