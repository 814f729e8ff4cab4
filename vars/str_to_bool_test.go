package vars

import "testing"

func TestStrToBool(t *testing.T) {
	for str, want := range map[string]bool{
		"true":  true,
		"Yes":   true,
		" y ":   true,
		"1":     true,
		"on":    true,
		"false": false,
		"no":    false,
		"0":     false,
		"":      false,
		"maybe": false,
	} {
		if got := StrToBool(str); got != want {
			t.Fatalf("%q: got %v", str, got)
		}
	}
}
