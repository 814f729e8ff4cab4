package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if got := FirstNonZero(0, 2, 3); got != 2 {
		t.Fatalf("got %v", got)
	}
	if got := FirstNonZero("", ""); got != "" {
		t.Fatalf("got %v", got)
	}
	if got := FirstNonZero[int](); got != 0 {
		t.Fatalf("got %v", got)
	}
}
