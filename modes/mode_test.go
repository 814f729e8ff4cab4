package modes

import "testing"

func TestUnknownMode(t *testing.T) {
	if s := Mode(0).String(); s != "unknown" {
		t.Fatalf("got %s", s)
	}
}
