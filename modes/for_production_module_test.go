package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		scopeT *testing.T,
		mode Mode,
	) {
		if scopeT != nil {
			t.Fatalf("got %v", scopeT)
		}
		if mode != ModeProduction || mode.String() != "production" {
			t.Fatalf("got %v", mode)
		}
	})
}
