package cmds

import (
	"fmt"
	"testing"
)

func TestVar(t *testing.T) {
	a := Var[int]("TestVarA", "an int")
	b := Var[string]("TestVarB")
	GlobalExecutor.MustExecute([]string{
		"TestVarA", "42",
		"TestVarB", "bar",
	})
	if *a != 42 {
		t.Fatalf("got %v", *a)
	}
	if *b != "bar" {
		t.Fatalf("got %v", *b)
	}
	GlobalExecutor.MustExecute([]string{
		"TestVarA.",
	})
	if *a != 0 {
		t.Fatalf("got %v", *a)
	}
	if desc := GlobalExecutor.commands["TestVarA"].Description; desc != "an int" {
		t.Fatalf("got %q", desc)
	}
	if !GlobalExecutor.commands["TestVarA."].Hidden {
		t.Fatal("reset should be hidden")
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if !*foo {
		t.Fatal("should be on")
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *foo {
		t.Fatal("should be off")
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "a.vnd",
		"TestCollect", "b.vnd",
	})
	if str := fmt.Sprintf("%v", *list); str != "[a.vnd b.vnd]" {
		t.Fatalf("got %s", str)
	}
}

func TestTypedVar(t *testing.T) {
	type Policy string
	v := Var[Policy]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "unknown",
	})
	if *v != "unknown" {
		t.Fatalf("got %v", *v)
	}
}

func TestFuncSignature(t *testing.T) {
	for _, fn := range []any{
		42,
		func() int { return 0 },
		func() (error, error) { return nil, nil },
	} {
		func() {
			defer func() {
				if p := recover(); p == nil {
					t.Fatalf("should panic on %T", fn)
				}
			}()
			Func(fn)
		}()
	}
}
