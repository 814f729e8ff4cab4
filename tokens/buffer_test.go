package tokens

import (
	"fmt"
	"testing"
)

func testToken(i int) Token {
	return Token{
		Type:   Integer,
		Lexeme: fmt.Sprint(i),
		Location: Location{
			FileName: "test.vnd",
			Line:     1,
			Column:   i,
		},
	}
}

func TestBufferGrowth(t *testing.T) {
	b := NewBuffer(0)
	if b.Cap() != 0 || b.Len() != 0 {
		t.Fatalf("got cap %d len %d", b.Cap(), b.Len())
	}

	wantCaps := []int{1, 2, 4, 4, 8, 8, 8, 8, 16}
	for i, want := range wantCaps {
		b.Push(testToken(i))
		if b.Cap() != want {
			t.Fatalf("push %d: got cap %d, want %d", i, b.Cap(), want)
		}
		if b.Len() != i+1 {
			t.Fatalf("push %d: got len %d", i, b.Len())
		}
		for j := 0; j <= i; j++ {
			got, ok := b.Get(j)
			if !ok {
				t.Fatalf("missing %d", j)
			}
			if got != testToken(j) {
				t.Fatalf("got %v", got)
			}
		}
	}
}

func TestBufferWithCapacity(t *testing.T) {
	b := NewBuffer(3)
	if b.Cap() != 3 || !b.IsEmpty() {
		t.Fatalf("got cap %d len %d", b.Cap(), b.Len())
	}
	for i := range 3 {
		b.Push(testToken(i))
	}
	if b.Cap() != 3 {
		t.Fatalf("got %d", b.Cap())
	}
	b.Push(testToken(3))
	if b.Cap() != 6 {
		t.Fatalf("got %d", b.Cap())
	}
}

func TestBufferPop(t *testing.T) {
	b := NewBuffer(0)
	if _, ok := b.Pop(); ok {
		t.Fatal("should be empty")
	}
	b.Push(testToken(1))
	b.Push(testToken(2))
	tok, ok := b.Pop()
	if !ok || tok != testToken(2) {
		t.Fatalf("got %v %v", tok, ok)
	}
	if b.Len() != 1 || b.Cap() != 2 {
		t.Fatalf("got len %d cap %d", b.Len(), b.Cap())
	}
	// popped slot is zeroed
	if b.slots[1] != (Token{}) {
		t.Fatalf("got %v", b.slots[1])
	}
}

func TestBufferGetSet(t *testing.T) {
	b := NewBuffer(2)
	b.Push(testToken(0))
	if _, ok := b.Get(1); ok {
		t.Fatal("should be out of range")
	}
	if _, ok := b.Get(-1); ok {
		t.Fatal("should be out of range")
	}
	b.Set(0, testToken(9))
	if got, _ := b.Get(0); got != testToken(9) {
		t.Fatalf("got %v", got)
	}

	func() {
		defer func() {
			if p := recover(); p == nil {
				t.Fatal("should panic")
			}
		}()
		b.Set(1, testToken(1))
	}()
}

func TestBufferClearAndRelease(t *testing.T) {
	b := NewBuffer(0)
	for i := range 5 {
		b.Push(testToken(i))
	}
	b.Clear()
	if b.Len() != 0 || b.Cap() != 8 {
		t.Fatalf("got len %d cap %d", b.Len(), b.Cap())
	}
	for _, slot := range b.slots {
		if slot != (Token{}) {
			t.Fatalf("got %v", slot)
		}
	}

	b.Push(testToken(1))
	b.Release()
	if b.Len() != 0 || b.Cap() != 0 {
		t.Fatalf("got len %d cap %d", b.Len(), b.Cap())
	}
	b.Release()

	// usable after release
	b.Push(testToken(2))
	if b.Cap() != 1 {
		t.Fatalf("got %d", b.Cap())
	}
}

func TestBufferIteration(t *testing.T) {
	b := NewBuffer(0)
	for i := range 3 {
		b.Push(testToken(i))
	}
	n := 0
	for i, tok := range b.All() {
		if tok != testToken(i) {
			t.Fatalf("got %v", tok)
		}
		n++
	}
	if n != 3 {
		t.Fatalf("got %d", n)
	}
	if len(b.Tokens()) != 3 {
		t.Fatalf("got %d", len(b.Tokens()))
	}
	last, ok := b.Last()
	if !ok || last != testToken(2) {
		t.Fatalf("got %v", last)
	}
	if _, ok := NewBuffer(0).Last(); ok {
		t.Fatal("should be empty")
	}
}
