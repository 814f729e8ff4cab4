package tokens

import (
	"fmt"
	"iter"
)

// Buffer is an owning, contiguous token sequence with explicit capacity bookkeeping.
// Capacity is len(slots); it grows to 1 from 0 and doubles otherwise.
// A Buffer must not be used from multiple goroutines.
type Buffer struct {
	slots []Token
	size  int
}

func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		panic(fmt.Errorf("negative capacity %d", capacity))
	}
	return &Buffer{
		slots: make([]Token, capacity),
	}
}

func (b *Buffer) Len() int {
	return b.size
}

func (b *Buffer) Cap() int {
	return len(b.slots)
}

func (b *Buffer) IsEmpty() bool {
	return b.size == 0
}

func (b *Buffer) Push(token Token) {
	if b.size == len(b.slots) {
		b.grow()
	}
	b.slots[b.size] = token
	b.size++
}

func (b *Buffer) grow() {
	newCap := 1
	if len(b.slots) > 0 {
		newCap = len(b.slots) * 2
	}
	slots := make([]Token, newCap)
	copy(slots, b.slots[:b.size])
	b.slots = slots
}

func (b *Buffer) Pop() (ret Token, ok bool) {
	if b.size == 0 {
		return
	}
	b.size--
	ret = b.slots[b.size]
	b.slots[b.size] = Token{}
	return ret, true
}

func (b *Buffer) Get(i int) (ret Token, ok bool) {
	if i < 0 || i >= b.size {
		return
	}
	return b.slots[i], true
}

// Set replaces the token at i. An out of range index is a programming error and panics.
func (b *Buffer) Set(i int, token Token) {
	if i < 0 || i >= b.size {
		panic(fmt.Errorf("index out of bounds: %d, size %d", i, b.size))
	}
	b.slots[i] = token
}

// Clear drops every token and keeps the capacity.
func (b *Buffer) Clear() {
	clear(b.slots[:b.size])
	b.size = 0
}

// Release drops every token and the backing storage. Calling it again is a no-op.
func (b *Buffer) Release() {
	if b.slots == nil {
		return
	}
	b.Clear()
	b.slots = nil
}

// Tokens returns the live tokens. The slice aliases the buffer until the next Push.
func (b *Buffer) Tokens() []Token {
	return b.slots[:b.size:b.size]
}

func (b *Buffer) All() iter.Seq2[int, Token] {
	return func(yield func(int, Token) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(i, b.slots[i]) {
				return
			}
		}
	}
}

// Last returns the final token, which is the end-of-input token of a finished scan.
func (b *Buffer) Last() (Token, bool) {
	return b.Get(b.size - 1)
}
