package locations

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Locate returns the line and column of a byte offset by rescanning the prefix.
// The line is the number of segments of input[:offset] split on newlines, so it is 1-based.
// The column is the rune count of the last segment, 0-based.
func Locate(input string, offset int) (line int, column int) {
	offset = clamp(offset, len(input))
	prefix := input[:offset]
	line = strings.Count(prefix, "\n") + 1
	lineStart := strings.LastIndexByte(prefix, '\n') + 1
	column = utf8.RuneCountInString(prefix[lineStart:])
	return
}

// Tracker gives the same results as Locate with a precomputed newline table.
type Tracker struct {
	input      string
	lineStarts []int
}

func NewTracker(input string) *Tracker {
	t := &Tracker{
		input:      input,
		lineStarts: []int{0},
	}
	for i := 0; i < len(input); i++ {
		if input[i] == '\n' {
			t.lineStarts = append(t.lineStarts, i+1)
		}
	}
	return t
}

func (t *Tracker) Locate(offset int) (line int, column int) {
	offset = clamp(offset, len(t.input))
	// index of the last line start <= offset
	i := sort.Search(len(t.lineStarts), func(i int) bool {
		return t.lineStarts[i] > offset
	}) - 1
	return i + 1, utf8.RuneCountInString(t.input[t.lineStarts[i]:offset])
}

func clamp(offset, max int) int {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}
