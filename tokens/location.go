package tokens

import "fmt"

// Location is where a token starts. Line is 1-based, Column is a 0-based rune count.
type Location struct {
	FileName string
	Line     int
	Column   int
}

func (l Location) String() string {
	return fmt.Sprintf("(file: %s,line: %d, column: %d)", l.FileName, l.Line, l.Column)
}

func (l Location) Compact() string {
	return fmt.Sprintf("(fn: %s, ln: %d, cln: %d)", l.FileName, l.Line, l.Column)
}
