package lexers

import (
	"fmt"
	"strings"

	"github.com/vandior/vlex/tokens"
)

// PosError is a scan error with the location it happened at.
type PosError struct {
	Err      error
	Location tokens.Location
	// Source is the scanned input, used to render the offending line
	Source string
}

func (p *PosError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %s:%d:%d",
		p.Err.Error(), p.Location.FileName, p.Location.Line, p.Location.Column)

	lines := strings.Split(p.Source, "\n")
	idx := p.Location.Line - 1
	if idx < 0 || idx >= len(lines) {
		return sb.String()
	}
	line := lines[idx]
	sb.WriteString("\n")
	sb.WriteString(line)
	sb.WriteString("\n")

	// caret
	col := 0
	for _, r := range line {
		if col >= p.Location.Column {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			sb.WriteString(strings.Repeat(" ", runeWidth(r)))
		}
		col++
	}
	sb.WriteString("^")

	return sb.String()
}

func (p *PosError) Unwrap() error {
	return p.Err
}

// runeWidth is the terminal cell width of r: 2 for wide east asian runes.
func runeWidth(r rune) int {
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
