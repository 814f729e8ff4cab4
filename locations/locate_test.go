package locations

import "testing"

func TestLocate(t *testing.T) {
	input := "a中b\nxy\n\nz"
	// byte offsets: a(0) 中(1..3) b(4) \n(5) x(6) y(7) \n(8) \n(9) z(10)
	tests := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 0},
		{1, 1, 1},
		{4, 1, 2},
		{5, 1, 3},
		{6, 2, 0},
		{7, 2, 1},
		{9, 3, 0},
		{10, 4, 0},
		{11, 4, 1},
		{-1, 1, 0},
		{100, 4, 1},
	}
	tracker := NewTracker(input)
	for _, test := range tests {
		line, column := Locate(input, test.offset)
		if line != test.line || column != test.column {
			t.Fatalf("offset %d: got (%d, %d), want (%d, %d)", test.offset, line, column, test.line, test.column)
		}
		line, column = tracker.Locate(test.offset)
		if line != test.line || column != test.column {
			t.Fatalf("tracker offset %d: got (%d, %d), want (%d, %d)", test.offset, line, column, test.line, test.column)
		}
	}
}

func TestTrackerMatchesLocate(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"var x = 1\nvar y = 2\n",
		"变量 = 'c'\n\n\t/* a\nb */ é",
	}
	for _, input := range inputs {
		tracker := NewTracker(input)
		for offset := 0; offset <= len(input); offset++ {
			l1, c1 := Locate(input, offset)
			l2, c2 := tracker.Locate(offset)
			if l1 != l2 || c1 != c2 {
				t.Fatalf("%q offset %d: locate (%d, %d), tracker (%d, %d)", input, offset, l1, c1, l2, c2)
			}
		}
	}
}
