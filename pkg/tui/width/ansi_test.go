package width

import "testing"

func TestSkipANSISequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		start int
		want  int
	}{
		{name: "not an escape", input: "abc", start: 0, want: 0},
		{name: "sgr", input: "\x1b[31mred", start: 0, want: 5},
		{name: "sgr with params", input: "\x1b[31;1;4mx", start: 0, want: 9},
		{name: "cursor position", input: "\x1b[10;20Hhere", start: 0, want: 8},
		{name: "private mode", input: "\x1b[?1049h", start: 0, want: 8},
		{name: "osc bel", input: "\x1b]0;title\x07text", start: 0, want: 10},
		{name: "osc st", input: "\x1b]0;t\x1b\\x", start: 0, want: 7},
		{name: "charset", input: "\x1b(Bx", start: 0, want: 3},
		{name: "dcs", input: "\x1bPdata\x1b\\x", start: 0, want: 8},
		{name: "two byte", input: "\x1b7x", start: 0, want: 2},
		{name: "lone esc at end", input: "ab\x1b", start: 2, want: 3},
		{name: "unterminated csi", input: "\x1b[12", start: 0, want: 4},
		{name: "mid string", input: "ab\x1b[0mcd", start: 2, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := skipANSISequence(tt.input, tt.start); got != tt.want {
				t.Errorf("skipANSISequence(%q, %d) = %d, want %d", tt.input, tt.start, got, tt.want)
			}
		})
	}
}
