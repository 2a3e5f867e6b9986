// ABOUTME: Terminal column measurement for the lines hecto draws
// ABOUTME: Walks a string as escape sequences and grapheme clusters; printable ASCII short-circuits

package width

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the number of columns s occupies on screen.
// Escape sequences take no columns; a grapheme cluster takes the width of
// its base rune, so East Asian wide characters and most emoji count as two.
func VisibleWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	walk(s, func(_, cols int) bool {
		w += cols
		return true
	})
	return w
}

// isPlainASCII reports whether every byte of s is printable ASCII, in
// which case byte length and column count agree.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}

// walk splits s into escape sequences and grapheme clusters and calls fn
// with the byte offset just past each segment and the columns it takes.
// Walking stops when fn returns false.
func walk(s string, fn func(end, cols int) bool) {
	i := 0
	state := -1
	for i < len(s) {
		if s[i] == '\x1b' {
			i = skipANSISequence(s, i)
			state = -1
			if !fn(i, 0) {
				return
			}
			continue
		}
		cluster, rest, _, next := uniseg.FirstGraphemeClusterInString(s[i:], state)
		i = len(s) - len(rest)
		state = next
		if !fn(i, graphemeWidth(cluster)) {
			return
		}
	}
}

func graphemeWidth(cluster string) int {
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
