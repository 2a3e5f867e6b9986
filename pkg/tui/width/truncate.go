// ABOUTME: Column-based truncation with grapheme and ANSI awareness
// ABOUTME: Truncate keeps the longest prefix that fits a column budget

package width

// Truncate returns the longest prefix of s whose visible width does not
// exceed cols. Escape sequences are kept and count as zero width; a wide
// grapheme that would straddle the limit is dropped entirely.
func Truncate(s string, cols int) string {
	if cols <= 0 || s == "" {
		return ""
	}
	if isPlainASCII(s) {
		if len(s) > cols {
			return s[:cols]
		}
		return s
	}

	used, cut := 0, 0
	walk(s, func(end, w int) bool {
		if used+w > cols {
			return false
		}
		used += w
		cut = end
		return true
	})
	return s[:cut]
}
