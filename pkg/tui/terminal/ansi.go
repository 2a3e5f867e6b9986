// ABOUTME: Pre-built ANSI control sequences for cursor, clearing and screen-buffer switches.
// ABOUTME: Direct xterm-compatible sequences; no terminfo lookup.

package terminal

import "strconv"

var (
	csiClearScreen = []byte("\x1b[2J")
	csiClearLine   = []byte("\x1b[2K")

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")

	// SGR mouse reporting: button events plus extended coordinates.
	csiMouseOn  = []byte("\x1b[?1000h\x1b[?1006h")
	csiMouseOff = []byte("\x1b[?1006l\x1b[?1000l")
)

// appendCursorPos appends a CUP sequence for the zero-based column x and row y.
func appendCursorPos(b []byte, x, y int) []byte {
	b = append(b, "\x1b["...)
	b = strconv.AppendInt(b, int64(y)+1, 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(x)+1, 10)
	return append(b, 'H')
}
