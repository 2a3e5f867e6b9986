// ABOUTME: Decoder turns raw terminal bytes into key and mouse events without blocking.
// ABOUTME: Buffers partial escape sequences and UTF-8 runes, skips bracketed paste, decodes SGR mouse reports.

package input

import (
	"bytes"
	"strconv"
	"unicode/utf8"

	"github.com/mauromedda/hecto-go/pkg/tui/key"
)

const (
	readBufSize  = 256
	maxCSILen    = 32
	bracketStart = "\x1b[200~"
	bracketEnd   = "\x1b[201~"
)

// Decoder accumulates raw input bytes and decodes complete events.
// It never blocks: incomplete sequences stay buffered until more bytes
// are fed or Flush declares the input idle.
type Decoder struct {
	buf []byte
}

// NewDecoder returns an empty Decoder.
func NewDecoder() *Decoder {
	return &Decoder{buf: make([]byte, 0, readBufSize)}
}

// Pending reports whether undecoded bytes are buffered.
func (d *Decoder) Pending() bool {
	return len(d.buf) > 0
}

// Feed appends data and returns every event that is now complete,
// in arrival order.
func (d *Decoder) Feed(data []byte) []Event {
	d.buf = append(d.buf, data...)
	return d.drain(false)
}

// Flush decodes whatever is buffered as if no more bytes will follow.
// A lone ESC becomes an Escape key; an unterminated sequence is split
// into Escape plus its remaining bytes.
func (d *Decoder) Flush() []Event {
	return d.drain(true)
}

func (d *Decoder) drain(final bool) []Event {
	var events []Event
	for len(d.buf) > 0 {
		consumed, ev, wait := d.tryParse(final)
		if wait {
			break
		}
		d.buf = d.buf[consumed:]
		if ev != nil {
			events = append(events, ev)
		}
	}
	return events
}

// tryParse attempts to parse one event from the front of d.buf.
// Returns (consumed bytes, event or nil, needs-wait flag).
func (d *Decoder) tryParse(final bool) (int, Event, bool) {
	if consumed, wait := d.skipBracketedPaste(final); consumed > 0 || wait {
		return consumed, nil, wait
	}

	if d.buf[0] == 0x1b {
		return d.parseEscape(final)
	}

	// Incomplete UTF-8 rune: wait for the remaining bytes.
	if !utf8.FullRune(d.buf) {
		if !final && len(d.buf) < utf8.UTFMax {
			return 0, nil, true
		}
		return 1, KeyEvent{Key: key.Key{Type: key.KeyUnknown}}, false
	}

	r, size := utf8.DecodeRune(d.buf)
	if r == utf8.RuneError {
		return 1, KeyEvent{Key: key.Key{Type: key.KeyUnknown}}, false
	}
	return size, KeyEvent{Key: key.ParseKey(string(d.buf[:size]))}, false
}

// parseEscape handles ESC-prefixed input.
func (d *Decoder) parseEscape(final bool) (int, Event, bool) {
	if len(d.buf) == 1 {
		if final {
			return 1, KeyEvent{Key: key.Key{Type: key.KeyEscape}}, false
		}
		return 0, nil, true
	}

	switch d.buf[1] {
	case '[':
		return d.parseCSI(final)
	case 'O':
		if len(d.buf) < 3 {
			if final {
				return 2, KeyEvent{Key: key.ParseKey(string(d.buf[:2]))}, false
			}
			return 0, nil, true
		}
		return 3, KeyEvent{Key: key.ParseKey(string(d.buf[:3]))}, false
	case 0x1b:
		// ESC ESC: the first one stands alone.
		return 1, KeyEvent{Key: key.Key{Type: key.KeyEscape}}, false
	}

	// Alt+<key>: ESC followed by one key.
	rest := d.buf[1:]
	if !utf8.FullRune(rest) && !final {
		return 0, nil, true
	}
	r, size := utf8.DecodeRune(rest)
	if size == 1 {
		return 2, KeyEvent{Key: key.ParseKey(string(d.buf[:2]))}, false
	}
	if r == utf8.RuneError {
		return 1, KeyEvent{Key: key.Key{Type: key.KeyEscape}}, false
	}
	return 1 + size, KeyEvent{Key: key.Key{Type: key.KeyRune, Rune: r, Alt: true}}, false
}

// parseCSI handles ESC [ sequences: keys, SGR and X10 mouse reports.
func (d *Decoder) parseCSI(final bool) (int, Event, bool) {
	// X10 mouse: ESC [ M followed by three raw bytes.
	if len(d.buf) >= 3 && d.buf[2] == 'M' {
		if len(d.buf) < 6 {
			if final {
				return 1, KeyEvent{Key: key.Key{Type: key.KeyEscape}}, false
			}
			return 0, nil, true
		}
		return 6, decodeX10Mouse(d.buf[3:6]), false
	}

	n := csiLen(d.buf)
	switch {
	case n < 0:
		// Malformed; drop the ESC and let the rest be re-parsed.
		return 1, KeyEvent{Key: key.Key{Type: key.KeyEscape}}, false
	case n == 0:
		if final || len(d.buf) >= maxCSILen {
			return 1, KeyEvent{Key: key.Key{Type: key.KeyEscape}}, false
		}
		return 0, nil, true
	}

	seq := d.buf[:n]
	if len(seq) > 3 && seq[2] == '<' {
		if ev, ok := decodeSGRMouse(seq); ok {
			return n, ev, false
		}
		return n, KeyEvent{Key: key.Key{Type: key.KeyUnknown}}, false
	}
	return n, KeyEvent{Key: key.ParseKey(string(seq))}, false
}

// csiLen returns the length of the complete CSI sequence at the start of b,
// 0 if it is not terminated yet, or -1 if it contains a byte that cannot
// appear in a CSI sequence.
func csiLen(b []byte) int {
	for i := 2; i < len(b); i++ {
		c := b[i]
		switch {
		case c >= 0x40 && c <= 0x7e:
			return i + 1
		case c < 0x20 || c > 0x7e:
			return -1
		}
	}
	return 0
}

// skipBracketedPaste consumes a complete bracketed paste. Pasted content is
// not delivered as keys.
func (d *Decoder) skipBracketedPaste(final bool) (int, bool) {
	if !bytes.HasPrefix(d.buf, []byte(bracketStart)) {
		return 0, false
	}
	end := bytes.Index(d.buf[len(bracketStart):], []byte(bracketEnd))
	if end < 0 {
		if final {
			return len(d.buf), false
		}
		return 0, true
	}
	return len(bracketStart) + end + len(bracketEnd), false
}

// decodeSGRMouse parses ESC [ < b ; x ; y (M|m).
func decodeSGRMouse(seq []byte) (MouseEvent, bool) {
	body := seq[3 : len(seq)-1]
	parts := bytes.Split(body, []byte{';'})
	if len(parts) != 3 {
		return MouseEvent{}, false
	}
	var nums [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(string(p))
		if err != nil {
			return MouseEvent{}, false
		}
		nums[i] = v
	}
	ev := mouseFromCode(nums[0], nums[1]-1, nums[2]-1)
	ev.Release = seq[len(seq)-1] == 'm'
	return ev, true
}

// decodeX10Mouse parses the three payload bytes of a legacy mouse report.
func decodeX10Mouse(p []byte) MouseEvent {
	code := int(p[0]) - 32
	ev := mouseFromCode(code, int(p[1])-33, int(p[2])-33)
	if code&0x03 == 3 && code&64 == 0 {
		ev.Release = true
	}
	return ev
}

func mouseFromCode(code, x, y int) MouseEvent {
	ev := MouseEvent{X: x, Y: y, Motion: code&32 != 0}
	if code&64 != 0 {
		if code&0x01 == 0 {
			ev.Button = MouseWheelUp
		} else {
			ev.Button = MouseWheelDown
		}
		return ev
	}
	ev.Button = MouseButton(code & 0x03)
	return ev
}
