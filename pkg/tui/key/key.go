// ABOUTME: Defines the Key type and ParseKey for terminal keyboard input parsing.
// ABOUTME: Handles printable runes, modifier-aware control bytes, and delegates escape sequences to the CSI decoder.

package key

import (
	"strings"
	"unicode/utf8"
)

// Key represents a parsed keyboard input event.
type Key struct {
	Type  KeyType
	Rune  rune // For printable characters and Ctrl+<letter>
	Alt   bool
	Ctrl  bool
	Shift bool
}

// KeyType enumerates the kinds of key events the TUI can receive.
type KeyType int

const (
	KeyRune      KeyType = iota // Printable character, possibly with modifiers
	KeyEnter                    // Enter / Return
	KeyTab                      // Tab
	KeyBackTab                  // Shift+Tab
	KeyBackspace                // Backspace / DEL (0x7F)
	KeyDelete                   // Delete key
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyPageUp                   // Page Up
	KeyPageDown                 // Page Down
	KeyEscape                   // Escape
	KeyUnknown                  // Unrecognized input
)

// Ctrl returns the Key a terminal delivers for Ctrl+r.
func Ctrl(r rune) Key {
	return Key{Type: KeyRune, Rune: r, Ctrl: true}
}

// IsCtrl reports whether k is Ctrl+r with no other modifier.
// Letters match case-insensitively since legacy terminals cannot
// distinguish Ctrl+q from Ctrl+Q.
func (k Key) IsCtrl(r rune) bool {
	if k.Type != KeyRune || !k.Ctrl || k.Alt {
		return false
	}
	return toLower(k.Rune) == toLower(r)
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// ParseKey parses raw terminal input data into a Key.
// It handles single runes, control characters, and escape sequences.
func ParseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}

	// Single-byte fast path
	if len(data) == 1 {
		return parseSingleByte(data[0])
	}

	// Escape sequence path
	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}

	// Multi-byte UTF-8 rune
	r, _ := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

// parseSingleByte handles a single-byte input (ASCII or control character).
func parseSingleByte(b byte) Key {
	switch {
	case b == 0x0d || b == 0x0a:
		return Key{Type: KeyEnter}
	case b == 0x09:
		return Key{Type: KeyTab}
	case b == 0x7f || b == 0x08:
		return Key{Type: KeyBackspace}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b == 0x00:
		return Ctrl(' ')
	case b >= 0x01 && b <= 0x1a:
		// Ctrl+<letter> arrives as the letter masked with 0x1f.
		return Ctrl(rune('a' + b - 1))
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	}
	return Key{Type: KeyUnknown}
}

// parseEscapeSequence decodes ESC-prefixed data: CSI and SS3 sequences,
// a lone ESC, or Alt+key.
func parseEscapeSequence(data string) Key {
	if k, ok := parseSequence(data); ok {
		return k
	}

	// Lone ESC
	if len(data) == 1 {
		return Key{Type: KeyEscape}
	}

	// Alt+key: ESC followed by a single byte that decodes on its own.
	if len(data) == 2 {
		k := parseSingleByte(data[1])
		if k.Type != KeyUnknown && k.Type != KeyEscape {
			k.Alt = true
			return k
		}
	}

	return Key{Type: KeyUnknown}
}

// keyTypeNames provides human-readable labels for each KeyType.
var keyTypeNames = map[KeyType]string{
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackTab:   "BackTab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyEscape:    "Escape",
	KeyUnknown:   "Unknown",
}

// String returns a human-readable representation of the Key, e.g. "Ctrl+q".
func (k Key) String() string {
	var b strings.Builder
	if k.Ctrl {
		b.WriteString("Ctrl+")
	}
	if k.Alt {
		b.WriteString("Alt+")
	}
	if k.Shift && k.Type != KeyBackTab {
		b.WriteString("Shift+")
	}

	switch {
	case k.Type == KeyRune && k.Rune == ' ':
		b.WriteString("Space")
	case k.Type == KeyRune:
		b.WriteRune(k.Rune)
	default:
		name, ok := keyTypeNames[k.Type]
		if !ok {
			name = "Unknown"
		}
		b.WriteString(name)
	}
	return b.String()
}
