// ABOUTME: Decodes CSI and SS3 key sequences: cursor keys, xterm modifier forms and CSI-u
// ABOUTME: A terminal in Kitty keyboard mode reports Ctrl+Q as ESC[113;5u; it decodes like the 0x11 byte

package key

import (
	"strconv"
	"strings"
)

// Modifier bits carried on the wire as 1 + bitmask.
const (
	modShift = 1 << iota
	modAlt
	modCtrl
)

// Key release, the third CSI-u event type. hecto acts on presses only.
const eventRelease = 3

// finalKeys maps the final byte of ESC [ <final>, ESC [ 1 ; m <final> and
// ESC O <final> to a key.
var finalKeys = map[byte]KeyType{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// tildeKeys maps ESC [ <n> ~ to a key. 1/7 and 4/8 are the VT220 and rxvt
// spellings of Home and End.
var tildeKeys = map[int]KeyType{
	1: KeyHome,
	3: KeyDelete,
	4: KeyEnd,
	5: KeyPageUp,
	6: KeyPageDown,
	7: KeyHome,
	8: KeyEnd,
}

// parseSequence decodes a complete ESC [ or ESC O sequence. It reports
// false for anything it does not recognise, including key releases.
func parseSequence(data string) (Key, bool) {
	if len(data) < 3 || data[0] != 0x1b {
		return Key{}, false
	}
	final := data[len(data)-1]

	if data[1] == 'O' {
		kt, ok := finalKeys[final]
		if !ok || len(data) != 3 {
			return Key{}, false
		}
		return Key{Type: kt}, true
	}
	if data[1] != '[' {
		return Key{}, false
	}

	first, mods, _ := strings.Cut(data[2:len(data)-1], ";")
	switch {
	case final == 'Z' && first == "" && mods == "":
		return Key{Type: KeyBackTab, Shift: true}, true
	case final == 'u':
		return parseCSIu(first, mods)
	case final == '~':
		n, err := strconv.Atoi(first)
		if err != nil {
			return Key{}, false
		}
		kt, ok := tildeKeys[n]
		if !ok {
			return Key{}, false
		}
		return withModifiers(Key{Type: kt}, mods)
	}

	kt, ok := finalKeys[final]
	if !ok || (first != "" && first != "1") {
		return Key{}, false
	}
	return withModifiers(Key{Type: kt}, mods)
}

// parseCSIu decodes ESC [ code[:alternates] [; mods[:event]] u.
func parseCSIu(first, mods string) (Key, bool) {
	code, _, _ := strings.Cut(first, ":")
	cp, err := strconv.Atoi(code)
	if err != nil || cp < 0 {
		return Key{}, false
	}

	var k Key
	switch cp {
	case 9:
		k = Key{Type: KeyTab}
	case 13:
		k = Key{Type: KeyEnter}
	case 27:
		k = Key{Type: KeyEscape}
	case 127:
		k = Key{Type: KeyBackspace}
	default:
		k = Key{Type: KeyRune, Rune: rune(cp)}
	}

	k, ok := withModifiers(k, mods)
	if ok && k.Type == KeyTab && k.Shift {
		k.Type = KeyBackTab
	}
	return k, ok
}

// withModifiers applies a "mods[:event]" parameter to k. An empty
// parameter means no modifiers.
func withModifiers(k Key, param string) (Key, bool) {
	if param == "" {
		return k, true
	}
	modStr, eventStr, _ := strings.Cut(param, ":")
	m, err := strconv.Atoi(modStr)
	if err != nil || m < 1 {
		return Key{}, false
	}
	if eventStr != "" {
		ev, err := strconv.Atoi(eventStr)
		if err != nil || ev == eventRelease {
			return Key{}, false
		}
	}

	bits := m - 1
	k.Shift = bits&modShift != 0
	k.Alt = bits&modAlt != 0
	k.Ctrl = bits&modCtrl != 0
	return k, true
}
