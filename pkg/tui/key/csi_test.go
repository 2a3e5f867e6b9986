// ABOUTME: Tests for CSI and SS3 sequence decoding.
// ABOUTME: Covers cursor keys with xterm modifiers, tilde keys, CSI-u codepoints, key releases and malformed input.

package key

import "testing"

func TestParseSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   string
		want   Key
		wantOK bool
	}{
		{name: "ss3 up", data: "\x1bOA", want: Key{Type: KeyUp}, wantOK: true},
		{name: "ss3 unknown final", data: "\x1bOx", wantOK: false},
		{name: "csi left", data: "\x1b[D", want: Key{Type: KeyLeft}, wantOK: true},
		{name: "shift up", data: "\x1b[1;2A", want: Key{Type: KeyUp, Shift: true}, wantOK: true},
		{name: "alt down", data: "\x1b[1;3B", want: Key{Type: KeyDown, Alt: true}, wantOK: true},
		{name: "ctrl right", data: "\x1b[1;5C", want: Key{Type: KeyRight, Ctrl: true}, wantOK: true},
		{name: "ctrl shift left", data: "\x1b[1;6D", want: Key{Type: KeyLeft, Ctrl: true, Shift: true}, wantOK: true},
		{name: "letter with bad prefix", data: "\x1b[2;5A", wantOK: false},
		{name: "backtab", data: "\x1b[Z", want: Key{Type: KeyBackTab, Shift: true}, wantOK: true},
		{name: "numbered Z", data: "\x1b[99Z", wantOK: false},

		{name: "delete", data: "\x1b[3~", want: Key{Type: KeyDelete}, wantOK: true},
		{name: "vt220 home", data: "\x1b[1~", want: Key{Type: KeyHome}, wantOK: true},
		{name: "rxvt end", data: "\x1b[8~", want: Key{Type: KeyEnd}, wantOK: true},
		{name: "shift delete", data: "\x1b[3;2~", want: Key{Type: KeyDelete, Shift: true}, wantOK: true},
		{name: "explicit no modifiers", data: "\x1b[5;1~", want: Key{Type: KeyPageUp}, wantOK: true},
		{name: "unknown tilde", data: "\x1b[200~", wantOK: false},

		{name: "csi-u rune", data: "\x1b[97u", want: Key{Type: KeyRune, Rune: 'a'}, wantOK: true},
		{name: "csi-u ctrl+q", data: "\x1b[113;5u", want: Ctrl('q'), wantOK: true},
		{name: "csi-u ctrl+alt+shift", data: "\x1b[97;8u", want: Key{Type: KeyRune, Rune: 'a', Ctrl: true, Alt: true, Shift: true}, wantOK: true},
		{name: "csi-u enter", data: "\x1b[13u", want: Key{Type: KeyEnter}, wantOK: true},
		{name: "csi-u backspace", data: "\x1b[127u", want: Key{Type: KeyBackspace}, wantOK: true},
		{name: "csi-u escape", data: "\x1b[27u", want: Key{Type: KeyEscape}, wantOK: true},
		{name: "csi-u shift tab", data: "\x1b[9;2u", want: Key{Type: KeyBackTab, Shift: true}, wantOK: true},
		{name: "csi-u alternate key ignored", data: "\x1b[97:65;2u", want: Key{Type: KeyRune, Rune: 'a', Shift: true}, wantOK: true},
		{name: "csi-u non-ascii", data: "\x1b[20013u", want: Key{Type: KeyRune, Rune: '中'}, wantOK: true},
		{name: "csi-u press event", data: "\x1b[113;5:1u", want: Ctrl('q'), wantOK: true},
		{name: "csi-u repeat event", data: "\x1b[113;5:2u", want: Ctrl('q'), wantOK: true},
		{name: "csi-u release dropped", data: "\x1b[113;5:3u", wantOK: false},

		{name: "zero modifier", data: "\x1b[97;0u", wantOK: false},
		{name: "non numeric code", data: "\x1b[abcu", wantOK: false},
		{name: "missing csi", data: "\x1b97u", wantOK: false},
		{name: "too short", data: "\x1b[", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := parseSequence(tt.data)
			if ok != tt.wantOK {
				t.Fatalf("parseSequence(%q) ok = %v, want %v", tt.data, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("parseSequence(%q) = %+v, want %+v", tt.data, got, tt.want)
			}
		})
	}
}

func TestParseKey_ReleaseIsUnknown(t *testing.T) {
	t.Parallel()

	if got := ParseKey("\x1b[113;5:3u"); got.Type != KeyUnknown {
		t.Errorf("ParseKey(release) = %+v, want KeyUnknown", got)
	}
}
