// ABOUTME: Tests for the Welcome renderer and banner layout
// ABOUTME: Uses a recording Frame to count rows and a table of banner widths

package editor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauromedda/hecto-go/pkg/tui/terminal"
	"github.com/mauromedda/hecto-go/pkg/tui/width"
)

// recordFrame captures what a Renderer draws.
type recordFrame struct {
	size   terminal.Size
	clears int
	out    strings.Builder
}

func (f *recordFrame) Size() terminal.Size { return f.size }
func (f *recordFrame) Print(s string)      { f.out.WriteString(s) }
func (f *recordFrame) ClearCurrentLine()   { f.clears++ }

// lines splits the drawn output into rows, dropping the empty tail after
// the final "\r\n".
func (f *recordFrame) lines() []string {
	s := f.out.String()
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\r\n"), "\r\n")
}

func TestWelcome_RowsAndSingleBanner(t *testing.T) {
	t.Parallel()

	w := Welcome{App: "hecto", Version: "0.1.0"}
	for _, h := range []uint16{3, 4, 5, 10, 24, 50, 101} {
		for _, cols := range []uint16{1, 20, 80, 200} {
			t.Run(fmt.Sprintf("%dx%d", cols, h), func(t *testing.T) {
				t.Parallel()
				f := &recordFrame{size: terminal.Size{Width: cols, Height: h}}
				w.Render(f)

				lines := f.lines()
				require.Len(t, lines, int(h)-1)
				assert.Equal(t, int(h)-1, f.clears, "every row clears its line first")

				banners := 0
				for i, line := range lines {
					if i == int(h)/3 {
						banners++
						assert.Equal(t, Banner("hecto", "0.1.0", int(cols)), line)
						continue
					}
					assert.Equal(t, "~", line, "row %d", i)
				}
				assert.Equal(t, 1, banners)
			})
		}
	}
}

func TestWelcome_TinyTerminals(t *testing.T) {
	t.Parallel()

	for _, h := range []uint16{0, 1} {
		f := &recordFrame{size: terminal.Size{Width: 80, Height: h}}
		Welcome{App: "hecto", Version: "1"}.Render(f)
		assert.Empty(t, f.lines(), "height %d", h)
		assert.Zero(t, f.clears)
	}
}

func TestWelcome_BannerAtOneThird(t *testing.T) {
	t.Parallel()

	f := &recordFrame{size: terminal.Size{Width: 80, Height: 24}}
	Welcome{App: "hecto", Version: "0.1.0"}.Render(f)

	lines := f.lines()
	require.Len(t, lines, 23)
	assert.Contains(t, lines[8], "hecto -- version 0.1.0")
}

func TestBanner(t *testing.T) {
	t.Parallel()

	const text = "hecto -- version 0.1.0" // 22 columns

	tests := []struct {
		name    string
		app     string
		version string
		cols    int
		want    string
	}{
		{name: "80 columns", app: "hecto", version: "0.1.0", cols: 80, want: "~" + strings.Repeat(" ", 28) + text},
		{name: "20 columns truncated", app: "hecto", version: "0.1.0", cols: 20, want: "~hecto -- version 0."},
		{name: "exact fit plus tilde", app: "hecto", version: "0.1.0", cols: 23, want: "~" + text},
		{name: "padding of one floors spaces at zero", app: "hecto", version: "0.1.0", cols: 24, want: "~" + text},
		{name: "one space", app: "hecto", version: "0.1.0", cols: 26, want: "~ " + text},
		{name: "odd slack rounds down", app: "hecto", version: "0.1.0", cols: 27, want: "~ " + text},
		{name: "single column", app: "hecto", version: "0.1.0", cols: 1, want: "~"},
		{name: "zero columns", app: "hecto", version: "0.1.0", cols: 0, want: ""},
		{name: "wide app name", app: "编辑", version: "1", cols: 10, want: "~编辑 -- v"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Banner(tt.app, tt.version, tt.cols)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, width.VisibleWidth(got), max(tt.cols, 0))
		})
	}
}

func TestBanner_WidthProperty(t *testing.T) {
	t.Parallel()

	for cols := 0; cols <= 120; cols++ {
		got := Banner("hecto", "0.1.0", cols)
		w := width.VisibleWidth(got)
		if cols <= 23 {
			assert.Equal(t, cols, w, "narrow terminals are filled exactly (cols=%d)", cols)
		} else {
			assert.LessOrEqual(t, w, cols, "cols=%d", cols)
			assert.True(t, strings.HasPrefix(got, "~"))
			assert.True(t, strings.HasSuffix(got, "0.1.0"))
		}
	}
}

func TestRendererFunc(t *testing.T) {
	t.Parallel()

	called := false
	var r Renderer = RendererFunc(func(f Frame) {
		called = true
		f.Print("x")
	})
	f := &recordFrame{}
	r.Render(f)
	assert.True(t, called)
	assert.Equal(t, "x", f.out.String())
}
