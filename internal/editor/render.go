// ABOUTME: Pluggable frame rendering: Renderer/Frame contract and the default Welcome screen
// ABOUTME: Welcome fills rows with "~" and centers a version banner at one third of the height

package editor

import (
	"fmt"
	"strings"

	"github.com/mauromedda/hecto-go/pkg/tui/terminal"
	"github.com/mauromedda/hecto-go/pkg/tui/width"
)

// Frame is the drawing surface handed to a Renderer for one refresh.
// The cursor starts at the origin; rows are separated with "\r\n".
type Frame interface {
	Size() terminal.Size
	Print(s string)
	ClearCurrentLine()
}

// Renderer draws the body of a frame.
type Renderer interface {
	Render(f Frame)
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(f Frame)

// Render calls fn(f).
func (fn RendererFunc) Render(f Frame) { fn(f) }

// Welcome is the placeholder screen shown while no document is loaded.
type Welcome struct {
	App     string
	Version string
}

// Render draws height-1 rows. Each is a "~" placeholder except the row at
// height/3, which carries the banner.
func (w Welcome) Render(f Frame) {
	size := f.Size()
	height := int(size.Height)
	bannerRow := height / 3

	for row := 0; row < height-1; row++ {
		f.ClearCurrentLine()
		if row == bannerRow {
			f.Print(Banner(w.App, w.Version, int(size.Width)))
		} else {
			f.Print("~")
		}
		f.Print("\r\n")
	}
}

// Banner returns the welcome line for a terminal cols wide: a "~", then
// enough spaces to roughly center "<app> -- version <version>", cut to cols
// display columns.
func Banner(app, version string, cols int) string {
	text := fmt.Sprintf("%s -- version %s", app, version)
	padding := max(0, cols-width.VisibleWidth(text)) / 2
	spaces := max(0, padding-1)
	return width.Truncate("~"+strings.Repeat(" ", spaces)+text, cols)
}
