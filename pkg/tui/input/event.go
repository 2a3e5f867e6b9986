// ABOUTME: Input event variants produced by the Reader: key presses, resizes and mouse reports.
// ABOUTME: Event is a closed set; consumers switch on the concrete type.

package input

import (
	"fmt"

	"github.com/mauromedda/hecto-go/pkg/tui/key"
)

// Event is one unit of terminal input. The concrete types are KeyEvent,
// ResizeEvent and MouseEvent.
type Event interface {
	isEvent()
	String() string
}

// KeyEvent is a decoded key press with its modifiers.
type KeyEvent struct {
	Key key.Key
}

// ResizeEvent carries the terminal size observed after a resize notification.
type ResizeEvent struct {
	Width  uint16
	Height uint16
}

// MouseButton identifies the button in a mouse report.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseNone
	MouseWheelUp
	MouseWheelDown
)

// MouseEvent is an SGR mouse report. X and Y are zero-based cells.
type MouseEvent struct {
	Button  MouseButton
	X, Y    int
	Release bool
	Motion  bool
}

func (KeyEvent) isEvent()    {}
func (ResizeEvent) isEvent() {}
func (MouseEvent) isEvent()  {}

func (e KeyEvent) String() string { return "key " + e.Key.String() }

func (e ResizeEvent) String() string {
	return fmt.Sprintf("resize %dx%d", e.Width, e.Height)
}

func (e MouseEvent) String() string {
	action := "press"
	switch {
	case e.Release:
		action = "release"
	case e.Motion:
		action = "motion"
	}
	return fmt.Sprintf("mouse %s button=%d at %d,%d", action, e.Button, e.X, e.Y)
}
