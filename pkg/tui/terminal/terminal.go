// ABOUTME: Defines the Device interface for raw mode, size queries, and output.
// ABOUTME: Abstracts terminal operations so implementations can target real or virtual terminals.

package terminal

import "errors"

// ErrUnavailable is returned when the process is not attached to a usable
// terminal: the size query or the raw-mode transition failed.
var ErrUnavailable = errors.New("terminal unavailable")

// Device abstracts low-level terminal operations: raw mode,
// size queries and output writing.
type Device interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
}

// Size is a terminal geometry in cells.
type Size struct {
	Width  uint16
	Height uint16
}

// clampSize converts OS-reported dimensions into a Size, saturating at the
// uint16 range.
func clampSize(width, height int) Size {
	return Size{Width: clampDim(width), Height: clampDim(height)}
}

func clampDim(n int) uint16 {
	switch {
	case n < 0:
		return 0
	case n > 0xFFFF:
		return 0xFFFF
	default:
		return uint16(n)
	}
}
