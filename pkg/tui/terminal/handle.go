// ABOUTME: Terminal is the single owned handle for the raw-mode, alternate-screen session.
// ABOUTME: Buffers cursor/clear/text output and releases the session exactly once on Close.

package terminal

import (
	"errors"
	"fmt"
	"sync"
)

// Terminal owns the terminal device for the lifetime of a session.
// Drawing calls are buffered until Flush. There must be exactly one
// Terminal per process; share it by pointer, never by value.
type Terminal struct {
	dev   Device
	buf   []byte
	size  Size
	mouse bool

	closeOnce sync.Once
	closeErr  error
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithMouse enables SGR mouse reporting for the session.
func WithMouse(enabled bool) Option {
	return func(t *Terminal) { t.mouse = enabled }
}

// New queries the device size, enters raw mode and the alternate screen,
// and returns the session handle. Both failures wrap ErrUnavailable; the
// caller must not draw on a terminal that failed to open.
func New(dev Device, opts ...Option) (*Terminal, error) {
	w, h, err := dev.Size()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	t := &Terminal{
		dev:  dev,
		size: clampSize(w, h),
		buf:  make([]byte, 0, 4096),
	}
	for _, opt := range opts {
		opt(t)
	}

	if err := t.enter(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Terminal) enter() error {
	if err := t.dev.EnterRawMode(); err != nil {
		if errors.Is(err, ErrUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	t.buf = append(t.buf, csiAltScreenEnter...)
	if t.mouse {
		t.buf = append(t.buf, csiMouseOn...)
	}
	if err := t.Flush(); err != nil {
		_ = t.dev.ExitRawMode()
		return fmt.Errorf("%w: entering alternate screen: %w", ErrUnavailable, err)
	}
	return nil
}

// Close leaves the alternate screen, makes the cursor visible and disables
// raw mode. Only the first call has an effect; later calls return the
// first call's result.
func (t *Terminal) Close() error {
	t.closeOnce.Do(func() {
		t.buf = t.buf[:0]
		if t.mouse {
			t.buf = append(t.buf, csiMouseOff...)
		}
		t.buf = append(t.buf, csiCursorShow...)
		t.buf = append(t.buf, csiAltScreenExit...)
		t.closeErr = errors.Join(t.Flush(), t.dev.ExitRawMode())
	})
	return t.closeErr
}

// Size returns the cached terminal size. It is never re-queried.
func (t *Terminal) Size() Size {
	return t.size
}

// SetSize overwrites the cached size, typically after a resize event.
func (t *Terminal) SetSize(s Size) {
	t.size = s
}

// MoveTo positions the cursor at zero-based column x, row y.
// Coordinates are not checked against the cached size.
func (t *Terminal) MoveTo(x, y int) {
	t.buf = appendCursorPos(t.buf, x, y)
}

// HideCursor makes the cursor invisible.
func (t *Terminal) HideCursor() {
	t.buf = append(t.buf, csiCursorHide...)
}

// ShowCursor makes the cursor visible.
func (t *Terminal) ShowCursor() {
	t.buf = append(t.buf, csiCursorShow...)
}

// Clear erases the whole visible screen.
func (t *Terminal) Clear() {
	t.buf = append(t.buf, csiClearScreen...)
}

// ClearCurrentLine erases the line under the cursor.
func (t *Terminal) ClearCurrentLine() {
	t.buf = append(t.buf, csiClearLine...)
}

// Print queues s for output at the cursor position.
func (t *Terminal) Print(s string) {
	t.buf = append(t.buf, s...)
}

// Flush writes all queued output to the device in a single write.
func (t *Terminal) Flush() error {
	if len(t.buf) == 0 {
		return nil
	}
	_, err := t.dev.Write(t.buf)
	t.buf = t.buf[:0]
	if err != nil {
		return fmt.Errorf("flushing terminal output: %w", err)
	}
	return nil
}
