// ABOUTME: VirtualTerminal implements Device for testing without a real TTY.
// ABOUTME: Captures output in a buffer and tracks raw-mode enter/exit calls.

package terminal

import (
	"bytes"
	"fmt"
	"sync"
)

// VirtualTerminal is a fake Device for unit tests.
// It records written output and tracks raw-mode transitions.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	width      int
	height     int
	rawMode    bool
	enterCount int
	exitCount  int
	writes     int

	sizeErr  error
	enterErr error
	writeErr error
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:  width,
		height: height,
	}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.enterErr != nil {
		return v.enterErr
	}
	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.sizeErr != nil {
		return 0, 0, v.sizeErr
	}
	return v.width, v.height, nil
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.writeErr != nil {
		return 0, v.writeErr
	}
	v.writes++
	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// --- Test helpers (not part of Device interface) ---

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
	v.writes = 0
}

// Writes returns how many Write calls reached the device since the last Reset.
func (v *VirtualTerminal) Writes() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.writes
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode succeeded.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// SetSize updates the dimensions reported by Size.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.width = width
	v.height = height
}

// FailSize makes subsequent Size calls return err.
func (v *VirtualTerminal) FailSize(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sizeErr = err
}

// FailEnter makes subsequent EnterRawMode calls return err.
func (v *VirtualTerminal) FailEnter(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.enterErr = err
}

// FailWrite makes subsequent Write calls return err.
func (v *VirtualTerminal) FailWrite(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writeErr = err
}
