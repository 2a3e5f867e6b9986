// ABOUTME: ProcessTerminal implements Device on top of real tty files and golang.org/x/term.
// ABOUTME: Saves and restores the input line discipline around raw mode.

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by an input and output file,
// normally os.Stdin and os.Stdout.
type ProcessTerminal struct {
	mu       sync.Mutex
	in       *os.File
	out      *os.File
	oldState *term.State
}

// NewProcessTerminal returns a ProcessTerminal for the given tty files.
// Nil files default to os.Stdin and os.Stdout.
func NewProcessTerminal(in, out *os.File) *ProcessTerminal {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &ProcessTerminal{in: in, out: out}
}

// Input returns the file key presses are read from.
func (t *ProcessTerminal) Input() *os.File {
	return t.in
}

// EnterRawMode switches the input file to raw mode, saving the previous state.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("entering raw mode: %s is not a terminal: %w", t.in.Name(), ErrUnavailable)
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the terminal to its previous state.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Write sends bytes to the output file.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to %s: %w", t.out.Name(), err)
	}
	return n, nil
}
