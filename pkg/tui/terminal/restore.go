// ABOUTME: RestoreOnPanic recovers from panics, restores the terminal, and prints the stack trace.
// ABOUTME: The panic becomes the caller's error so its remaining deferred cleanups still run.

package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// ErrPanicked wraps a panic recovered by RestoreOnPanic.
var ErrPanicked = errors.New("panic")

// RestoreOnPanic should be deferred right after the Terminal is opened,
// with a pointer to the caller's named error result. On panic it closes
// the session (leaving the alternate screen and raw mode), prints the
// panic value and stack trace to stderr, and stores an error wrapping
// ErrPanicked in *errp. The caller then returns normally and exits
// through its usual error path.
func RestoreOnPanic(t *Terminal, errp *error) {
	r := recover()
	if r == nil {
		return
	}
	restoreAfterPanic(t, r, os.Stderr)
	if errp != nil {
		*errp = fmt.Errorf("%w: %v", ErrPanicked, r)
	}
}

// restoreAfterPanic is the output-capturing part of RestoreOnPanic.
func restoreAfterPanic(t *Terminal, r any, w io.Writer) {
	if t != nil {
		_ = t.Close()
	}
	fmt.Fprintf(w, "\npanic: %v\n\n%s\n", r, debug.Stack())
}
