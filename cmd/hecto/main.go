// ABOUTME: CLI entry point for hecto with terminal crash recovery
// ABOUTME: Builds the cobra command tree and maps any failure to exit status 1

package main

import (
	"context"
	"fmt"
	"os"

	// termfix must be imported before anything that renders with lipgloss
	// or glamour so no OSC background query reaches the terminal.
	_ "github.com/mauromedda/hecto-go/internal/termfix"
)

var (
	version = "0.1.0"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
