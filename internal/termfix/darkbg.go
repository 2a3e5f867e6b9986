// ABOUTME: Pre-sets lipgloss dark background so help and keys output never send OSC queries
// ABOUTME: Must be imported (with _) before any package that renders with lipgloss or glamour

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// Tell lipgloss we have a dark background so it never sends OSC 10/11
	// terminal queries. A query answered while stdin is in raw mode would
	// arrive as bogus key presses.
	lipgloss.SetHasDarkBackground(true)
}
