// ABOUTME: Renders command help as Markdown through glamour
// ABOUTME: Falls back to cobra's plain help when rendering fails

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func setMarkdownHelp(root *cobra.Command) {
	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		out, err := renderHelp(helpMarkdown(cmd), helpStyle(), 80)
		if err != nil {
			defaultHelp(cmd, args)
			return
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
	})
}

// helpStyle picks a fixed glamour style. Auto-detection would query the
// terminal background; termfix has already decided it is dark.
func helpStyle() string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return "notty"
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func renderHelp(md, style string, wrap int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", fmt.Errorf("creating help renderer: %w", err)
	}
	return r.Render(md)
}

func helpMarkdown(cmd *cobra.Command) string {
	var b strings.Builder

	switch {
	case cmd.Long != "":
		b.WriteString(cmd.Long)
	case cmd.Short != "":
		b.WriteString("# " + cmd.Short)
	}
	b.WriteString("\n\n## Usage\n\n```\n")
	b.WriteString(cmd.UseLine())
	b.WriteString("\n```\n\n")

	if cmd.HasAvailableSubCommands() {
		b.WriteString("## Commands\n\n")
		for _, sub := range cmd.Commands() {
			if sub.IsAvailableCommand() {
				fmt.Fprintf(&b, "- **%s**: %s\n", sub.Name(), sub.Short)
			}
		}
		b.WriteString("\n")
	}

	if flags := cmd.NonInheritedFlags(); flags.HasAvailableFlags() {
		b.WriteString("## Flags\n\n```\n")
		b.WriteString(flags.FlagUsages())
		b.WriteString("```\n\n")
	}
	if flags := cmd.InheritedFlags(); flags.HasAvailableFlags() {
		b.WriteString("## Global Flags\n\n```\n")
		b.WriteString(flags.FlagUsages())
		b.WriteString("```\n")
	}
	return b.String()
}
