// ABOUTME: keys subcommand: raw-mode echo of decoded input events, one per line, until Ctrl+Q
// ABOUTME: Stays on the normal screen so the log of keys remains visible after exit

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mauromedda/hecto-go/internal/config"
	"github.com/mauromedda/hecto-go/internal/editor"
	"github.com/mauromedda/hecto-go/internal/log"
	"github.com/mauromedda/hecto-go/pkg/tui/input"
	"github.com/mauromedda/hecto-go/pkg/tui/terminal"
)

var (
	eventStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

func newKeysCmd(args *cliArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show how key presses decode, until Ctrl+Q",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, cleanup, err := setup(cmd, args)
			if err != nil {
				return err
			}
			defer cleanup()
			return runKeys(cmd.Context(), settings, cmd.OutOrStdout())
		},
	}
}

func runKeys(parent context.Context, settings *config.Settings, out io.Writer) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	dev := terminal.NewProcessTerminal(os.Stdin, os.Stdout)
	src, err := input.NewFileSource(dev.Input())
	if err != nil {
		return err
	}
	if err := dev.EnterRawMode(); err != nil {
		return err
	}
	defer func() { _ = dev.ExitRawMode() }()

	resize, stopResize := input.NotifyResize()
	defer stopResize()
	reader := input.NewReader(src,
		input.WithWakeInterval(settings.PollInterval.Std()),
		input.WithResize(resize, dev.Size),
	)
	return echoKeys(ctx, reader, out)
}

// echoKeys prints every event on its own line. Raw mode disables output
// post-processing, so lines end in "\r\n". Ctrl+Q is printed, then ends
// the loop; so do cancellation and end of input.
func echoKeys(ctx context.Context, events editor.EventSource, out io.Writer) error {
	fmt.Fprint(out, hintStyle.Render("Press keys to see how they decode. Ctrl+Q quits.")+"\r\n")
	for {
		ev, err := events.Next(ctx)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF), ctx.Err() != nil && errors.Is(err, ctx.Err()):
			return nil
		default:
			return err
		}

		log.Debug("keys: %s", ev)
		fmt.Fprint(out, eventStyle.Render(ev.String())+"\r\n")
		if ke, ok := ev.(input.KeyEvent); ok && ke.Key.IsCtrl('q') {
			return nil
		}
	}
}
