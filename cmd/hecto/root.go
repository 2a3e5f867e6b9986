// ABOUTME: Root command: loads settings, wires logging, and runs the editor on the process terminal
// ABOUTME: SIGTERM/SIGHUP cancel the run context; the editor then draws its farewell frame and exits

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mauromedda/hecto-go/internal/config"
	"github.com/mauromedda/hecto-go/internal/editor"
	"github.com/mauromedda/hecto-go/internal/log"
	"github.com/mauromedda/hecto-go/pkg/tui/input"
	"github.com/mauromedda/hecto-go/pkg/tui/terminal"
)

func newRootCmd() *cobra.Command {
	var args cliArgs

	cmd := &cobra.Command{
		Use:   "hecto",
		Short: "A tiny full-screen terminal editor",
		Long: `# hecto

A tiny full-screen terminal editor.

It takes over the terminal in raw mode on the alternate screen, shows a
welcome screen that follows terminal resizes, and quits on **Ctrl+Q**.

Settings are read from ~/.hecto/config.yaml and .hecto/config.yaml; flags
override both.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, cleanup, err := setup(cmd, &args)
			if err != nil {
				return err
			}
			defer cleanup()
			return runEditor(cmd.Context(), settings)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	args.register(cmd.PersistentFlags())

	cmd.AddCommand(newVersionCmd(), newKeysCmd(&args))
	setMarkdownHelp(cmd)
	return cmd
}

// setup resolves settings from files and flags and points the logger at
// the configured file. The returned cleanup closes that file.
func setup(cmd *cobra.Command, args *cliArgs) (*config.Settings, func(), error) {
	settings, err := loadSettings(args.configPath)
	if err != nil {
		return nil, nil, err
	}
	args.applyTo(cmd.Flags(), settings)

	cleanup, err := setupLogging(settings.Log)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("settings: poll=%s mouse=%t", settings.PollInterval.Std(), settings.MouseEnabled())
	return settings, cleanup, nil
}

func loadSettings(path string) (*config.Settings, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return config.Load(cwd)
}

// setupLogging never targets stderr: while the editor runs, stderr is the
// raw-mode terminal.
func setupLogging(ls config.LogSettings) (func(), error) {
	lvl, err := log.ParseLevel(ls.Level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)

	if ls.File == "" {
		return func() {}, nil
	}
	if err := config.EnsureDir(filepath.Dir(ls.File)); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(ls.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	return func() { _ = f.Close() }, nil
}

func runEditor(parent context.Context, settings *config.Settings) (err error) {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	dev := terminal.NewProcessTerminal(os.Stdin, os.Stdout)
	src, err := input.NewFileSource(dev.Input())
	if err != nil {
		return err
	}
	resize, stopResize := input.NotifyResize()
	defer stopResize()

	reader := input.NewReader(src,
		input.WithWakeInterval(settings.PollInterval.Std()),
		input.WithResize(resize, dev.Size),
	)

	ed, err := editor.Open(dev, reader,
		editor.WithRenderer(editor.Welcome{App: editor.AppName, Version: version}),
		editor.WithTerminalOptions(terminal.WithMouse(settings.MouseEnabled())),
	)
	if err != nil {
		return err
	}
	defer func() {
		if errors.Is(err, terminal.ErrPanicked) {
			log.Error("editor: %v", err)
		}
	}()
	defer terminal.RestoreOnPanic(ed.Terminal(), &err)

	log.Info("hecto %s started", version)
	return ed.Run(ctx)
}
