// ABOUTME: CLI flags shared by the editor and keys commands
// ABOUTME: Flags override values loaded from the YAML config files

package main

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/mauromedda/hecto-go/internal/config"
)

type cliArgs struct {
	configPath   string
	logFile      string
	logLevel     string
	pollInterval time.Duration
	mouse        bool
}

func (a *cliArgs) register(fs *pflag.FlagSet) {
	fs.StringVar(&a.configPath, "config", "", "Read settings from this file instead of ~/.hecto and .hecto")
	fs.StringVar(&a.logFile, "log-file", "", "Append diagnostics to this file (default: discarded)")
	fs.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	fs.DurationVar(&a.pollInterval, "poll-interval", config.DefaultPollInterval, "Input wake interval")
	fs.BoolVar(&a.mouse, "mouse", false, "Enable mouse reporting")
}

// applyTo overlays every flag the user set explicitly onto s.
func (a *cliArgs) applyTo(fs *pflag.FlagSet, s *config.Settings) {
	if fs.Changed("log-file") {
		s.Log.File = a.logFile
	}
	if fs.Changed("log-level") {
		s.Log.Level = a.logLevel
	}
	if fs.Changed("poll-interval") && a.pollInterval > 0 {
		s.PollInterval = config.Duration(a.pollInterval)
	}
	if fs.Changed("mouse") {
		on := a.mouse
		s.Mouse = &on
	}
}
