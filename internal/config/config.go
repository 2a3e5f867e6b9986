// ABOUTME: Settings loading with global + project config merge
// ABOUTME: YAML configuration via gopkg.in/yaml.v3; project values override global ones

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPollInterval is the input wake interval used when none is configured.
const DefaultPollInterval = 16 * time.Millisecond

// Settings holds the merged configuration. Mouse is nil until some layer
// sets it, so a later layer can switch it off again.
type Settings struct {
	PollInterval Duration    `yaml:"poll_interval,omitempty"`
	Mouse        *bool       `yaml:"mouse,omitempty"`
	Log          LogSettings `yaml:"log,omitempty"`
}

// LogSettings controls where diagnostics go. An empty File discards them.
type LogSettings struct {
	File  string `yaml:"file,omitempty"`
	Level string `yaml:"level,omitempty"`
}

// MouseEnabled reports whether mouse reporting is on. Unset means off.
func (s *Settings) MouseEnabled() bool {
	return s.Mouse != nil && *s.Mouse
}

// Duration is a time.Duration that reads Go duration strings ("16ms") from YAML.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("line %d: duration must be a string: %w", value.Line, err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	if parsed < 0 {
		return fmt.Errorf("line %d: negative duration %q", value.Line, s)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		PollInterval: Duration(DefaultPollInterval),
		Log:          LogSettings{Level: "info"},
	}
}

// Load reads and merges global and project-local settings on top of the
// defaults. Project settings override global settings. Missing files are
// not an error.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(merge(Defaults(), global), project)
	ResolveEnvVars(merged)
	return merged, nil
}

// LoadFile reads a single explicit config file on top of the defaults.
// Unlike Load, a missing file is an error.
func LoadFile(path string) (*Settings, error) {
	s, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	merged := merge(Defaults(), s)
	ResolveEnvVars(merged)
	return merged, nil
}

// loadFile reads Settings from a YAML file. A missing file yields zero
// Settings alongside an error matching fs.ErrNotExist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays non-zero override values onto base.
func merge(base, override *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if override == nil {
		return base
	}

	result := *base

	if override.PollInterval != 0 {
		result.PollInterval = override.PollInterval
	}
	if override.Mouse != nil {
		on := *override.Mouse
		result.Mouse = &on
	}
	if override.Log.File != "" {
		result.Log.File = override.Log.File
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	return &result
}
