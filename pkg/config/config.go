// Package config loads uvw's layered configuration with koanf: embedded
// defaults, the user's TOML file, $WORKON_HOME and UVW_ environment
// variables, in increasing order of precedence.
package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/uvw/pkg/errors"
	"github.com/arthur-debert/uvw/pkg/venv"
)

// Config is the effective configuration.
type Config struct {
	WorkonHome string         `koanf:"workon_home" toml:"workon_home"`
	Patterns   PatternsConfig `koanf:"patterns" toml:"patterns"`
	Link       LinkConfig     `koanf:"link" toml:"link"`
	Kernels    KernelsConfig  `koanf:"kernels" toml:"kernels"`
	Tools      ToolsConfig    `koanf:"tools" toml:"tools"`

	// File is the user config file that was loaded, if any
	File string `koanf:"-" toml:"-"`
}

// PatternsConfig controls environment discovery under project directories.
type PatternsConfig struct {
	Venv        []string `koanf:"venv" toml:"venv"`
	UseDefaults bool     `koanf:"use_defaults" toml:"use_defaults"`
}

// LinkConfig controls how links are written.
type LinkConfig struct {
	Resolve bool `koanf:"resolve" toml:"resolve"`
}

// KernelsConfig controls Jupyter kernel installation.
type KernelsConfig struct {
	DisplayFormat string `koanf:"display_format" toml:"display_format"`
	User          bool   `koanf:"user" toml:"user"`
	Resolve       bool   `koanf:"resolve" toml:"resolve"`
}

// ToolsConfig names the external executables.
type ToolsConfig struct {
	UV      string `koanf:"uv" toml:"uv"`
	Jupyter string `koanf:"jupyter" toml:"jupyter"`
}

// VenvPatterns returns the ordered pattern set for this configuration.
func (c *Config) VenvPatterns() ([]string, error) {
	return venv.Patterns(c.Patterns.Venv, c.Patterns.UseDefaults)
}

// TOML renders the configuration as a config file.
func (c *Config) TOML() (string, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(out), nil
}
