// Package config defines the configuration types for the mdscan CLI.
// These are pure data structures; loading lives alongside in this
// package and the CLI decides precedence.
package config

import "fmt"

// OutputFormat specifies how the scanned event stream is rendered.
type OutputFormat string

const (
	// FormatPretty renders a styled, human-readable event listing.
	FormatPretty OutputFormat = "pretty"

	// FormatYAML renders the event stream as YAML.
	FormatYAML OutputFormat = "yaml"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	return f == FormatPretty || f == FormatYAML
}

// ColorMode controls colorized output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (m ColorMode) IsValid() bool {
	return m == ColorAuto || m == ColorAlways || m == ColorNever
}

// Config holds CLI defaults, typically loaded from .mdscan.yaml.
type Config struct {
	// Format is the default output format.
	Format OutputFormat `yaml:"format"`

	// Color is the default color mode.
	Color ColorMode `yaml:"color"`

	// LogLevel is the default log level: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Construct is the default construct to scan with.
	Construct string `yaml:"construct"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Format:    FormatPretty,
		Color:     ColorAuto,
		LogLevel:  "info",
		Construct: "definition-title",
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !c.Format.IsValid() {
		return fmt.Errorf("invalid output format %q", c.Format)
	}
	if !c.Color.IsValid() {
		return fmt.Errorf("invalid color mode %q", c.Color)
	}
	return nil
}
