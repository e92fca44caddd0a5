package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFiles are the file names searched for, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFiles = []string{
	".mdscan.yaml",
	".mdscan.yml",
}

// FromYAML parses a configuration from YAML bytes. Fields not present
// keep their built-in defaults.
func FromYAML(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return FromYAML(data)
}

// Discover searches upward from workDir for a config file, stopping at
// the filesystem root. Returns the empty string when none exists.
func Discover(workDir string) string {
	dir, err := filepath.Abs(workDir)
	if err != nil {
		return ""
	}

	for {
		for _, name := range configFiles {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// LoadOrDefault loads the explicit path when given, otherwise discovers
// a config from workDir, otherwise returns the built-in defaults. A
// missing discovered file is not an error; a missing explicit one is.
func LoadOrDefault(explicit, workDir string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}

	path := Discover(workDir)
	if path == "" {
		return DefaultConfig(), nil
	}

	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}
