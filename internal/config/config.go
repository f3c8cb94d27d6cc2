// Package config loads the optional solve-settings file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Settings mirrors the yaml solve-settings file. All fields are optional;
// flags given explicitly on the command line take precedence.
type Settings struct {
	Rows     int    `yaml:"rows"`
	AllHoles bool   `yaml:"all_holes"`
	Memo     bool   `yaml:"memo"`
	Timeout  string `yaml:"timeout"` // time.ParseDuration form, e.g. "30s"
	Board    bool   `yaml:"board"`
	Quiet    bool   `yaml:"quiet"`
}

// Load reads and parses a settings file.
func Load(path string) (*Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if _, err := s.ParseTimeout(); err != nil {
		return nil, err
	}

	return &s, nil
}

// ParseTimeout converts the Timeout field to a duration. An empty field
// means no deadline.
func (s *Settings) ParseTimeout() (time.Duration, error) {
	if s.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", s.Timeout, err)
	}
	return d, nil
}
