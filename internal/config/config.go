package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config represents an optional camtcsv.yaml configuration file.
type Config struct {
	Output    string `yaml:"output"`
	Delimiter string `yaml:"delimiter"`
	Header    *bool  `yaml:"header,omitempty"`
}

// Default returns the built-in defaults used when no config file exists.
func Default() *Config {
	header := true
	return &Config{
		Output:    "output.csv",
		Delimiter: ";",
		Header:    &header,
	}
}

// Load reads a camtcsv.yaml file from disk and fills unset fields from the
// defaults. The delimiter must be exactly one character.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	def := Default()
	if cfg.Output == "" {
		cfg.Output = def.Output
	}
	if cfg.Delimiter == "" {
		cfg.Delimiter = def.Delimiter
	}
	if cfg.Header == nil {
		cfg.Header = def.Header
	}

	if utf8.RuneCountInString(cfg.Delimiter) != 1 {
		return nil, fmt.Errorf("delimiter must be a single character, got %q", cfg.Delimiter)
	}
	return &cfg, nil
}

// DelimiterRune returns the configured delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}
