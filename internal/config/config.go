// Package config holds the settings of the huffstat command.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an output format other than "text" or
// "json".
var ErrUnknownFormat = errors.New("unknown output format")

// Config holds the huffstat settings.  Zero values are filled in from
// Default by Load.
type Config struct {
	// Format selects the output format: "text" or "json".
	Format string `yaml:"format"`

	// Charset names the encoding of the input text.
	// Default: "utf-8"
	Charset string `yaml:"charset"`

	// Precision is the number of decimal places shown for the compression
	// ratio.
	// Default: 2
	Precision int `yaml:"precision"`

	// Compare lists the general-purpose codecs to measure the input
	// against in reports, e.g. ["zstd", "s2", "lz4"].  Empty disables the
	// comparison.
	Compare []string `yaml:"compare"`

	// MaxInputBytes caps how much input is read.  0 means no limit.
	MaxInputBytes int64 `yaml:"max_input_bytes"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:    "text",
		Charset:   "utf-8",
		Precision: 2,
	}
}

// Load reads the YAML file at path on top of Default, then applies
// environment overrides.  An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %q: %w", path, err)
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from HUFFSTAT_* environment variables.
// Malformed numeric values are ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("HUFFSTAT_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("HUFFSTAT_CHARSET"); v != "" {
		c.Charset = v
	}
	if v := os.Getenv("HUFFSTAT_PRECISION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Precision = n
		}
	}
	if v := os.Getenv("HUFFSTAT_COMPARE"); v != "" {
		c.Compare = splitList(v)
	}
	if v := os.Getenv("HUFFSTAT_MAX_INPUT_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.MaxInputBytes = n
		}
	}
}

// Validate checks the settings for consistency.
func (c Config) Validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	if c.Precision < 0 || c.Precision > 10 {
		return fmt.Errorf("precision must be between 0 and 10, got %d", c.Precision)
	}
	if c.MaxInputBytes < 0 {
		return fmt.Errorf("max_input_bytes must not be negative, got %d", c.MaxInputBytes)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}
