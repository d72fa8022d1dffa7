// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable [Load] reads the config path
// from.
const EnvVar = "PAGERDUTY_CONFIG"

// Accepted values for the enumerated settings.
var (
	InputFormats       = []string{"auto", "json", "jsonc", "yaml", "cbor"}
	OutputFormats      = []string{"json", "yaml", "cbor"}
	CompressionFormats = []string{"none", "zstd", "lz4"}
	ColorModes         = []string{"auto", "always", "never"}
)

// MaxIndent bounds output.indent.
const MaxIndent = 8

// Config holds the settings shared by every contact method command.
type Config struct {
	// Input configures how payloads are read.
	Input InputConfig `yaml:"input"`

	// Output configures how payloads are written.
	Output OutputConfig `yaml:"output"`
}

// InputConfig configures how payloads are read.
type InputConfig struct {
	// Format is the input syntax. "auto" detects compressed frames,
	// CBOR, and JSON or YAML from the first significant byte.
	// Default: auto
	Format string `yaml:"format"`
}

// OutputConfig configures how payloads are written.
type OutputConfig struct {
	// Format is the output syntax.
	// Default: json
	Format string `yaml:"format"`

	// Indent is the number of spaces per JSON nesting level. Zero
	// writes compact JSON.
	// Default: 2
	Indent int `yaml:"indent"`

	// Compression wraps the output in a zstd or lz4 frame.
	// Default: none
	Compression string `yaml:"compression"`

	// Color controls syntax highlighting of text output. "auto"
	// highlights only when stdout is a terminal.
	// Default: auto
	Color string `yaml:"color"`
}

// Default returns the configuration used when no file is given. Loaded
// files are merged over it, so a file only needs the keys it changes.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Format: "auto",
		},
		Output: OutputConfig{
			Format:      "json",
			Indent:      2,
			Compression: "none",
			Color:       "auto",
		},
	}
}

// Load loads configuration from the file named by PAGERDUTY_CONFIG.
// It fails when the variable is unset; callers that treat the file as
// optional check [EnvVar] themselves and fall back to [Default].
func Load() (*Config, error) {
	configPath := os.Getenv(EnvVar)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of a config file, or use --config flag", EnvVar)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from path, merged over [Default], and
// validates the result. Unknown keys are errors so a misspelled
// setting does not silently fall back to its default.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config data merged over [Default] and validates
// it. Empty data yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(InputFormats, c.Input.Format) {
		errs = append(errs, fmt.Errorf("input.format %q must be one of: %v", c.Input.Format, InputFormats))
	}
	if !slices.Contains(OutputFormats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format %q must be one of: %v", c.Output.Format, OutputFormats))
	}
	if c.Output.Indent < 0 || c.Output.Indent > MaxIndent {
		errs = append(errs, fmt.Errorf("output.indent %d must be between 0 and %d", c.Output.Indent, MaxIndent))
	}
	if !slices.Contains(CompressionFormats, c.Output.Compression) {
		errs = append(errs, fmt.Errorf("output.compression %q must be one of: %v", c.Output.Compression, CompressionFormats))
	}
	if !slices.Contains(ColorModes, c.Output.Color) {
		errs = append(errs, fmt.Errorf("output.color %q must be one of: %v", c.Output.Color, ColorModes))
	}

	return errors.Join(errs...)
}
