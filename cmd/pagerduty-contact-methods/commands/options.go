// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/pagerduty/cmd/pagerduty-contact-methods/cli"
	"github.com/bureau-foundation/pagerduty/lib/config"
)

// options holds the flags shared by every subcommand. Flag defaults
// mirror config.Default so help output shows the effective defaults;
// only flags set explicitly override the config file.
type options struct {
	configPath  string
	inputFormat string
	verbose     bool

	outputFormat string
	indent       int
	compression  string
	color        string

	// flagSet is the most recently bound set. Execute parses the set it
	// gets from Flags and then calls Run, so in Run this is the parsed
	// one.
	flagSet *pflag.FlagSet
}

// newFlagSet returns a flag set with the input flags every command
// accepts.
func (o *options) newFlagSet(name string) *pflag.FlagSet {
	defaults := config.Default()
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.StringVar(&o.configPath, "config", "",
		"YAML config file (default: $"+config.EnvVar+" if set)")
	flagSet.StringVarP(&o.inputFormat, "input-format", "i", defaults.Input.Format,
		"input syntax: "+strings.Join(config.InputFormats, ", "))
	flagSet.BoolVarP(&o.verbose, "verbose", "v", false, "log debug details to stderr")
	o.flagSet = flagSet
	return flagSet
}

// addOutputFlags adds the flags that control rendered output.
func (o *options) addOutputFlags(flagSet *pflag.FlagSet) {
	defaults := config.Default()
	flagSet.StringVarP(&o.outputFormat, "format", "f", defaults.Output.Format,
		"output syntax: "+strings.Join(config.OutputFormats, ", "))
	flagSet.IntVar(&o.indent, "indent", defaults.Output.Indent,
		"spaces per JSON nesting level, 0 for compact output")
	flagSet.StringVar(&o.compression, "compression", defaults.Output.Compression,
		"compress output: "+strings.Join(config.CompressionFormats, ", "))
	flagSet.StringVar(&o.color, "color", defaults.Output.Color,
		"highlight text output: "+strings.Join(config.ColorModes, ", "))
}

// settings loads the config file, if any, and applies explicitly set
// flags over it.
func (o *options) settings() (*config.Config, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	if o.changed("input-format") {
		cfg.Input.Format = o.inputFormat
	}
	if o.changed("format") {
		cfg.Output.Format = o.outputFormat
	}
	if o.changed("indent") {
		cfg.Output.Indent = o.indent
	}
	if o.changed("compression") {
		cfg.Output.Compression = o.compression
	}
	if o.changed("color") {
		cfg.Output.Color = o.color
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func (o *options) loadConfig() (*config.Config, error) {
	switch {
	case o.configPath != "":
		return config.LoadFile(o.configPath)
	case os.Getenv(config.EnvVar) != "":
		return config.Load()
	default:
		return config.Default(), nil
	}
}

func (o *options) changed(name string) bool {
	return o.flagSet != nil && o.flagSet.Changed(name)
}

// logger returns the command's logger, at debug level with --verbose.
func (o *options) logger(env *environment, command string) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return cli.NewCommandLogger(env.stderr, level).With("command", command)
}
