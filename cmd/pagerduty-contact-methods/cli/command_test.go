// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	t.Parallel()
	var called string
	root := &Command{
		Name: "pagerduty-contact-methods",
		Subcommands: []*Command{
			{Name: "decode", Run: func(args []string) error { called = "decode"; return nil }},
			{Name: "encode", Run: func(args []string) error { called = "encode"; return nil }},
		},
	}

	if err := root.Execute([]string{"encode"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "encode" {
		t.Errorf("dispatched to %q, want %q", called, "encode")
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	t.Parallel()
	var format string
	var positional []string
	command := &Command{
		Name: "encode",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
			flagSet.StringVar(&format, "format", "json", "output format")
			return flagSet
		},
		Run: func(args []string) error {
			positional = args
			return nil
		},
	}

	if err := command.Execute([]string{"--format", "yaml", "methods.json"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if format != "yaml" {
		t.Errorf("format = %q, want yaml", format)
	}
	if len(positional) != 1 || positional[0] != "methods.json" {
		t.Errorf("args = %v, want [methods.json]", positional)
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	t.Parallel()
	command := &Command{
		Name: "encode",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
			flagSet.String("compression", "none", "compression")
			flagSet.Int("indent", 2, "indent")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--compresion", "zstd"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	message := err.Error()
	if !strings.Contains(message, "did you mean --compression") {
		t.Errorf("error = %q, want suggestion for --compression", message)
	}
	if !strings.Contains(message, "--help") {
		t.Errorf("error = %q, should point to --help", message)
	}

	err = command.Execute([]string{"--zzzzzzzzz"})
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %v, want no suggestion for a distant flag", err)
	}
}

func TestCommand_Execute_UnknownSubcommand(t *testing.T) {
	t.Parallel()
	root := &Command{
		Name: "pagerduty-contact-methods",
		Subcommands: []*Command{
			{Name: "validate"},
			{Name: "digest"},
		},
	}

	err := root.Execute([]string{"valdate"})
	if err == nil || !strings.Contains(err.Error(), `did you mean "validate"`) {
		t.Errorf("error = %v, want suggestion for validate", err)
	}

	err = root.Execute([]string{"zzzzzzz"})
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %v, want no suggestion", err)
	}
}

func TestCommand_Execute_Help(t *testing.T) {
	t.Parallel()
	for _, args := range [][]string{{"-h"}, {"--help"}, {"help"}, {"methods.json", "--help"}} {
		var help bytes.Buffer
		ran := false
		command := &Command{
			Name:       "check",
			Summary:    "Verify the round-trip property",
			HelpOutput: &help,
			Flags: func() *pflag.FlagSet {
				return pflag.NewFlagSet("check", pflag.ContinueOnError)
			},
			Run: func(args []string) error { ran = true; return nil },
		}
		if err := command.Execute(args); err != nil {
			t.Errorf("Execute(%v) error: %v", args, err)
		}
		if ran {
			t.Errorf("Execute(%v) ran the command instead of printing help", args)
		}
		if !strings.Contains(help.String(), "Verify the round-trip property") {
			t.Errorf("Execute(%v) help = %q", args, help.String())
		}
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	t.Parallel()
	var help bytes.Buffer
	root := &Command{
		Name:        "pagerduty-contact-methods",
		HelpOutput:  &help,
		Subcommands: []*Command{{Name: "decode", Summary: "Decode contact methods"}},
	}
	if err := root.Execute(nil); err == nil {
		t.Error("Execute(nil) = nil, want subcommand required")
	}
	if !strings.Contains(help.String(), "decode") {
		t.Errorf("help does not list subcommands: %q", help.String())
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	t.Parallel()
	root := &Command{Name: "pagerduty-contact-methods"}
	encode := &Command{
		Name:        "encode",
		Description: "Re-encode contact methods canonically.",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
			flagSet.String("format", "json", "output format: json, yaml, or cbor")
			return flagSet
		},
		Examples: []Example{{Description: "Write YAML", Command: "pagerduty-contact-methods encode --format yaml"}},
		parent:   root,
	}

	var output bytes.Buffer
	encode.PrintHelp(&output)
	help := output.String()
	for _, want := range []string{
		"Re-encode contact methods canonically.",
		"Usage:\n  pagerduty-contact-methods encode [flags]",
		"--format",
		"output format: json, yaml, or cbor",
		"# Write YAML",
	} {
		if !strings.Contains(help, want) {
			t.Errorf("help missing %q:\n%s", want, help)
		}
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()
	var err error = &ExitError{Code: 3}
	coder, ok := err.(interface{ ExitCode() int })
	if !ok || coder.ExitCode() != 3 {
		t.Errorf("ExitError does not report code 3")
	}
	if err.Error() != "exit code 3" {
		t.Errorf("Error() = %q", err.Error())
	}
}
