// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"io"
	"os"

	"github.com/bureau-foundation/pagerduty/cmd/pagerduty-contact-methods/cli"
)

// environment holds the streams commands read and write. Tests
// substitute buffers.
type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Root returns the pagerduty-contact-methods command tree bound to the
// process's standard streams.
func Root() *cli.Command {
	return newRoot(&environment{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr})
}

func newRoot(env *environment) *cli.Command {
	return &cli.Command{
		Name:    "pagerduty-contact-methods",
		Summary: "Decode, validate, and re-encode PagerDuty contact methods",
		Description: `Tools for PagerDuty contact method payloads: the polymorphic
objects in a user's contact_methods list, distinguished by their "type"
field.

Every command reads a single object or an array of objects from a
trailing file argument, or from stdin when no file is given. Input may
be JSON, JSON with comments, YAML, or CBOR, optionally compressed with
zstd or lz4; the syntax and compression are detected automatically
unless --input-format is given.

Settings can be stored in a YAML config file named by --config or the
PAGERDUTY_CONFIG environment variable. Flags set on the command line
take precedence over the file.`,
		HelpOutput: env.stderr,
		Subcommands: []*cli.Command{
			decodeCommand(env),
			encodeCommand(env),
			validateCommand(env),
			checkCommand(env),
			digestCommand(env),
			diagCommand(env),
		},
		Examples: []cli.Example{
			{
				Description: "List the contact methods in an API response",
				Command:     "pagerduty-contact-methods decode contact_methods.json",
			},
			{
				Description: "Fail a CI step if any element does not resolve",
				Command:     "pagerduty-contact-methods validate testdata/contact_methods.json",
			},
			{
				Description: "Store a compressed canonical snapshot",
				Command:     "pagerduty-contact-methods encode --compression zstd < response.json > snapshot.json.zst",
			},
		},
	}
}
