// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/pagerduty/cmd/pagerduty-contact-methods/cli"
)

func encodeCommand(env *environment) *cli.Command {
	var opts options

	return &cli.Command{
		Name:    "encode",
		Summary: "Re-encode contact methods in canonical form",
		Description: `Resolve the input and write it back out in canonical form: the
reference fields first (id, summary, type, self, then html_url when
present), followed by the variant's own fields in a fixed order.
Fields that do not belong to an element's variant are dropped.

The output is always an array, even for a single input object.

--format selects JSON, YAML, or CBOR. JSON and YAML keep the canonical
key order; CBOR uses Core Deterministic Encoding, which sorts keys.
--compression wraps the output in a zstd or lz4 frame that every
command here reads back transparently.`,
		Usage: "pagerduty-contact-methods encode [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Canonical, compact JSON",
				Command:     "pagerduty-contact-methods encode --indent 0 contact_methods.json",
			},
			{
				Description: "Convert a YAML fixture to CBOR",
				Command:     "pagerduty-contact-methods encode --format cbor fixture.yaml > fixture.cbor",
			},
			{
				Description: "Write a zstd-compressed snapshot",
				Command:     "pagerduty-contact-methods encode --compression zstd < response.json > snapshot.json.zst",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := opts.newFlagSet("encode")
			opts.addOutputFlags(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			logger := opts.logger(env, "encode")
			settings, input, err := opts.loadPayload(args, env, logger)
			if err != nil {
				return err
			}
			methods, err := input.methods()
			if err != nil {
				return err
			}

			data, lexer, err := render(methods, settings.Output)
			if err != nil {
				return err
			}
			logger.Debug("encoded contact methods",
				"count", len(methods),
				"format", settings.Output.Format,
				"compression", settings.Output.Compression,
				"bytes", len(data),
			)
			return writeRendered(env.stdout, data, lexer, settings.Output)
		},
	}
}
