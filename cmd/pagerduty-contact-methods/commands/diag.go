// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/pagerduty/cmd/pagerduty-contact-methods/cli"
	"github.com/bureau-foundation/pagerduty/lib/codec"
	"github.com/bureau-foundation/pagerduty/lib/contactmethod"
)

func diagCommand(env *environment) *cli.Command {
	var opts options

	return &cli.Command{
		Name:    "diag",
		Summary: "Show the canonical CBOR encoding in diagnostic notation",
		Description: `Resolve the input, encode it as CBOR the way "encode --format cbor"
does, and print RFC 8949 diagnostic notation for the result.

Diagnostic notation shows the CBOR types that JSON output hides: for
example, country_code is an unsigned integer and the sounds list is an
array of maps.`,
		Usage: "pagerduty-contact-methods diag [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Inspect a CBOR snapshot",
				Command:     "pagerduty-contact-methods diag snapshot.cbor",
			},
		},
		Flags: func() *pflag.FlagSet {
			return opts.newFlagSet("diag")
		},
		Run: func(args []string) error {
			logger := opts.logger(env, "diag")
			_, input, err := opts.loadPayload(args, env, logger)
			if err != nil {
				return err
			}
			methods, err := input.methods()
			if err != nil {
				return err
			}
			return writeDiagnostic(env.stdout, methods)
		},
	}
}

func writeDiagnostic(w io.Writer, methods []contactmethod.ContactMethod) error {
	data, err := contactmethod.EncodeCollectionCBOR(methods)
	if err != nil {
		return fmt.Errorf("encode CBOR: %w", err)
	}
	notation, err := codec.Diagnose(data)
	if err != nil {
		return fmt.Errorf("diagnose CBOR: %w", err)
	}
	_, err = fmt.Fprintln(w, notation)
	return err
}
