// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/pagerduty/cmd/pagerduty-contact-methods/cli"
	"github.com/bureau-foundation/pagerduty/lib/contactmethod"
)

func validateCommand(env *environment) *cli.Command {
	var opts options

	return &cli.Command{
		Name:    "validate",
		Summary: "Check that every element resolves",
		Description: `Resolve every element of the input and report each one that fails:
a missing required field, an unknown "type" value, or a field of the
wrong JSON type. Unlike decode, validation continues past failures so
one run shows them all.

Exits 0 and prints "valid: N contact methods" when everything resolves,
or exits 1 after listing the failures. Input that is not a parseable
document at all is an error.`,
		Usage: "pagerduty-contact-methods validate [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Validate a fixture file",
				Command:     "pagerduty-contact-methods validate testdata/contact_methods.json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return opts.newFlagSet("validate")
		},
		Run: func(args []string) error {
			logger := opts.logger(env, "validate")
			_, input, err := opts.loadPayload(args, env, logger)
			if err != nil {
				return err
			}
			records, err := input.records()
			if err != nil {
				return err
			}
			return validateRecords(env.stdout, records)
		},
	}
}

// validateRecords resolves every record and reports the outcome to w.
// Failures return an ExitError after the report is written.
func validateRecords(w io.Writer, records []contactmethod.Record) error {
	_, err := contactmethod.ResolveAll(records)
	if err == nil {
		fmt.Fprintf(w, "valid: %s\n", plural(len(records)))
		return nil
	}

	failures := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		failures = joined.Unwrap()
	}
	for _, failure := range failures {
		fmt.Fprintf(w, "invalid: %v\n", failure)
	}
	fmt.Fprintf(w, "%d of %s failed to resolve\n", len(failures), plural(len(records)))
	return &cli.ExitError{Code: 1}
}
