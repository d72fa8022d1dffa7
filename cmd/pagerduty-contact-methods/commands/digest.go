// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/pagerduty/cmd/pagerduty-contact-methods/cli"
	"github.com/bureau-foundation/pagerduty/lib/contactmethod"
	"github.com/bureau-foundation/pagerduty/lib/fingerprint"
)

func digestCommand(env *environment) *cli.Command {
	var (
		opts   options
		full   bool
		asJSON bool
	)

	return &cli.Command{
		Name:    "digest",
		Summary: "Print fingerprints of each contact method and the collection",
		Description: `Print a BLAKE3 fingerprint of every element's canonical encoding and
one for the whole ordered collection. Inputs that differ only in key
order, whitespace, or syntax (JSON, YAML, CBOR) share fingerprints, so
comparing digests tells whether a snapshot's content changed.

Fingerprints are shown as short "cm-" references unless --full is set.`,
		Usage: "pagerduty-contact-methods digest [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Compare two snapshots",
				Command:     "diff <(pagerduty-contact-methods digest old.json) <(pagerduty-contact-methods digest new.json.zst)",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := opts.newFlagSet("digest")
			flagSet.BoolVar(&full, "full", false, "print full 64-character fingerprints")
			flagSet.BoolVar(&asJSON, "json", false, "output as JSON (always full fingerprints)")
			return flagSet
		},
		Run: func(args []string) error {
			logger := opts.logger(env, "digest")
			_, input, err := opts.loadPayload(args, env, logger)
			if err != nil {
				return err
			}
			methods, err := input.methods()
			if err != nil {
				return err
			}
			report := digestMethods(methods)
			if asJSON {
				return writeJSON(env.stdout, report)
			}
			return writeDigestTable(env.stdout, report, full)
		},
	}
}

type methodDigest struct {
	Index       int    `json:"index"`
	ID          string `json:"id"`
	Fingerprint string `json:"fingerprint"`

	hash fingerprint.Hash
}

type digestReport struct {
	Methods    []methodDigest `json:"methods"`
	Collection string         `json:"collection"`

	collection fingerprint.Hash
}

func digestMethods(methods []contactmethod.ContactMethod) digestReport {
	report := digestReport{Methods: make([]methodDigest, len(methods))}
	for index, method := range methods {
		hash := fingerprint.Method(method)
		report.Methods[index] = methodDigest{
			Index:       index,
			ID:          method.Ref().ID,
			Fingerprint: fingerprint.Format(hash),
			hash:        hash,
		}
	}
	report.collection = fingerprint.Collection(methods)
	report.Collection = fingerprint.Format(report.collection)
	return report
}

func writeDigestTable(w io.Writer, report digestReport, full bool) error {
	format := fingerprint.ShortRef
	if full {
		format = fingerprint.Format
	}
	table := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	for _, method := range report.Methods {
		fmt.Fprintf(table, "%s\t%d\t%s\n", format(method.hash), method.Index, method.ID)
	}
	fmt.Fprintf(table, "%s\tcollection\t%s\n", format(report.collection), plural(len(report.Methods)))
	return table.Flush()
}
