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
)

func decodeCommand(env *environment) *cli.Command {
	var (
		opts   options
		asJSON bool
	)

	return &cli.Command{
		Name:    "decode",
		Summary: "Resolve contact methods and list them",
		Description: `Resolve every element of the input into its contact method variant
and print one row per element: index, variant kind, id, type, label,
and address. Reference elements carry no label or address.

Decoding stops at the first element that fails to resolve; use
"validate" to see every failure at once.`,
		Usage: "pagerduty-contact-methods decode [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "List the contact methods in a response",
				Command:     "pagerduty-contact-methods decode contact_methods.json",
			},
			{
				Description: "Machine-readable summaries",
				Command:     "pagerduty-contact-methods decode --json < contact_methods.json",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := opts.newFlagSet("decode")
			flagSet.BoolVar(&asJSON, "json", false, "output summaries as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			logger := opts.logger(env, "decode")
			_, input, err := opts.loadPayload(args, env, logger)
			if err != nil {
				return err
			}
			methods, err := input.methods()
			if err != nil {
				return err
			}
			logger.Debug("decoded contact methods", "count", len(methods))

			summaries := summarize(methods)
			if asJSON {
				return writeJSON(env.stdout, summaries)
			}
			return writeSummaryTable(env.stdout, summaries)
		},
	}
}

// methodSummary is one row of decode output.
type methodSummary struct {
	Index   int    `json:"index"`
	Kind    string `json:"kind"`
	ID      string `json:"id"`
	Type    string `json:"type"`
	Label   string `json:"label,omitempty"`
	Address string `json:"address,omitempty"`
}

func summarize(methods []contactmethod.ContactMethod) []methodSummary {
	summaries := make([]methodSummary, len(methods))
	for index, method := range methods {
		reference := method.Ref()
		summary := methodSummary{
			Index: index,
			Kind:  method.Kind().String(),
			ID:    reference.ID,
			Type:  reference.Type,
		}
		switch method := method.(type) {
		case contactmethod.Email:
			summary.Label, summary.Address = method.Label, method.Address
		case contactmethod.Phone:
			summary.Label, summary.Address = method.Label, method.Address
		case contactmethod.SMS:
			summary.Label, summary.Address = method.Label, method.Address
		case contactmethod.PushNotification:
			summary.Label, summary.Address = method.Label, method.Address
		}
		summaries[index] = summary
	}
	return summaries
}

func writeSummaryTable(w io.Writer, summaries []methodSummary) error {
	table := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	fmt.Fprintln(table, "INDEX\tKIND\tID\tTYPE\tLABEL\tADDRESS")
	for _, summary := range summaries {
		fmt.Fprintf(table, "%d\t%s\t%s\t%s\t%s\t%s\n",
			summary.Index, summary.Kind, summary.ID, summary.Type,
			orDash(summary.Label), orDash(summary.Address))
	}
	return table.Flush()
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
