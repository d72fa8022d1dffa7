// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/pagerduty/cmd/pagerduty-contact-methods/commands"
	"github.com/bureau-foundation/pagerduty/lib/version"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		// validate and check print their own report and return an
		// ExitError; don't add an "error:" line to it.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 1 && (args[0] == "--version" || args[0] == "version") {
		fmt.Printf("pagerduty-contact-methods %s\n", version.Full())
		return nil
	}
	return commands.Root().Execute(args)
}
