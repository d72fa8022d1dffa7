// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the contact
// method tools.
//
// The central type is [Command]: a named node with optional nested
// [Command.Subcommands], a [pflag.FlagSet] factory, and a Run function.
// [Command.Execute] handles flag parsing, subcommand routing, and help
// output with examples. Unknown subcommands and flags get a "did you
// mean" suggestion when one is within a Levenshtein distance of 3.
//
// Output helpers: [NewCommandLogger] builds the slog logger every
// command uses, [UseColor] and [Highlight] add chroma syntax
// highlighting on terminals, and [ExitError] lets a command exit
// non-zero after printing its own report.
package cli
