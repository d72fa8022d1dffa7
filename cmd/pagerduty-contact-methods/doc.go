// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Pagerduty-contact-methods decodes, validates, and re-encodes
// PagerDuty contact method payloads.
//
// Subcommands:
//
//	decode    resolve each element and list it
//	encode    write the canonical JSON, YAML, or CBOR encoding
//	validate  report every element that fails to resolve
//	check     verify that decode then encode preserves the input
//	digest    print BLAKE3 fingerprints of the elements and collection
//	diag      show the canonical CBOR encoding in diagnostic notation
//
// Input comes from a trailing file argument or stdin, in JSON, JSONC,
// YAML, or CBOR, optionally zstd- or lz4-compressed. Run with --help
// for flags, or --version for build information.
package main
