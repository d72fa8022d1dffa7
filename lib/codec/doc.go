// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the shared CBOR encoding configuration.
//
// JSON is the wire format of the PagerDuty API and stays the primary
// format everywhere. CBOR is the compact binary alternative used for
// stored snapshots and for piping collections between tools. Every
// package that reads or writes CBOR goes through this package so the
// encoding is identical everywhere.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. CBOR
// output is therefore byte-stable, but it does not keep the key order
// that the JSON projection of a contact method uses.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// Types carry json tags only. fxamacker/cbor v2 reads json tags when
// cbor tags are absent, so a single tag controls the field name in both
// formats.
package codec
