// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package fingerprint computes stable BLAKE3 digests of contact methods
// and ordered collections of them.
//
// A fingerprint covers the canonical compact JSON encoding, not the
// input bytes, so two payloads that differ only in key order or
// whitespace share a fingerprint. Golden-file workflows compare
// fingerprints to tell whether a re-encoded snapshot changed.
//
// Each use of the hash has its own BLAKE3 key, so a method fingerprint
// can never equal a collection fingerprint even over the same bytes.
package fingerprint
