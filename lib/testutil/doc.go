// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers.
//
// [RequireJSONEqual] compares two JSON documents as generic values, so
// key order and whitespace do not matter. This is the round-trip check:
// re-encoding a decoded payload must produce the same value, even
// though the encoder picks its own key order.
//
// [ObjectKeys] and [ArrayObjectKeys] return object keys in the order
// they appear on the wire, for asserting that an encoder emits a
// stable key order.
//
// [ReadFixture] loads a file from the calling package's testdata
// directory.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package depends on no other packages in this module.
package testutil
