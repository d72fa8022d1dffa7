// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package compress reads and writes compressed contact method
// snapshots.
//
// Output is always a standard self-describing frame (zstd via
// klauspost/compress, LZ4 via pierrec/lz4), so files written here can
// be read with the zstd and lz4 command-line tools and vice versa.
// [Decompress] recognizes the format from the frame magic, so readers
// never need to be told which compression was used.
package compress
