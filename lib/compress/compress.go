// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Tag identifies a compression format.
type Tag uint8

const (
	// None passes data through unchanged.
	None Tag = iota

	// Zstd is a zstd frame at the default level. Best ratio for JSON
	// snapshots.
	Zstd

	// LZ4 is an LZ4 frame. Faster than zstd with a lower ratio.
	LZ4
)

// Frame magic numbers as they appear at the start of the data
// (little-endian on the wire).
var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
)

// String returns the name accepted by [ParseTag].
func (tag Tag) String() string {
	switch tag {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", tag)
	}
}

// ParseTag parses a tag from its name.
func ParseTag(name string) (Tag, error) {
	switch name {
	case "none":
		return None, nil
	case "zstd":
		return Zstd, nil
	case "lz4":
		return LZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q (want none, zstd, or lz4)", name)
	}
}

// zstd.Encoder and zstd.Decoder are safe for concurrent use with
// EncodeAll and DecodeAll, so one of each serves every call.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		// An empty snapshot still gets a frame, so Detect recognizes it.
		zstd.WithZeroFrames(true),
	)
	if err != nil {
		panic("compress: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("compress: zstd decoder initialization failed: " + err.Error())
	}
}

// Compress returns data compressed as a self-describing frame in the
// given format. For None it returns data unchanged (no copy).
func Compress(data []byte, tag Tag) ([]byte, error) {
	switch tag {
	case None:
		return data, nil
	case Zstd:
		return zstdEncoder.EncodeAll(data, nil), nil
	case LZ4:
		return compressLZ4(data)
	default:
		return nil, fmt.Errorf("unsupported compression tag: %d", tag)
	}
}

// Detect reports the format of data from its frame magic. Anything
// without a recognized magic is None.
func Detect(data []byte) Tag {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return Zstd
	case bytes.HasPrefix(data, lz4Magic):
		return LZ4
	default:
		return None
	}
}

// Decompress detects the frame format of data and decompresses it,
// returning the detected tag. Data that is not a zstd or LZ4 frame is
// returned unchanged with tag None; JSON, YAML and CBOR documents
// never begin with either magic.
func Decompress(data []byte) ([]byte, Tag, error) {
	tag := Detect(data)
	switch tag {
	case Zstd:
		result, err := zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, tag, fmt.Errorf("zstd decompress: %w", err)
		}
		return result, tag, nil
	case LZ4:
		result, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, tag, fmt.Errorf("lz4 decompress: %w", err)
		}
		return result, tag, nil
	default:
		return data, None, nil
	}
}

func compressLZ4(data []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer := lz4.NewWriter(&buffer)
	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	return buffer.Bytes(), nil
}
