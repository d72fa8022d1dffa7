// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package compress

import (
	"bytes"
	"strings"
	"testing"
)

func TestTagString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		tag  Tag
		want string
	}{
		{None, "none"},
		{Zstd, "zstd"},
		{LZ4, "lz4"},
		{Tag(99), "unknown(99)"},
	}
	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.want {
			t.Errorf("Tag(%d).String() = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestParseTag(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"none", "zstd", "lz4"} {
		tag, err := ParseTag(name)
		if err != nil {
			t.Fatalf("ParseTag(%q): %v", name, err)
		}
		if tag.String() != name {
			t.Errorf("ParseTag(%q).String() = %q", name, tag.String())
		}
	}
	if _, err := ParseTag("gzip"); err == nil {
		t.Error("ParseTag(gzip) should fail")
	}
}

// snapshot is JSON-like and repetitive enough to compress well.
var snapshot = []byte(`[` + strings.Repeat(
	`{"id":"PBUSVMD","summary":"Mobile","type":"phone_contact_method","address":"7076949626"},`, 50) +
	`{"id":"P1","summary":"s","type":"contact_method_reference","self":"x"}]`)

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	for _, tag := range []Tag{None, Zstd, LZ4} {
		tag := tag
		t.Run(tag.String(), func(t *testing.T) {
			t.Parallel()
			compressed, err := Compress(snapshot, tag)
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}
			if tag != None && len(compressed) >= len(snapshot) {
				t.Errorf("compressed %d bytes to %d", len(snapshot), len(compressed))
			}
			if Detect(compressed) != tag {
				t.Errorf("Detect = %v, want %v", Detect(compressed), tag)
			}

			decompressed, detected, err := Decompress(compressed)
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if detected != tag {
				t.Errorf("detected %v, want %v", detected, tag)
			}
			if !bytes.Equal(decompressed, snapshot) {
				t.Error("round trip changed the data")
			}
		})
	}
}

func TestCompressEmptyZstd(t *testing.T) {
	t.Parallel()
	compressed, err := Compress(nil, Zstd)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	decompressed, detected, err := Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if detected != Zstd || len(decompressed) != 0 {
		t.Errorf("got %d bytes tagged %v, want 0 bytes tagged zstd", len(decompressed), detected)
	}
}

func TestDecompressPassesThroughPlainInput(t *testing.T) {
	t.Parallel()
	for _, input := range []string{`[]`, "id: P1\n", "\xa1\x62id\x62P1", ""} {
		output, tag, err := Decompress([]byte(input))
		if err != nil {
			t.Fatalf("Decompress(%q): %v", input, err)
		}
		if tag != None || string(output) != input {
			t.Errorf("Decompress(%q) = %q, %v", input, output, tag)
		}
	}
}

func TestDecompressCorruptFrame(t *testing.T) {
	t.Parallel()
	for _, tag := range []Tag{Zstd, LZ4} {
		compressed, err := Compress(snapshot, tag)
		if err != nil {
			t.Fatalf("Compress: %v", err)
		}
		truncated := compressed[:len(compressed)/2]
		if _, _, err := Decompress(truncated); err == nil {
			t.Errorf("%v: Decompress of truncated frame succeeded", tag)
		}
	}
}

func TestCompressUnknownTag(t *testing.T) {
	t.Parallel()
	if _, err := Compress(snapshot, Tag(7)); err == nil {
		t.Error("Compress with unknown tag should fail")
	}
}
