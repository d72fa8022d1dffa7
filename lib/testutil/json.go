// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
)

// TB is the subset of testing.TB the helpers need. Accepting an
// interface lets the helpers' own tests pass a recorder.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// RequireJSONEqual fails the test unless got and want decode to
// deep-equal generic values. Numbers are compared as json.Number so
// 1 and 1.0 differ, matching how the wire format distinguishes them.
func RequireJSONEqual(t TB, got, want []byte) {
	t.Helper()
	gotValue, err := decodeGeneric(got)
	if err != nil {
		t.Fatalf("decoding got: %v\n%s", err, got)
	}
	wantValue, err := decodeGeneric(want)
	if err != nil {
		t.Fatalf("decoding want: %v\n%s", err, want)
	}
	if !reflect.DeepEqual(gotValue, wantValue) {
		t.Fatalf("JSON values differ\n got: %s\nwant: %s", got, want)
	}
}

// ObjectKeys returns the top-level keys of a JSON object in wire order.
func ObjectKeys(t TB, data []byte) []string {
	t.Helper()
	decoder := json.NewDecoder(bytes.NewReader(data))
	keys, err := readObjectKeys(decoder)
	if err != nil {
		t.Fatalf("reading object keys: %v\n%s", err, data)
	}
	return keys
}

// ArrayObjectKeys returns, for each object in a top-level JSON array,
// its keys in wire order.
func ArrayObjectKeys(t TB, data []byte) [][]string {
	t.Helper()
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(decoder, '['); err != nil {
		t.Fatalf("reading array: %v\n%s", err, data)
	}
	var result [][]string
	for decoder.More() {
		keys, err := readObjectKeys(decoder)
		if err != nil {
			t.Fatalf("reading element %d: %v\n%s", len(result), err, data)
		}
		result = append(result, keys)
	}
	return result
}

// ReadFixture returns the contents of testdata/name relative to the
// test's working directory (the package directory under go test).
func ReadFixture(t TB, name string) []byte {
	t.Helper()
	path := filepath.Join("testdata", name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading fixture %s: %v", path, err)
	}
	return data
}

func decodeGeneric(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}

// readObjectKeys consumes one object from decoder, skipping over each
// value, and returns its keys.
func readObjectKeys(decoder *json.Decoder) ([]string, error) {
	if err := expectDelim(decoder, '{'); err != nil {
		return nil, err
	}
	var keys []string
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		key, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", token)
		}
		keys = append(keys, key)
		var skipped json.RawMessage
		if err := decoder.Decode(&skipped); err != nil {
			return nil, fmt.Errorf("value of %q: %w", key, err)
		}
	}
	if err := expectDelim(decoder, '}'); err != nil {
		return nil, err
	}
	return keys, nil
}

func expectDelim(decoder *json.Decoder, want json.Delim) error {
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != want {
		return fmt.Errorf("expected %q, got %v", want, token)
	}
	return nil
}
