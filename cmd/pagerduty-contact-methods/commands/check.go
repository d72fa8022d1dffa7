// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"slices"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/pagerduty/cmd/pagerduty-contact-methods/cli"
	"github.com/bureau-foundation/pagerduty/lib/contactmethod"
	"github.com/bureau-foundation/pagerduty/lib/fingerprint"
)

func checkCommand(env *environment) *cli.Command {
	var opts options

	return &cli.Command{
		Name:    "check",
		Summary: "Verify that decoding and re-encoding preserves the input",
		Description: `Decode the input, encode it again, and compare the two as JSON values
(key order and whitespace ignored). Prints "round-trip ok" when they
match. Otherwise prints the first path where they differ and exits 1.

The comparison is strict: a field that does not belong to an element's
variant, or a null summary, is dropped or rewritten by encoding and so
counts as a difference. That makes check a test for whether a fixture
is already canonical.

The CBOR encoding is checked too: the collection must survive a CBOR
round trip with an unchanged fingerprint.`,
		Usage: "pagerduty-contact-methods check [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Verify a golden file",
				Command:     "pagerduty-contact-methods check testdata/contact_methods.json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return opts.newFlagSet("check")
		},
		Run: func(args []string) error {
			logger := opts.logger(env, "check")
			_, input, err := opts.loadPayload(args, env, logger)
			if err != nil {
				return err
			}
			return checkRoundTrip(env.stdout, input)
		},
	}
}

// checkRoundTrip decodes and re-encodes input and reports to w whether
// the result matches. A mismatch returns an ExitError.
func checkRoundTrip(w io.Writer, input *payload) error {
	methods, err := input.methods()
	if err != nil {
		return err
	}

	var encoded []byte
	if input.single {
		encoded = contactmethod.Encode(methods[0])
	} else {
		encoded = contactmethod.EncodeCollection(methods)
	}

	want, err := decodeGeneric(input.json)
	if err != nil {
		return fmt.Errorf("re-parse input: %w", err)
	}
	got, err := decodeGeneric(encoded)
	if err != nil {
		return fmt.Errorf("re-parse output: %w", err)
	}
	if difference := firstDifference("$", want, got); difference != "" {
		fmt.Fprintf(w, "round-trip mismatch: %s\n", difference)
		return &cli.ExitError{Code: 1}
	}

	cborData, err := contactmethod.EncodeCollectionCBOR(methods)
	if err != nil {
		return err
	}
	fromCBOR, err := contactmethod.DecodeCollectionCBOR(cborData)
	if err != nil {
		return fmt.Errorf("decode CBOR encoding: %w", err)
	}
	if fingerprint.Collection(fromCBOR) != fingerprint.Collection(methods) {
		fmt.Fprintln(w, "round-trip mismatch: CBOR encoding changed the collection")
		return &cli.ExitError{Code: 1}
	}

	fmt.Fprintf(w, "round-trip ok: %s\n", plural(len(methods)))
	return nil
}

// decodeGeneric parses JSON keeping numbers as json.Number, so 1 and
// 1.0 compare different.
func decodeGeneric(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}

// firstDifference returns a description of the first place where got
// differs from want, walking object keys in sorted order, or "" if the
// values are equal.
func firstDifference(path string, want, got any) string {
	switch want := want.(type) {
	case map[string]any:
		gotObject, ok := got.(map[string]any)
		if !ok {
			return fmt.Sprintf("%s: input is an object, output is %s", path, describe(got))
		}
		keys := make([]string, 0, len(want)+len(gotObject))
		for key := range want {
			keys = append(keys, key)
		}
		for key := range gotObject {
			if _, ok := want[key]; !ok {
				keys = append(keys, key)
			}
		}
		slices.Sort(keys)
		for _, key := range keys {
			wantValue, inWant := want[key]
			gotValue, inGot := gotObject[key]
			switch {
			case !inGot:
				return fmt.Sprintf("%s.%s: in input, missing from output", path, key)
			case !inWant:
				return fmt.Sprintf("%s.%s: in output, missing from input", path, key)
			}
			if difference := firstDifference(path+"."+key, wantValue, gotValue); difference != "" {
				return difference
			}
		}
		return ""

	case []any:
		gotArray, ok := got.([]any)
		if !ok {
			return fmt.Sprintf("%s: input is an array, output is %s", path, describe(got))
		}
		if len(want) != len(gotArray) {
			return fmt.Sprintf("%s: input has %d elements, output has %d", path, len(want), len(gotArray))
		}
		for index := range want {
			if difference := firstDifference(fmt.Sprintf("%s[%d]", path, index), want[index], gotArray[index]); difference != "" {
				return difference
			}
		}
		return ""

	default:
		if !reflect.DeepEqual(want, got) {
			return fmt.Sprintf("%s: input %s, output %s", path, describe(want), describe(got))
		}
		return ""
	}
}

// describe renders a scalar as JSON, and containers by kind.
func describe(value any) string {
	switch value.(type) {
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(encoded)
}
