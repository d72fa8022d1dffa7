// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/pagerduty/cmd/pagerduty-contact-methods/cli"
	"github.com/bureau-foundation/pagerduty/lib/compress"
	"github.com/bureau-foundation/pagerduty/lib/config"
	"github.com/bureau-foundation/pagerduty/lib/contactmethod"
)

// render encodes methods in the configured syntax. It returns the
// chroma lexer name for text output and "" for binary output.
func render(methods []contactmethod.ContactMethod, output config.OutputConfig) ([]byte, string, error) {
	switch output.Format {
	case "json":
		if output.Indent == 0 {
			return append(contactmethod.EncodeCollection(methods), '\n'), "json", nil
		}
		indent := strings.Repeat(" ", output.Indent)
		return append(contactmethod.EncodeCollectionIndent(methods, "", indent), '\n'), "json", nil

	case "yaml":
		projected := make([]contactmethod.Fields, len(methods))
		for index, method := range methods {
			projected[index] = contactmethod.Project(method)
		}
		var buffer bytes.Buffer
		encoder := yaml.NewEncoder(&buffer)
		// YAML needs at least two spaces to nest readably.
		encoder.SetIndent(max(output.Indent, 2))
		if err := encoder.Encode(projected); err != nil {
			return nil, "", fmt.Errorf("encode YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, "", fmt.Errorf("encode YAML: %w", err)
		}
		return buffer.Bytes(), "yaml", nil

	case "cbor":
		data, err := contactmethod.EncodeCollectionCBOR(methods)
		if err != nil {
			return nil, "", fmt.Errorf("encode CBOR: %w", err)
		}
		return data, "", nil

	default:
		return nil, "", fmt.Errorf("unsupported output format %q", output.Format)
	}
}

// writeRendered compresses data when configured and writes it to w,
// highlighting uncompressed text when color is enabled for w.
func writeRendered(w io.Writer, data []byte, lexer string, output config.OutputConfig) error {
	tag, err := compress.ParseTag(output.Compression)
	if err != nil {
		return err
	}
	data, err = compress.Compress(data, tag)
	if err != nil {
		return err
	}

	if tag == compress.None && lexer != "" && cli.UseColor(output.Color, w) {
		return cli.Highlight(w, string(data), lexer)
	}
	_, err = w.Write(data)
	return err
}

// writeJSON writes value as indented JSON, for --json reports.
func writeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// plural formats a count with "contact method" or "contact methods".
func plural(count int) string {
	if count == 1 {
		return "1 contact method"
	}
	return fmt.Sprintf("%d contact methods", count)
}
