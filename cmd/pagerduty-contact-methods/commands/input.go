// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/pagerduty/lib/codec"
	"github.com/bureau-foundation/pagerduty/lib/compress"
	"github.com/bureau-foundation/pagerduty/lib/config"
	"github.com/bureau-foundation/pagerduty/lib/contactmethod"
)

// readInput returns the contents of the file named by the single
// positional argument, or stdin when there is none or it is "-".
func readInput(args []string, stdin io.Reader) ([]byte, error) {
	switch len(args) {
	case 0:
	case 1:
		if args[0] != "-" {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", args[0], err)
			}
			return data, nil
		}
	default:
		return nil, fmt.Errorf("expected at most one input file, got %d arguments", len(args))
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

// payload is an input document normalized to JSON, whatever syntax it
// arrived in.
type payload struct {
	// json is the document as JSON text.
	json []byte

	// single is true when the document is one object rather than an
	// array of objects.
	single bool

	// format is the syntax the input was parsed as.
	format string

	// compression is the frame format the input was wrapped in.
	compression compress.Tag
}

// parsePayload decompresses data if it is a zstd or lz4 frame, then
// converts it to JSON according to format ("auto" detects it).
func parsePayload(data []byte, format string, logger *slog.Logger) (*payload, error) {
	data, tag, err := compress.Decompress(data)
	if err != nil {
		return nil, err
	}
	if format == "auto" {
		format = detectFormat(data)
	}
	logger.Debug("parsing input", "format", format, "compression", tag.String(), "bytes", len(data))

	converted, err := toJSON(data, format)
	if err != nil {
		return nil, &contactmethod.MalformedInputError{Err: fmt.Errorf("%s input: %w", format, err)}
	}
	trimmed := bytes.TrimLeft(converted, " \t\r\n")
	return &payload{
		json:        converted,
		single:      len(trimmed) > 0 && trimmed[0] == '{',
		format:      format,
		compression: tag,
	}, nil
}

// detectFormat guesses the syntax of data. CBOR is recognized by an
// array or map header in the first byte, which no text encoding of a
// document starts with. Text starting with [ or { is treated as JSONC,
// a superset of JSON, and / as JSONC that opens with a comment.
// Anything else is YAML.
func detectFormat(data []byte) string {
	if len(data) > 0 && data[0] >= 0x80 && data[0] <= 0xbf {
		return "cbor"
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return "json"
	}
	switch trimmed[0] {
	case '[', '{', '/':
		return "jsonc"
	default:
		return "yaml"
	}
}

func toJSON(data []byte, format string) ([]byte, error) {
	switch format {
	case "json":
		return data, nil

	case "jsonc":
		return jsonc.ToJSON(data), nil

	case "yaml":
		var value any
		if err := yaml.Unmarshal(data, &value); err != nil {
			return nil, err
		}
		return json.Marshal(value)

	case "cbor":
		var value any
		if err := codec.Unmarshal(data, &value); err != nil {
			return nil, err
		}
		return json.Marshal(value)

	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
}

// records parses the payload into unvalidated records. A single object
// becomes a one-element list.
func (p *payload) records() ([]contactmethod.Record, error) {
	if p.single {
		record, err := contactmethod.ParseRecord(p.json)
		if err != nil {
			return nil, err
		}
		return []contactmethod.Record{record}, nil
	}
	return contactmethod.ParseRecords(p.json)
}

// methods resolves every record, stopping at the first failure.
func (p *payload) methods() ([]contactmethod.ContactMethod, error) {
	if p.single {
		method, err := contactmethod.Decode(p.json)
		if err != nil {
			return nil, err
		}
		return []contactmethod.ContactMethod{method}, nil
	}
	return contactmethod.DecodeCollection(p.json)
}

// loadPayload is the common front half of every command: settings,
// input bytes, and the normalized payload.
func (o *options) loadPayload(args []string, env *environment, logger *slog.Logger) (*config.Config, *payload, error) {
	settings, err := o.settings()
	if err != nil {
		return nil, nil, err
	}
	data, err := readInput(args, env.stdin)
	if err != nil {
		return nil, nil, err
	}
	input, err := parsePayload(data, settings.Input.Format, logger)
	if err != nil {
		return nil, nil, err
	}
	return settings, input, nil
}
