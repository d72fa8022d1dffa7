// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package contactmethod

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/pagerduty/lib/codec"
)

// Field is one key/value pair of a projected contact method.
//
// Values produced by [Project] are string, bool, uint32, or []Fields
// (the sounds list). Other JSON-marshalable values are accepted by the
// serializers but never produced by this package.
type Field struct {
	Key   string
	Value any
}

// Fields is an ordered key/value sequence. Unlike a map, the order is
// part of the value: every serializer below writes keys in slice order
// except CBOR, which uses Core Deterministic Encoding.
type Fields []Field

// Keys returns the keys in order.
func (fields Fields) Keys() []string {
	keys := make([]string, len(fields))
	for index, field := range fields {
		keys[index] = field.Key
	}
	return keys
}

// Get returns the value stored under key.
func (fields Fields) Get(key string) (any, bool) {
	for _, field := range fields {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

// Map converts fields to a map, recursively converting nested Fields.
// The order is lost; use it where the consumer sorts keys anyway.
func (fields Fields) Map() map[string]any {
	result := make(map[string]any, len(fields))
	for _, field := range fields {
		result[field.Key] = mapValue(field.Value)
	}
	return result
}

func mapValue(value any) any {
	switch value := value.(type) {
	case Fields:
		return value.Map()
	case []Fields:
		items := make([]any, len(value))
		for index, item := range value {
			items[index] = item.Map()
		}
		return items
	default:
		return value
	}
}

// MarshalJSON writes a JSON object with keys in slice order.
func (fields Fields) MarshalJSON() ([]byte, error) {
	return fields.appendJSON(nil)
}

func (fields Fields) appendJSON(buffer []byte) ([]byte, error) {
	buffer = append(buffer, '{')
	for index, field := range fields {
		if index > 0 {
			buffer = append(buffer, ',')
		}
		var err error
		buffer, err = appendJSONString(buffer, field.Key)
		if err != nil {
			return nil, err
		}
		buffer = append(buffer, ':')
		buffer, err = appendJSONValue(buffer, field.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field.Key, err)
		}
	}
	return append(buffer, '}'), nil
}

func appendJSONValue(buffer []byte, value any) ([]byte, error) {
	switch value := value.(type) {
	case string:
		return appendJSONString(buffer, value)
	case bool:
		return strconv.AppendBool(buffer, value), nil
	case uint32:
		return strconv.AppendUint(buffer, uint64(value), 10), nil
	case Fields:
		return value.appendJSON(buffer)
	case []Fields:
		buffer = append(buffer, '[')
		for index, item := range value {
			if index > 0 {
				buffer = append(buffer, ',')
			}
			var err error
			buffer, err = item.appendJSON(buffer)
			if err != nil {
				return nil, err
			}
		}
		return append(buffer, ']'), nil
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		return append(buffer, encoded...), nil
	}
}

// appendJSONString uses encoding/json for escaping so output matches
// what json.Marshal would produce for the same string.
func appendJSONString(buffer []byte, value string) ([]byte, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return append(buffer, encoded...), nil
}

// MarshalYAML returns a mapping node with keys in slice order. yaml.v3
// sorts map keys, so a node is the only way to keep the projection's
// order in YAML output.
func (fields Fields) MarshalYAML() (any, error) {
	return fields.yamlNode()
}

func (fields Fields) yamlNode() (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, field := range fields {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Key}
		value, err := yamlValue(field.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field.Key, err)
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}

func yamlValue(value any) (*yaml.Node, error) {
	switch value := value.(type) {
	case Fields:
		return value.yamlNode()
	case []Fields:
		sequence := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range value {
			child, err := item.yamlNode()
			if err != nil {
				return nil, err
			}
			sequence.Content = append(sequence.Content, child)
		}
		return sequence, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(value); err != nil {
			return nil, err
		}
		return node, nil
	}
}

// MarshalCBOR encodes fields as a CBOR map through lib/codec. Core
// Deterministic Encoding sorts the keys, so CBOR output is byte-stable
// but does not follow slice order.
func (fields Fields) MarshalCBOR() ([]byte, error) {
	return codec.Marshal(fields.Map())
}
