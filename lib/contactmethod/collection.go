// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package contactmethod

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Decode parses and resolves a single JSON contact method object.
func Decode(data []byte) (ContactMethod, error) {
	record, err := ParseRecord(data)
	if err != nil {
		return nil, err
	}
	return Resolve(record)
}

// DecodeCollection parses a JSON array of contact method objects and
// resolves each element in order. It stops at the first element that
// fails; the error names the element index.
func DecodeCollection(data []byte) ([]ContactMethod, error) {
	records, err := ParseRecords(data)
	if err != nil {
		return nil, err
	}
	methods := make([]ContactMethod, len(records))
	for index, record := range records {
		method, err := Resolve(record)
		if err != nil {
			return nil, elementError(index, err)
		}
		methods[index] = method
	}
	return methods, nil
}

// ResolveAll resolves every record, continuing past failures. On
// failure it returns nil and the errors.Join of every element error,
// each wrapped with its index. Use this where one bad element should not
// hide the others, such as validating a fixture file.
func ResolveAll(records []Record) ([]ContactMethod, error) {
	methods := make([]ContactMethod, len(records))
	var errs []error
	for index, record := range records {
		method, err := Resolve(record)
		if err != nil {
			errs = append(errs, elementError(index, err))
			continue
		}
		methods[index] = method
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return methods, nil
}

// Encode returns the compact JSON encoding of a single contact method.
func Encode(method ContactMethod) []byte {
	return mustAppendJSON(nil, Project(method))
}

// EncodeCollection returns the compact JSON array encoding of methods,
// preserving element order and each variant's key order. A nil or empty
// collection encodes as [].
func EncodeCollection(methods []ContactMethod) []byte {
	buffer := []byte{'['}
	for index, method := range methods {
		if index > 0 {
			buffer = append(buffer, ',')
		}
		buffer = mustAppendJSON(buffer, Project(method))
	}
	return append(buffer, ']')
}

// EncodeCollectionIndent is like [EncodeCollection] but indents the
// output the way json.MarshalIndent does. Key order is unchanged.
func EncodeCollectionIndent(methods []ContactMethod, prefix, indent string) []byte {
	var buffer bytes.Buffer
	// EncodeCollection output is valid JSON by construction, so Indent
	// cannot fail.
	if err := json.Indent(&buffer, EncodeCollection(methods), prefix, indent); err != nil {
		panic("contactmethod: indenting encoded collection: " + err.Error())
	}
	return buffer.Bytes()
}

// mustAppendJSON appends projected fields. Projections hold only
// strings, booleans, uint32 and nested Fields, none of which can fail
// to encode; an error here means Project produced a value outside that
// set.
func mustAppendJSON(buffer []byte, fields Fields) []byte {
	buffer, err := fields.appendJSON(buffer)
	if err != nil {
		panic("contactmethod: encoding projected fields: " + err.Error())
	}
	return buffer
}
