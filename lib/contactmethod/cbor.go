// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package contactmethod

import "github.com/bureau-foundation/pagerduty/lib/codec"

// DecodeCollectionCBOR is the CBOR counterpart of [DecodeCollection]:
// data must be a CBOR array of maps keyed by the same field names as
// the JSON form.
func DecodeCollectionCBOR(data []byte) ([]ContactMethod, error) {
	var records []Record
	if err := codec.Unmarshal(data, &records); err != nil {
		return nil, &MalformedInputError{Err: err}
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

// EncodeCollectionCBOR encodes methods as a CBOR array using lib/codec's
// Core Deterministic Encoding. Element order is preserved; map keys
// within each element are sorted by the encoding rules.
func EncodeCollectionCBOR(methods []ContactMethod) ([]byte, error) {
	projected := make([]Fields, len(methods))
	for index, method := range methods {
		projected[index] = Project(method)
	}
	return codec.Marshal(projected)
}
