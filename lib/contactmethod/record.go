// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package contactmethod

import "encoding/json"

// Record is the flat wire shape of a contact method: the union of every
// variant's fields, each optional. A nil pointer means the field was
// absent (or null) on the wire. Record performs no validation; see
// [Resolve] for that.
//
// Record uses json tags only. fxamacker/cbor falls back to json tags,
// so the same type decodes from CBOR maps (see [DecodeCollectionCBOR]).
type Record struct {
	ID      *string `json:"id"`
	Summary *string `json:"summary"`
	Type    *string `json:"type"`
	Self    *string `json:"self"`
	HTMLURL *string `json:"html_url"`

	Address        *string        `json:"address"`
	Label          *string        `json:"label"`
	SendShortEmail *bool          `json:"send_short_email"`
	SendHTMLEmail  *bool          `json:"send_html_email"`
	Blacklisted    *bool          `json:"blacklisted"`
	CountryCode    *uint32        `json:"country_code"`
	Enabled        *bool          `json:"enabled"`
	CreatedAt      *string        `json:"created_at"`
	DeviceType     *string        `json:"device_type"`
	Sounds         *[]SoundRecord `json:"sounds"`
}

// SoundRecord is the flat wire shape of a [Sound].
type SoundRecord struct {
	File *string `json:"file"`
	Type *string `json:"type"`
}

// ParseRecord unpacks a single JSON object into a Record. The only
// possible error is a [MalformedInputError].
func ParseRecord(data []byte) (Record, error) {
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return Record{}, &MalformedInputError{Err: err}
	}
	return record, nil
}

// ParseRecords unpacks a top-level JSON array of objects. A null array
// decodes as an empty collection.
func ParseRecords(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &MalformedInputError{Err: err}
	}
	return records, nil
}
