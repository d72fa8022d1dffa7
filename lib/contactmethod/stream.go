// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package contactmethod

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Decoder reads a JSON array of contact methods one element at a time,
// so large collections do not have to be held as raw bytes and records
// at once.
//
//	decoder := contactmethod.NewDecoder(response.Body)
//	for {
//	    method, err := decoder.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    ...
//	}
type Decoder struct {
	decoder *json.Decoder
	started bool
	done    bool
	index   int
}

// NewDecoder returns a Decoder reading from r. The caller keeps
// ownership of r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{decoder: json.NewDecoder(r)}
}

// Next returns the next contact method in the array, or io.EOF after
// the closing bracket. Errors other than io.EOF are wrapped with the
// element index and are terminal: later calls keep returning io.EOF.
func (d *Decoder) Next() (ContactMethod, error) {
	if d.done {
		return nil, io.EOF
	}

	if !d.started {
		d.started = true
		if err := d.expectDelim('['); err != nil {
			d.done = true
			return nil, err
		}
	}

	if !d.decoder.More() {
		d.done = true
		if err := d.expectDelim(']'); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}

	index := d.index
	d.index++

	var record Record
	if err := d.decoder.Decode(&record); err != nil {
		d.done = true
		return nil, elementError(index, &MalformedInputError{Err: err})
	}

	method, err := Resolve(record)
	if err != nil {
		// A resolve failure leaves the stream positioned at the next
		// element, but callers treating decode errors as terminal
		// should not have to drain it.
		d.done = true
		return nil, elementError(index, err)
	}
	return method, nil
}

func (d *Decoder) expectDelim(want json.Delim) error {
	token, err := d.decoder.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return &MalformedInputError{Err: err}
	}
	if delim, ok := token.(json.Delim); !ok || delim != want {
		return &MalformedInputError{Err: fmt.Errorf("expected %q, got %v", want, token)}
	}
	return nil
}
