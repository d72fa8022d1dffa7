// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package contactmethod decodes and encodes PagerDuty contact method
// resources. The API represents every contact method as one flat JSON
// object whose "type" field selects the shape: an email address, a
// phone number, an SMS-capable phone, a push notification device, or a
// bare reference to any of those.
//
// Decoding happens in two separate steps:
//
//  1. [ParseRecord] / [ParseRecords]: JSON bytes → [Record], a flat
//     carrier where every field the API may send is optional. Unknown
//     fields are ignored so newer API payloads still parse.
//  2. [Resolve]: [Record] → [ContactMethod], an exhaustive branch on the
//     discriminant that builds exactly one variant and fails with a
//     typed error when a field the variant needs is absent.
//
// Encoding goes the other way through [Project], which flattens a
// variant into [Fields], an ordered key/value sequence. The order is
// fixed per variant (reference fields first, then the variant's own
// fields) so golden files and reviewer diffs stay stable:
//
//	methods, err := contactmethod.DecodeCollection(data)
//	output := contactmethod.EncodeCollection(methods)
//
// The five reference tags ("contact_method_reference",
// "email_contact_method_reference", ...) collapse into [ReferenceOnly].
// The original tag stays in [Reference].Type, so re-encoding reproduces
// the input exactly.
//
// # Errors
//
// Decoding fails with one of three error types, all terminal:
//
//   - [MalformedInputError]: the bytes are not valid JSON (or CBOR), or a
//     field has the wrong type.
//   - [MissingFieldError]: a field the resolved variant requires is
//     absent.
//   - [UnknownDiscriminantError]: "type" names no known variant.
//
// Collection errors are wrapped with the element index and remain
// matchable with errors.As.
//
// The package holds no mutable state and never logs. All functions are
// safe for concurrent use.
package contactmethod
