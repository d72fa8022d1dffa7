// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package contactmethod

import "fmt"

// Resolve builds the variant selected by record's "type" field.
//
// id, type and self are required for every variant; summary decodes as
// the empty string when absent and html_url stays optional. The branch
// on type is exact and case-sensitive. Each concrete variant then
// requires its own fields, and the first absent one is reported as a
// [MissingFieldError]. Fields that do not belong to the selected
// variant are never read. An unrecognized type is an
// [UnknownDiscriminantError].
func Resolve(record Record) (ContactMethod, error) {
	reference, err := resolveReference(record)
	if err != nil {
		return nil, err
	}

	if IsReferenceType(reference.Type) {
		return ReferenceOnly{Reference: reference}, nil
	}

	required := requirer{typeName: reference.Type}

	switch reference.Type {
	case TypeEmail:
		method := Email{
			Reference:      reference,
			Address:        required.text("address", record.Address),
			Label:          required.text("label", record.Label),
			SendShortEmail: required.boolean("send_short_email", record.SendShortEmail),
			SendHTMLEmail:  required.boolean("send_html_email", record.SendHTMLEmail),
		}
		return finish(method, required.err)

	case TypePhone:
		method := Phone{
			Reference:   reference,
			Address:     required.text("address", record.Address),
			Label:       required.text("label", record.Label),
			Blacklisted: required.boolean("blacklisted", record.Blacklisted),
			CountryCode: required.unsigned("country_code", record.CountryCode),
		}
		return finish(method, required.err)

	case TypeSMS:
		method := SMS{
			Reference:   reference,
			Address:     required.text("address", record.Address),
			Label:       required.text("label", record.Label),
			Blacklisted: required.boolean("blacklisted", record.Blacklisted),
			CountryCode: required.unsigned("country_code", record.CountryCode),
			Enabled:     required.boolean("enabled", record.Enabled),
		}
		return finish(method, required.err)

	case TypePushNotification:
		method := PushNotification{
			Reference:   reference,
			Address:     required.text("address", record.Address),
			Label:       required.text("label", record.Label),
			Blacklisted: required.boolean("blacklisted", record.Blacklisted),
			CreatedAt:   required.text("created_at", record.CreatedAt),
			DeviceType:  required.text("device_type", record.DeviceType),
			Sounds:      required.sounds(record.Sounds),
		}
		return finish(method, required.err)

	default:
		return nil, &UnknownDiscriminantError{Type: reference.Type}
	}
}

// resolveReference extracts the identity fields shared by every
// variant. The discriminant is checked for presence only; whether it is
// a known value is decided by the caller's branch.
func resolveReference(record Record) (Reference, error) {
	if record.ID == nil {
		return Reference{}, &MissingFieldError{Field: "id"}
	}
	if record.Type == nil {
		return Reference{}, &MissingFieldError{Field: "type"}
	}
	if record.Self == nil {
		return Reference{}, &MissingFieldError{Field: "self", Type: *record.Type}
	}

	reference := Reference{
		ID:   *record.ID,
		Type: *record.Type,
		Self: *record.Self,
	}
	if record.Summary != nil {
		reference.Summary = *record.Summary
	}
	if record.HTMLURL != nil {
		htmlURL := *record.HTMLURL
		reference.HTMLURL = &htmlURL
	}
	return reference, nil
}

// finish discards a partially built variant when any required field
// was missing.
func finish(method ContactMethod, err error) (ContactMethod, error) {
	if err != nil {
		return nil, err
	}
	return method, nil
}

// requirer dereferences required fields in declaration order and keeps
// the first missing one. Once a field is missing, later lookups still
// return zero values but do not overwrite the error.
type requirer struct {
	typeName string
	err      error
}

func (required *requirer) missing(field string) {
	if required.err == nil {
		required.err = &MissingFieldError{Type: required.typeName, Field: field}
	}
}

func (required *requirer) text(field string, value *string) string {
	if value == nil {
		required.missing(field)
		return ""
	}
	return *value
}

func (required *requirer) boolean(field string, value *bool) bool {
	if value == nil {
		required.missing(field)
		return false
	}
	return *value
}

func (required *requirer) unsigned(field string, value *uint32) uint32 {
	if value == nil {
		required.missing(field)
		return 0
	}
	return *value
}

// sounds copies the sound list, requiring the list itself and both
// fields of every element. An empty list is present and valid.
func (required *requirer) sounds(records *[]SoundRecord) []Sound {
	if records == nil {
		required.missing("sounds")
		return nil
	}
	sounds := make([]Sound, len(*records))
	for index, record := range *records {
		sounds[index] = Sound{
			File: required.text(fmt.Sprintf("sounds[%d].file", index), record.File),
			Type: required.text(fmt.Sprintf("sounds[%d].type", index), record.Type),
		}
	}
	return sounds
}
