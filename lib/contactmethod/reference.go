// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package contactmethod

// Discriminant values for the "type" field. The reference tags all
// resolve to [ReferenceOnly]; the rest each select one concrete variant.
const (
	TypeReference                 = "contact_method_reference"
	TypeEmailReference            = "email_contact_method_reference"
	TypePhoneReference            = "phone_contact_method_reference"
	TypeSMSReference              = "sms_contact_method_reference"
	TypePushNotificationReference = "push_notification_contact_method_reference"

	TypeEmail            = "email_contact_method"
	TypePhone            = "phone_contact_method"
	TypeSMS              = "sms_contact_method"
	TypePushNotification = "push_notification_contact_method"
)

// referenceTypes is the set of tags that collapse into ReferenceOnly.
var referenceTypes = map[string]bool{
	TypeReference:                 true,
	TypeEmailReference:            true,
	TypePhoneReference:            true,
	TypeSMSReference:              true,
	TypePushNotificationReference: true,
}

// IsReferenceType reports whether typeName is one of the five
// reference tags.
func IsReferenceType(typeName string) bool {
	return referenceTypes[typeName]
}

// KnownTypes returns every discriminant value [Resolve] accepts, the
// reference tags first.
func KnownTypes() []string {
	return []string{
		TypeReference,
		TypeEmailReference,
		TypePhoneReference,
		TypeSMSReference,
		TypePushNotificationReference,
		TypeEmail,
		TypePhone,
		TypeSMS,
		TypePushNotification,
	}
}

// Reference is the identity shared by every contact method shape.
type Reference struct {
	// ID is unique within the user's contact methods.
	ID string

	// Summary is a short human label, usually equal to the label.
	Summary string

	// Type is the discriminant exactly as received.
	Type string

	// Self is the canonical API URL of the resource.
	Self string

	// HTMLURL is the web UI URL. The API omits it for most contact
	// methods.
	HTMLURL *string
}

// Ref returns the reference itself. Every variant embeds Reference, so
// this is promoted to all of them and satisfies [ContactMethod].
func (reference Reference) Ref() Reference {
	return reference
}

// fields returns the reference in wire order: id, summary, type, self,
// then html_url only when present.
func (reference Reference) fields() Fields {
	fields := make(Fields, 0, 5)
	fields = append(fields,
		Field{Key: "id", Value: reference.ID},
		Field{Key: "summary", Value: reference.Summary},
		Field{Key: "type", Value: reference.Type},
		Field{Key: "self", Value: reference.Self},
	)
	if reference.HTMLURL != nil {
		fields = append(fields, Field{Key: "html_url", Value: *reference.HTMLURL})
	}
	return fields
}
