// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package contactmethod

import "fmt"

// Kind identifies which variant a [ContactMethod] is.
type Kind int

const (
	KindReference Kind = iota
	KindEmail
	KindPhone
	KindSMS
	KindPushNotification
)

// String returns the short name used in CLI output.
func (kind Kind) String() string {
	switch kind {
	case KindReference:
		return "reference"
	case KindEmail:
		return "email"
	case KindPhone:
		return "phone"
	case KindSMS:
		return "sms"
	case KindPushNotification:
		return "push_notification"
	default:
		return fmt.Sprintf("unknown(%d)", int(kind))
	}
}

// ContactMethod is one of [ReferenceOnly], [Email], [Phone], [SMS] or
// [PushNotification]. The set is closed: the unexported marker method
// keeps other packages from adding cases, so a type switch over the
// five variants is exhaustive.
type ContactMethod interface {
	// Ref returns the identity fields shared by every variant.
	Ref() Reference

	// Kind reports which variant this is.
	Kind() Kind

	contactMethod()
}

// ReferenceOnly is a lightweight pointer to a contact method of any
// kind. Reference.Type holds which reference tag was received.
type ReferenceOnly struct {
	Reference
}

// Email delivers notifications to an email address.
type Email struct {
	Reference

	// Address is the email address.
	Address string

	// Label is the user-facing name ("Work", "Personal").
	Label string

	// SendShortEmail sends an abbreviated message, for email-to-SMS
	// gateways and email based pagers.
	SendShortEmail bool

	// SendHTMLEmail sends HTML instead of plain text.
	SendHTMLEmail bool
}

// Phone delivers voice calls.
type Phone struct {
	Reference

	// Address is the phone number without the country code.
	Address string

	Label string

	// Blacklisted is set when PagerDuty has stopped sending to this
	// number.
	Blacklisted bool

	// CountryCode is the 1-to-3 digit calling code.
	CountryCode uint32
}

// SMS delivers text messages. It carries everything [Phone] does plus
// whether the number accepts SMS.
type SMS struct {
	Reference

	Address     string
	Label       string
	Blacklisted bool
	CountryCode uint32

	// Enabled reports whether the number is capable of receiving SMS.
	Enabled bool
}

// PushNotification delivers to a mobile app installation.
type PushNotification struct {
	Reference

	// Address is the device push token.
	Address string

	Label       string
	Blacklisted bool

	// CreatedAt is the ISO-8601 creation time, kept as received.
	CreatedAt string

	// DeviceType is the platform, e.g. "ios" or "android".
	DeviceType string

	// Sounds lists the alert sounds configured for the device, in API
	// order.
	Sounds []Sound
}

// Sound is an alert sound configured on a push notification device.
type Sound struct {
	// File is the sound file name.
	File string

	// Type is the alert the sound plays for, e.g. "alert_high_urgency".
	Type string
}

func (ReferenceOnly) Kind() Kind    { return KindReference }
func (Email) Kind() Kind            { return KindEmail }
func (Phone) Kind() Kind            { return KindPhone }
func (SMS) Kind() Kind              { return KindSMS }
func (PushNotification) Kind() Kind { return KindPushNotification }

func (ReferenceOnly) contactMethod()    {}
func (Email) contactMethod()            {}
func (Phone) contactMethod()            {}
func (SMS) contactMethod()              {}
func (PushNotification) contactMethod() {}
