// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package contactmethod

// Project flattens a contact method into its wire fields. The reference
// fields always come first (id, summary, type, self, then html_url when
// present), followed by the variant's own fields in a fixed per-variant
// order. Projection cannot fail: a ContactMethod value already holds
// every field its variant needs.
func Project(method ContactMethod) Fields {
	fields := method.Ref().fields()

	switch method := method.(type) {
	case ReferenceOnly:
		// Reference fields only.

	case Email:
		fields = append(fields,
			Field{Key: "address", Value: method.Address},
			Field{Key: "label", Value: method.Label},
			Field{Key: "send_short_email", Value: method.SendShortEmail},
			Field{Key: "send_html_email", Value: method.SendHTMLEmail},
		)

	case Phone:
		fields = append(fields,
			Field{Key: "address", Value: method.Address},
			Field{Key: "label", Value: method.Label},
			Field{Key: "country_code", Value: method.CountryCode},
			Field{Key: "blacklisted", Value: method.Blacklisted},
		)

	case SMS:
		fields = append(fields,
			Field{Key: "address", Value: method.Address},
			Field{Key: "label", Value: method.Label},
			Field{Key: "country_code", Value: method.CountryCode},
			Field{Key: "blacklisted", Value: method.Blacklisted},
			Field{Key: "enabled", Value: method.Enabled},
		)

	case PushNotification:
		fields = append(fields,
			Field{Key: "address", Value: method.Address},
			Field{Key: "label", Value: method.Label},
			Field{Key: "device_type", Value: method.DeviceType},
			Field{Key: "sounds", Value: projectSounds(method.Sounds)},
			Field{Key: "blacklisted", Value: method.Blacklisted},
			Field{Key: "created_at", Value: method.CreatedAt},
		)
	}

	return fields
}

// projectSounds always returns a non-nil slice so an empty list encodes
// as [] rather than null; null would read back as a missing field.
func projectSounds(sounds []Sound) []Fields {
	projected := make([]Fields, 0, len(sounds))
	for _, sound := range sounds {
		projected = append(projected, Fields{
			{Key: "file", Value: sound.File},
			{Key: "type", Value: sound.Type},
		})
	}
	return projected
}
