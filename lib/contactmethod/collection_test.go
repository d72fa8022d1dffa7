// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package contactmethod

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bureau-foundation/pagerduty/lib/testutil"
)

// fixtureMethods is the decoded form of testdata/contact_methods.json.
func fixtureMethods() []ContactMethod {
	return []ContactMethod{
		ReferenceOnly{Reference: Reference{
			ID:      "PPPIOPG",
			Summary: "Default",
			Type:    TypeEmailReference,
			Self:    "https://api.pagerduty.com/users/PZ7JFQ7/contact_methods/PPPIOPG",
		}},
		Email{
			Reference: Reference{
				ID:      "P33R0ZA",
				Summary: "Work",
				Type:    TypeEmail,
				Self:    "https://api.pagerduty.com/users/PZ7JFQ7/contact_methods/P33R0ZA",
			},
			Address: "alejandro@example.com",
			Label:   "Work",
		},
		SMS{
			Reference: Reference{
				ID:      "PEC83HY",
				Summary: "Mobile",
				Type:    TypeSMS,
				Self:    "https://api.pagerduty.com/users/PGJ36Z3/contact_methods/PEC83HY",
			},
			Address:     "4155809923",
			Label:       "Mobile",
			CountryCode: 1,
			Enabled:     true,
		},
		Phone{
			Reference: Reference{
				ID:      "PBUSVMD",
				Summary: "Mobile",
				Type:    TypePhone,
				Self:    "https://api.pagerduty.com/users/P1RQ0Z6/contact_methods/PBUSVMD",
			},
			Address:     "7076949626",
			Label:       "Mobile",
			CountryCode: 1,
		},
		PushNotification{
			Reference: Reference{
				ID:      "P4G3JKD",
				Summary: "Alex's iPhone",
				Type:    TypePushNotification,
				Self:    "https://api.pagerduty.com/users/P1RQ0Z6/contact_methods/P4G3JKD",
			},
			Address:    "fcbaba06abe7533794b0dd7c3f4427b574772c01445e06bb5a006c33f14d95d0",
			Label:      "Alex's iPhone",
			CreatedAt:  "2016-07-11T11:36:41-07:00",
			DeviceType: "ios",
			Sounds:     []Sound{{File: "default", Type: "alert_high_urgency"}},
		},
	}
}

func TestDecodeCollectionFixture(t *testing.T) {
	t.Parallel()
	methods, err := DecodeCollection(testutil.ReadFixture(t, "contact_methods.json"))
	if err != nil {
		t.Fatalf("DecodeCollection: %v", err)
	}
	if diff := cmp.Diff(fixtureMethods(), methods); diff != "" {
		t.Errorf("DecodeCollection mismatch (-want +got):\n%s", diff)
	}

	wantKinds := []Kind{KindReference, KindEmail, KindSMS, KindPhone, KindPushNotification}
	for index, method := range methods {
		if method.Kind() != wantKinds[index] {
			t.Errorf("element %d: Kind = %v, want %v", index, method.Kind(), wantKinds[index])
		}
	}
}

func TestCollectionRoundTrip(t *testing.T) {
	t.Parallel()
	fixture := testutil.ReadFixture(t, "contact_methods.json")
	methods, err := DecodeCollection(fixture)
	if err != nil {
		t.Fatalf("DecodeCollection: %v", err)
	}

	encoded := EncodeCollection(methods)
	testutil.RequireJSONEqual(t, encoded, fixture)

	// The fixture is written in projection order, so the wire key order
	// of every element must match it exactly.
	if diff := cmp.Diff(testutil.ArrayObjectKeys(t, fixture), testutil.ArrayObjectKeys(t, encoded)); diff != "" {
		t.Errorf("key order mismatch (-fixture +encoded):\n%s", diff)
	}

	again, err := DecodeCollection(encoded)
	if err != nil {
		t.Fatalf("DecodeCollection(encoded): %v", err)
	}
	if diff := cmp.Diff(methods, again); diff != "" {
		t.Errorf("second decode mismatch (-first +second):\n%s", diff)
	}
}

func TestEmailScenario(t *testing.T) {
	t.Parallel()
	input := []byte(`{"id":"P33R0ZA","summary":"Work","type":"email_contact_method",` +
		`"self":"https://api.pagerduty.com/users/PZ7JFQ7/contact_methods/P33R0ZA",` +
		`"address":"alejandro@example.com","label":"Work",` +
		`"send_short_email":false,"send_html_email":false}`)

	method, err := Decode(input)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	email, ok := method.(Email)
	if !ok {
		t.Fatalf("method is %T, want Email", method)
	}
	if email.Address != "alejandro@example.com" || email.SendShortEmail {
		t.Errorf("email = %+v", email)
	}

	// Input key order already matches the projection, so the compact
	// encoding reproduces the input byte for byte.
	if got := Encode(method); !bytes.Equal(got, input) {
		t.Errorf("Encode =\n%s\nwant\n%s", got, input)
	}
}

func TestDecodeCollectionEmpty(t *testing.T) {
	t.Parallel()
	methods, err := DecodeCollection([]byte(`[]`))
	if err != nil {
		t.Fatalf("DecodeCollection: %v", err)
	}
	if len(methods) != 0 {
		t.Errorf("got %d methods, want 0", len(methods))
	}
}

func TestEncodeCollectionEmpty(t *testing.T) {
	t.Parallel()
	for _, methods := range [][]ContactMethod{nil, {}} {
		if got := string(EncodeCollection(methods)); got != "[]" {
			t.Errorf("EncodeCollection(%#v) = %q, want []", methods, got)
		}
	}
}

func TestDecodeCollectionElementIndependence(t *testing.T) {
	t.Parallel()
	// Two elements with different shapes; each resolves from its own
	// discriminant and neither leaks fields into the other.
	input := []byte(`[
		{"id":"P1","type":"sms_contact_method","self":"s1","address":"1","label":"a",
		 "blacklisted":false,"country_code":1,"enabled":true},
		{"id":"P2","type":"phone_contact_method","self":"s2","address":"2","label":"b",
		 "blacklisted":true,"country_code":44}
	]`)
	methods, err := DecodeCollection(input)
	if err != nil {
		t.Fatalf("DecodeCollection: %v", err)
	}
	if _, ok := methods[0].(SMS); !ok {
		t.Errorf("element 0 is %T, want SMS", methods[0])
	}
	phone, ok := methods[1].(Phone)
	if !ok {
		t.Fatalf("element 1 is %T, want Phone", methods[1])
	}
	if _, present := Project(phone).Get("enabled"); present {
		t.Error("Phone projection contains enabled")
	}
}

func TestDecodeCollectionFailsAtElement(t *testing.T) {
	t.Parallel()
	input := []byte(`[
		{"id":"P1","type":"contact_method_reference","self":"s1"},
		{"id":"P2","type":"fax_contact_method","self":"s2"},
		{"id":"P3","type":"email_contact_method","self":"s3"}
	]`)
	methods, err := DecodeCollection(input)
	if err == nil {
		t.Fatal("DecodeCollection succeeded, want error")
	}
	if methods != nil {
		t.Errorf("methods = %v, want nil on failure", methods)
	}
	if !IsUnknownDiscriminant(err) {
		t.Errorf("error = %v, want UnknownDiscriminantError", err)
	}
	if !strings.Contains(err.Error(), "contact method 1") {
		t.Errorf("error %q does not name element 1", err)
	}
}

func TestDecodeCollectionMalformed(t *testing.T) {
	t.Parallel()
	for _, input := range []string{`{}`, `[`, `[1,2]`, `null`, ``} {
		_, err := DecodeCollection([]byte(input))
		// null decodes to an empty collection in encoding/json.
		if input == "null" {
			if err != nil {
				t.Errorf("DecodeCollection(null) = %v, want nil", err)
			}
			continue
		}
		if !IsMalformedInput(err) {
			t.Errorf("DecodeCollection(%q) error = %v, want MalformedInputError", input, err)
		}
	}
}

func TestResolveAllAggregates(t *testing.T) {
	t.Parallel()
	records, err := ParseRecords([]byte(`[
		{"id":"P1","type":"email_contact_method","self":"s1"},
		{"id":"P2","type":"contact_method_reference","self":"s2"},
		{"id":"P3","type":"pager_contact_method","self":"s3"}
	]`))
	if err != nil {
		t.Fatalf("ParseRecords: %v", err)
	}

	methods, err := ResolveAll(records)
	if err == nil {
		t.Fatal("ResolveAll succeeded, want error")
	}
	if methods != nil {
		t.Errorf("methods = %v, want nil on failure", methods)
	}
	if !IsMissingField(err) || !IsUnknownDiscriminant(err) {
		t.Errorf("joined error %v should contain both failures", err)
	}
	message := err.Error()
	if !strings.Contains(message, "contact method 0") || !strings.Contains(message, "contact method 2") {
		t.Errorf("error %q should name elements 0 and 2", message)
	}
	if strings.Contains(message, "contact method 1") {
		t.Errorf("error %q names the valid element 1", message)
	}
}

func TestResolveAllSuccess(t *testing.T) {
	t.Parallel()
	records, err := ParseRecords(testutil.ReadFixture(t, "contact_methods.json"))
	if err != nil {
		t.Fatalf("ParseRecords: %v", err)
	}
	methods, err := ResolveAll(records)
	if err != nil {
		t.Fatalf("ResolveAll: %v", err)
	}
	if diff := cmp.Diff(fixtureMethods(), methods); diff != "" {
		t.Errorf("ResolveAll mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeCollectionIndent(t *testing.T) {
	t.Parallel()
	methods := fixtureMethods()
	indented := EncodeCollectionIndent(methods, "", "  ")
	testutil.RequireJSONEqual(t, indented, EncodeCollection(methods))

	if !bytes.HasPrefix(indented, []byte("[\n  {\n    \"id\": \"PPPIOPG\"")) {
		t.Errorf("unexpected indentation:\n%s", indented)
	}
	if diff := cmp.Diff(testutil.ArrayObjectKeys(t, EncodeCollection(methods)), testutil.ArrayObjectKeys(t, indented)); diff != "" {
		t.Errorf("indent changed key order (-compact +indented):\n%s", diff)
	}
}

func TestMalformedInputUnwraps(t *testing.T) {
	t.Parallel()
	_, err := DecodeCollection([]byte(`[{"id":1}]`))
	var malformed *MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %v, want MalformedInputError", err)
	}
	if errors.Unwrap(malformed) == nil {
		t.Error("Unwrap returned nil")
	}
}
