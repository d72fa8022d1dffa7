// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"
)

// sampleSound uses json tags, the only tag convention in this module,
// relying on fxamacker's fallback for the CBOR field names.
type sampleSound struct {
	File string `json:"file"`
	Type string `json:"type"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	t.Parallel()
	original := sampleSound{File: "default", Type: "alert_high_urgency"}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal produced empty output")
	}

	var decoded sampleSound
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestMarshalDeterministicMapOrder(t *testing.T) {
	t.Parallel()
	// Go map iteration order is random; Core Deterministic Encoding
	// must still produce identical bytes every time.
	value := map[string]any{
		"type":    "phone_contact_method",
		"id":      "PBUSVMD",
		"address": "7076949626",
		"self":    "https://api.pagerduty.com/users/P1RQ0Z6/contact_methods/PBUSVMD",
	}

	first, err := Marshal(value)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	for attempt := 0; attempt < 20; attempt++ {
		again, err := Marshal(value)
		if err != nil {
			t.Fatalf("Marshal attempt %d: %v", attempt, err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("deterministic encoding violated on attempt %d: %x != %x", attempt, first, again)
		}
	}
}

func TestUnmarshalIgnoresUnknownFields(t *testing.T) {
	t.Parallel()
	data, err := Marshal(map[string]any{
		"file":        "default",
		"type":        "alert_low_urgency",
		"added_later": true,
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded sampleSound
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.File != "default" || decoded.Type != "alert_low_urgency" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestUnmarshalAnyUsesStringKeyedMaps(t *testing.T) {
	t.Parallel()
	data, err := Marshal(map[string]any{"label": "Work"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	object, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("decoded is %T, want map[string]any", decoded)
	}
	if object["label"] != "Work" {
		t.Errorf("label = %v, want Work", object["label"])
	}
}

func TestUnmarshalInvalidCBOR(t *testing.T) {
	t.Parallel()
	var sound sampleSound
	if err := Unmarshal([]byte{0xFF, 0xFE, 0xFD}, &sound); err == nil {
		t.Error("Unmarshal should reject invalid CBOR")
	}
}

func TestValid(t *testing.T) {
	t.Parallel()
	data, err := Marshal([]string{"a", "b"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if err := Valid(data); err != nil {
		t.Errorf("Valid(well-formed) = %v", err)
	}
	if err := Valid(data[:len(data)-1]); err == nil {
		t.Error("Valid(truncated) = nil, want error")
	}
}

func TestDiagnose(t *testing.T) {
	t.Parallel()
	data, err := Marshal(map[string]any{"type": "sms_contact_method"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	notation, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if !strings.Contains(notation, `"type"`) {
		t.Errorf("notation %q does not contain \"type\"", notation)
	}
	if !strings.Contains(notation, `"sms_contact_method"`) {
		t.Errorf("notation %q does not contain \"sms_contact_method\"", notation)
	}
}

func BenchmarkMarshal(b *testing.B) {
	sound := sampleSound{File: "default", Type: "alert_high_urgency"}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Marshal(sound)
	}
}
