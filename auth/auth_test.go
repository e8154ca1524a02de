// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"24 bytes", 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		secret string
	}{
		{"standard", `{"args":["start"]}`, "secret"},
		{"empty body", "", "secret"},
		{"empty secret", `{"control_id":"x"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := Sign([]byte(tt.body), tt.secret)

			if sig == "" {
				t.Error("Sign() returned empty string")
			}

			if again := Sign([]byte(tt.body), tt.secret); again != sig {
				t.Error("Sign() is not deterministic")
			}

			if other := Sign([]byte(tt.body+"x"), tt.secret); other == sig {
				t.Error("Sign() produced same signature for different bodies")
			}

			if strings.Contains(sig, "=") {
				t.Error("Sign() contains padding characters")
			}
		})
	}
}

func TestVerify(t *testing.T) {
	body := []byte(`{"channel_id":"c1"}`)
	secret := "test-secret"
	valid := Sign(body, secret)

	tests := []struct {
		name      string
		body      []byte
		signature string
		secret    string
		wantErr   error
	}{
		{"valid signature", body, valid, secret, nil},
		{"tampered body", []byte(`{"channel_id":"c2"}`), valid, secret, ErrInvalidSignature},
		{"wrong secret", body, valid, "other-secret", ErrInvalidSignature},
		{"garbage signature", body, "not-a-signature", secret, ErrInvalidSignature},
		{"missing signature", body, "", secret, ErrMissingSignature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(tt.body, tt.signature, tt.secret)
			if err != tt.wantErr {
				t.Errorf("Verify() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
