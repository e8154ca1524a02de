// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSignature = errors.New("invalid request signature")
	ErrMissingSignature = errors.New("missing request signature")
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Sign creates an HMAC-SHA256 signature of a request body.
// The platform signs every delivery with the shared secret, and the
// server recomputes it to reject forged commands and clicks.
func Sign(body []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding so it fits in a header
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// Verify checks the signature for a request body
func Verify(body []byte, signature, secret string) error {
	if signature == "" {
		return ErrMissingSignature
	}
	expected := Sign(body, secret)
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return ErrInvalidSignature
	}
	return nil
}
