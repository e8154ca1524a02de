// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-poll/auth"
	"github.com/danielhkuo/quickly-poll/cliparse"
	"github.com/danielhkuo/quickly-poll/db"
)

// TestSigningSecret is the signing secret used by GetSignedTestConfig
const TestSigningSecret = "test-signing-secret"

// SetupTestDB creates a fresh in-memory database with the full schema.
// Every call gets its own database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	name, err := auth.GenerateID(8)
	if err != nil {
		t.Fatalf("Failed to name test database: %v", err)
	}

	conn, err := db.Open(db.TypeSQLite, "file:test-"+name+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: db.TypeSQLite,
		DatabaseURL:  "file::memory:",
	}
}

// GetSignedTestConfig returns a test configuration that requires signatures
func GetSignedTestConfig() cliparse.Config {
	cfg := GetTestConfig()
	cfg.SigningSecret = TestSigningSecret
	return cfg
}

// CreateTestChannel inserts a channel and returns its ID
func CreateTestChannel(t *testing.T, conn *sql.DB, name string, supportsControls bool) string {
	t.Helper()

	channelID, _ := auth.GenerateID(8)
	_, err := conn.Exec(`
		INSERT INTO channel (id, name, supports_controls, created_at)
		VALUES ($1, $2, $3, $4)
	`, channelID, name, supportsControls, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test channel: %v", err)
	}

	return channelID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeSignedRequest creates an HTTP test request carrying a valid X-Signature
func MakeSignedRequest(method, path string, body interface{}, secret string) *http.Request {
	var raw []byte
	if body != nil {
		raw, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Signature", auth.Sign(raw, secret))
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
