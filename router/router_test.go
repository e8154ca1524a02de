// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-poll/chat"
	"github.com/danielhkuo/quickly-poll/cliparse"
	"github.com/danielhkuo/quickly-poll/models"
	"github.com/danielhkuo/quickly-poll/registry"
	"github.com/danielhkuo/quickly-poll/testutil"
)

func newTestRouter(t *testing.T, cfg cliparse.Config) (*http.ServeMux, *chat.Board) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { db.Close() })

	board := chat.NewBoard(db, nil)
	return NewRouter(board, registry.New(nil), cfg), board
}

func TestHealthEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "quickly-poll API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux, _ := newTestRouter(t, testutil.GetTestConfig())

	// 400 and 404 are valid handler answers; 405 means the route is missing
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"POST", "/commands"},
		{"POST", "/channels"},
		{"GET", "/channels/test-id/messages"},
		{"POST", "/messages/test-id/clicks"},
		{"GET", "/polls"},
		{"GET", "/polls/test-id"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux, _ := newTestRouter(t, testutil.GetTestConfig())

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/polls/test-id"},
		{"POST", "/polls/test-id"},
		{"PUT", "/channels"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestSignedRoutes(t *testing.T) {
	cfg := testutil.GetSignedTestConfig()
	mux, _ := newTestRouter(t, cfg)

	body := models.CreateChannelRequest{Name: "general", SupportsControls: true}

	t.Run("unsigned request rejected", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/channels", body, nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("wrongly signed request rejected", func(t *testing.T) {
		req := testutil.MakeSignedRequest("POST", "/channels", body, "not-the-secret")
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("signed request accepted", func(t *testing.T) {
		req := testutil.MakeSignedRequest("POST", "/channels", body, cfg.SigningSecret)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		testutil.AssertStatus(t, w, http.StatusCreated)
	})

	t.Run("reads stay open", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/polls", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
	})
}

func TestPathParameterExtraction(t *testing.T) {
	mux, board := newTestRouter(t, testutil.GetTestConfig())

	ch, err := board.CreateChannel(t.Context(), "general", true)
	if err != nil {
		t.Fatalf("CreateChannel() error = %v", err)
	}

	req := httptest.NewRequest("GET", "/channels/"+ch.ID+"/messages", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for existing channel, got %d. Body: %s", w.Code, w.Body.String())
	}
}
