package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leadbridge/whatsapp-leads-api/internal/middleware"
)

func protected(secret string) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return middleware.RequireAPIKey(secret)(ok)
}

func TestRequireAPIKeyOpenMode(t *testing.T) {
	req := httptest.NewRequest("POST", "/whatsapp/leads/insert", nil)
	w := httptest.NewRecorder()

	protected("").ServeHTTP(w, req) // no secret configured

	if w.Code != http.StatusOK {
		t.Errorf("expected open mode to pass, got %d", w.Code)
	}
}

func TestRequireAPIKeyMatch(t *testing.T) {
	req := httptest.NewRequest("POST", "/whatsapp/leads/insert", nil)
	req.Header.Set("x-api-key", "topsecret")
	w := httptest.NewRecorder()

	protected("topsecret").ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected matching key to pass, got %d", w.Code)
	}
}

func TestRequireAPIKeyTrimsHeader(t *testing.T) {
	req := httptest.NewRequest("POST", "/whatsapp/leads/insert", nil)
	req.Header.Set("x-api-key", "  topsecret  ")
	w := httptest.NewRecorder()

	protected("topsecret").ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected trimmed key to pass, got %d", w.Code)
	}
}

func TestRequireAPIKeyRejects(t *testing.T) {
	for _, tc := range []struct {
		name string
		key  string
	}{
		{"missing", ""},
		{"wrong", "nope"},
		{"wrong case", "TOPSECRET"},
	} {
		req := httptest.NewRequest("POST", "/whatsapp/leads/insert", nil)
		if tc.key != "" {
			req.Header.Set("x-api-key", tc.key)
		}
		w := httptest.NewRecorder()

		protected("topsecret").ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", tc.name, w.Code)
			continue
		}
		var body struct {
			OK    bool   `json:"ok"`
			Error string `json:"error"`
		}
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("%s: failed to decode response: %v", tc.name, err)
		}
		if body.OK || body.Error != "unauthorized" {
			t.Errorf("%s: unexpected body: %+v", tc.name, body)
		}
	}
}
