// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/ballotbox/models"
)

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusCreated, map[string]int{"id": 7})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %s", ct)
	}

	var body map[string]int
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["id"] != 7 {
		t.Errorf("Unexpected body: %v", body)
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusConflict, "You already voted.")

	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409, got %d", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if resp.Error != "Conflict" || resp.Message != "You already voted." {
		t.Errorf("Unexpected error response: %+v", resp)
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"voter_id": 3, "password": "pw"}`))

	var login models.LoginRequest
	if err := ParseJSONBody(req, &login); err != nil {
		t.Fatalf("ParseJSONBody failed: %v", err)
	}
	if login.VoterID != 3 || login.Password != "pw" {
		t.Errorf("Unexpected parse result: %+v", login)
	}

	req = httptest.NewRequest("POST", "/login", strings.NewReader(`not json`))
	if err := ParseJSONBody(req, &login); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestWithLoggingSetsRequestID(t *testing.T) {
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	first := w.Header().Get("X-Request-ID")
	if first == "" {
		t.Fatal("Expected X-Request-ID header")
	}

	w = httptest.NewRecorder()
	handler(w, req)
	if second := w.Header().Get("X-Request-ID"); second == first {
		t.Error("Expected a fresh request id per request")
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Preflight must not reach the handler")
	}))

	req := httptest.NewRequest("OPTIONS", "/ballot", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
	if origin := w.Header().Get("Access-Control-Allow-Origin"); origin != "http://localhost:3000" {
		t.Errorf("Unexpected allow-origin: %s", origin)
	}
	if headers := w.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(headers, "X-Voter-Token") {
		t.Errorf("Expected X-Voter-Token in allowed headers, got %s", headers)
	}
}

func TestCORSPassesThrough(t *testing.T) {
	called := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/results", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if !called {
		t.Error("Expected handler to be called")
	}
	if origin := w.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("Expected wildcard origin without Origin header, got %s", origin)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr with port", "10.0.0.1:52431", nil, "10.0.0.1"},
		{"x-forwarded-for single", "10.0.0.1:52431", map[string]string{"X-Forwarded-For": "203.0.113.9"}, "203.0.113.9"},
		{"x-forwarded-for chain", "10.0.0.1:52431", map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.2"}, "203.0.113.9"},
		{"x-real-ip", "10.0.0.1:52431", map[string]string{"X-Real-IP": "203.0.113.7"}, "203.0.113.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := GetClientIP(req); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}
