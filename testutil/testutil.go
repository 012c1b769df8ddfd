// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/db"
)

// SetupTestDB creates a fresh sqlite database with the full schema in a
// per-test temp directory. No external services required.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "election.db")
	conn, err := db.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         4817,
		DatabaseURL:  "election.db",
		DatabaseType: "sqlite",
		SessionSalt:  "test-session-salt",
	}
}

// CreateTestPosition inserts a position and returns its id.
// status should be "open" or "closed".
func CreateTestPosition(t *testing.T, conn *sql.DB, name string, seats int, status string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO position (name, seats, status) VALUES ($1, $2, $3) RETURNING id
	`, name, seats, status).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test position: %v", err)
	}
	return id
}

// CreateTestCandidate inserts an active-or-inactive candidate for a
// position and returns its id.
func CreateTestCandidate(t *testing.T, conn *sql.DB, positionID int64, first, last, status string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO candidate (first_name, middle_name, last_name, position_id, status)
		VALUES ($1, '', $2, $3, $4)
		RETURNING id
	`, first, last, positionID, status).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}
	return id
}

// CreateTestVoter inserts a voter and returns its id.
func CreateTestVoter(t *testing.T, conn *sql.DB, password, first, last, status string, hasVoted bool) int64 {
	t.Helper()

	voted := 0
	if hasVoted {
		voted = 1
	}
	var id int64
	err := conn.QueryRow(`
		INSERT INTO voter (password, first_name, middle_name, last_name, status, has_voted)
		VALUES ($1, $2, '', $3, $4, $5)
		RETURNING id
	`, password, first, last, status, voted).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test voter: %v", err)
	}
	return id
}

// InsertTestVote appends a raw vote row and bumps the candidate counter,
// bypassing the engine. For seeding tally tests.
func InsertTestVote(t *testing.T, conn *sql.DB, positionID, voterID, candidateID int64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote (position_id, voter_id, candidate_id, cast_at) VALUES ($1, $2, $3, $4)
	`, positionID, voterID, candidateID, time.Now())
	if err != nil {
		t.Fatalf("Failed to insert test vote: %v", err)
	}
	if _, err := conn.Exec(`UPDATE candidate SET votes = votes + 1 WHERE id = $1`, candidateID); err != nil {
		t.Fatalf("Failed to bump candidate votes: %v", err)
	}
}

// CountRows returns the row count of a table.
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var count int
	if err := conn.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		t.Fatalf("Failed to count %s rows: %v", table, err)
	}
	return count
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
