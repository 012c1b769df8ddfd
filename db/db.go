// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open opens the election database for the configured driver.
// For sqlite the URL is a file path; foreign keys and a busy timeout
// are enabled and the pool is capped at one connection (single writer).
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case "sqlite":
		dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", url)
		conn, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		conn.SetMaxOpenConns(1)
		return conn, nil
	case "postgres":
		conn, err := sql.Open("postgres", url)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	schema := sqliteSchema
	if dbType == "postgres" {
		schema = postgresSchema
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const sqliteSchema = `
-- Positions
CREATE TABLE IF NOT EXISTS position (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    seats INTEGER NOT NULL CHECK (seats > 0),
    status TEXT NOT NULL DEFAULT 'open' CHECK (status IN ('open', 'closed'))
);

-- Candidates
CREATE TABLE IF NOT EXISTS candidate (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    first_name TEXT NOT NULL,
    middle_name TEXT,
    last_name TEXT NOT NULL,
    position_id INTEGER NOT NULL REFERENCES position(id),
    status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'inactive')),
    votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0)
);

CREATE INDEX IF NOT EXISTS idx_candidate_position_id ON candidate(position_id);

-- Voters
CREATE TABLE IF NOT EXISTS voter (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    password TEXT NOT NULL,
    first_name TEXT NOT NULL,
    middle_name TEXT,
    last_name TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'inactive')),
    has_voted INTEGER NOT NULL DEFAULT 0
);

-- Votes (append-only audit trail)
CREATE TABLE IF NOT EXISTS vote (
    position_id INTEGER NOT NULL REFERENCES position(id),
    voter_id INTEGER NOT NULL REFERENCES voter(id),
    candidate_id INTEGER NOT NULL REFERENCES candidate(id),
    cast_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_candidate_id ON vote(candidate_id);
CREATE INDEX IF NOT EXISTS idx_vote_voter_id ON vote(voter_id);
`

const postgresSchema = `
-- Positions
CREATE TABLE IF NOT EXISTS position (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    seats INTEGER NOT NULL CHECK (seats > 0),
    status TEXT NOT NULL DEFAULT 'open' CHECK (status IN ('open', 'closed'))
);

-- Candidates
CREATE TABLE IF NOT EXISTS candidate (
    id BIGSERIAL PRIMARY KEY,
    first_name TEXT NOT NULL,
    middle_name TEXT,
    last_name TEXT NOT NULL,
    position_id BIGINT NOT NULL REFERENCES position(id),
    status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'inactive')),
    votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0)
);

CREATE INDEX IF NOT EXISTS idx_candidate_position_id ON candidate(position_id);

-- Voters
CREATE TABLE IF NOT EXISTS voter (
    id BIGSERIAL PRIMARY KEY,
    password TEXT NOT NULL,
    first_name TEXT NOT NULL,
    middle_name TEXT,
    last_name TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'inactive')),
    has_voted INTEGER NOT NULL DEFAULT 0
);

-- Votes (append-only audit trail)
CREATE TABLE IF NOT EXISTS vote (
    position_id BIGINT NOT NULL REFERENCES position(id),
    voter_id BIGINT NOT NULL REFERENCES voter(id),
    candidate_id BIGINT NOT NULL REFERENCES candidate(id),
    cast_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_candidate_id ON vote(candidate_id);
CREATE INDEX IF NOT EXISTS idx_vote_voter_id ON vote(voter_id);
`
