// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database driver selection and schema creation.

# Opening

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

sqlite (modernc.org/sqlite, CGo-free) is the default and takes a plain file
path; postgres (lib/pq) takes a connection string. The sqlite pool is capped
at a single connection because sqlite allows one writer at a time.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - position: electable offices with a seat count and open/closed status
  - candidate: people standing for a position, with a denormalized vote counter
  - voter: registered accounts with a one-shot has_voted flag
  - vote: append-only audit rows, one per (voter, candidate) selection

# Relationships

	position 1──* candidate
	position 1──* vote
	voter    1──* vote
	candidate 1──* vote

Vote rows are never updated or deleted; candidate.votes is kept equal to the
count of vote rows by the casting transaction.

# Placeholders

All SQL in this codebase uses $N placeholders in ascending textual order,
which both lib/pq and modernc.org/sqlite accept.
*/
package db
