// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Ballot Box API server.

Ballot Box runs a small internal election: administrators manage positions,
candidates, and registered voters; voters log in with a numeric ID and
password, cast their ballot exactly once, and results and winners are
available as tallies with percentages.

# Starting the Server

The server reads configuration from a .env file, environment variables, or
CLI flags:

	DATABASE_URL=election.db go run main.go

Or with flags:

	go run main.go -p 4817 -d election.db -t sqlite

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file path or PostgreSQL connection string
  - SESSION_SALT (--session-salt): Secret for voter session token HMAC

Optional settings:

  - PORT (-p): Server port (default: 4817)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - election: the voting and tally engine (eligibility, casting, results)
  - store: typed record storage over database/sql with transactions
  - handlers: HTTP request handlers (login, ballot, results, admin CRUD)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request logging, JSON helpers
  - models: Request/response and domain types
  - auth: Voter session token generation and validation
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
