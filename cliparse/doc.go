// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles server configuration from CLI flags and environment.

# Precedence

CLI flags take precedence over environment variables:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Settings

  - -p / PORT: server port (default 4817)
  - -d / DATABASE_URL: sqlite file path or PostgreSQL connection string (required)
  - -t / DATABASE_TYPE: sqlite or postgres (default sqlite)
  - --session-salt / SESSION_SALT: voter session token salt (required)

Secrets should come from the environment; the CLI flags exist for local
development only.
*/
package cliparse
