package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	SessionSalt  string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("ballotbox", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or sqlite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSalt, "session-salt", "", "Voter session token salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 4817 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	// Secrets - MUST be provided
	if cfg.SessionSalt == "" {
		cfg.SessionSalt = os.Getenv("SESSION_SALT")
	}
	if cfg.SessionSalt == "" {
		return Config{}, errors.New("SESSION_SALT required")
	}

	return cfg, nil
}
