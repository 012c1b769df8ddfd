// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/db"
	"github.com/danielhkuo/ballotbox/router"
)

func main() {
	// Load .env if present; real environment variables win
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded .env file")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the election database (sqlite or postgres)
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Create router
	mux := router.NewRouter(dbConn, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
