// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/handlers"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	st := store.New(db)
	engine := election.New(st)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(engine, cfg)
	votingHandler := handlers.NewVotingHandler(engine, cfg)
	resultsHandler := handlers.NewResultsHandler(engine, st)
	positionHandler := handlers.NewPositionHandler(st)
	candidateHandler := handlers.NewCandidateHandler(st)
	voterHandler := handlers.NewVoterHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voting operations (public)
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("GET /ballot", middleware.WithLogging(votingHandler.GetBallot))
	mux.HandleFunc("POST /ballot", middleware.WithLogging(votingHandler.SubmitBallot))

	// Results retrieval (public)
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /winners", middleware.WithLogging(resultsHandler.GetWinners))
	mux.HandleFunc("GET /summary", middleware.WithLogging(resultsHandler.GetSummary))

	// Position management (admin operations)
	mux.HandleFunc("GET /positions", middleware.WithLogging(positionHandler.List))
	mux.HandleFunc("POST /positions", middleware.WithLogging(positionHandler.Create))
	mux.HandleFunc("PATCH /positions/{id}", middleware.WithLogging(positionHandler.Update))
	mux.HandleFunc("DELETE /positions/{id}", middleware.WithLogging(positionHandler.Delete))
	mux.HandleFunc("POST /positions/{id}/open", middleware.WithLogging(positionHandler.Open))
	mux.HandleFunc("POST /positions/{id}/close", middleware.WithLogging(positionHandler.Close))

	// Candidate management (admin operations)
	mux.HandleFunc("GET /candidates", middleware.WithLogging(candidateHandler.List))
	mux.HandleFunc("POST /candidates", middleware.WithLogging(candidateHandler.Create))
	mux.HandleFunc("PATCH /candidates/{id}", middleware.WithLogging(candidateHandler.Update))
	mux.HandleFunc("DELETE /candidates/{id}", middleware.WithLogging(candidateHandler.Delete))
	mux.HandleFunc("POST /candidates/{id}/activate", middleware.WithLogging(candidateHandler.Activate))
	mux.HandleFunc("POST /candidates/{id}/deactivate", middleware.WithLogging(candidateHandler.Deactivate))

	// Voter management (admin operations)
	mux.HandleFunc("GET /voters", middleware.WithLogging(voterHandler.List))
	mux.HandleFunc("POST /voters", middleware.WithLogging(voterHandler.Create))
	mux.HandleFunc("PATCH /voters/{id}", middleware.WithLogging(voterHandler.Update))
	mux.HandleFunc("DELETE /voters/{id}", middleware.WithLogging(voterHandler.Delete))
	mux.HandleFunc("POST /voters/{id}/activate", middleware.WithLogging(voterHandler.Activate))
	mux.HandleFunc("POST /voters/{id}/deactivate", middleware.WithLogging(voterHandler.Deactivate))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ballotbox API v1"))
	})

	return mux
}
