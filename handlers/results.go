// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"math"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/store"
)

type ResultsHandler struct {
	engine *election.Engine
	store  *store.Store
}

func NewResultsHandler(engine *election.Engine, st *store.Store) *ResultsHandler {
	return &ResultsHandler{engine: engine, store: st}
}

// GetResults handles GET /results
// Returns tallies with percentages, positions in ascending id order and
// candidates in descending vote order.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.engine.Results(r.Context())
	if err != nil {
		slog.Error("failed to compute results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// GetWinners handles GET /winners
// Returns the top candidate per position, ordered by descending winning
// vote count.
func (h *ResultsHandler) GetWinners(w http.ResponseWriter, r *http.Request) {
	winners, err := h.engine.Winners(r.Context())
	if err != nil {
		slog.Error("failed to compute winners", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, winners)
}

// GetSummary handles GET /summary
// Returns entity counts and turnout for the admin dashboard.
func (h *ResultsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	positions, err := h.store.ListPositions(ctx)
	if err != nil {
		slog.Error("failed to query positions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	open := 0
	for _, p := range positions {
		if p.Status == models.PositionOpen {
			open++
		}
	}

	candidates, err := h.store.ListCandidates(ctx)
	if err != nil {
		slog.Error("failed to query candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	voters, err := h.store.ListVoters(ctx)
	if err != nil {
		slog.Error("failed to query voters", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	voted := 0
	for _, v := range voters {
		if v.HasVoted {
			voted++
		}
	}

	votes, err := h.store.CountVotes(ctx)
	if err != nil {
		slog.Error("failed to count votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	turnout := 0.0
	if len(voters) > 0 {
		turnout = math.Round(float64(voted)/float64(len(voters))*10000) / 100
	}

	slog.Info("summary computed",
		"voters", humanize.Comma(int64(len(voters))),
		"votes_cast", humanize.Comma(int64(votes)),
		"turnout_percent", turnout,
	)

	middleware.JSONResponse(w, http.StatusOK, models.SummaryResponse{
		Positions:      len(positions),
		OpenPositions:  open,
		Candidates:     len(candidates),
		Voters:         len(voters),
		VotersVoted:    voted,
		VotesCast:      votes,
		TurnoutPercent: turnout,
	})
}
