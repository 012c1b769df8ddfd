// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

type VotingHandler struct {
	engine *election.Engine
	cfg    cliparse.Config
}

func NewVotingHandler(engine *election.Engine, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{engine: engine, cfg: cfg}
}

// GetBallot handles GET /ballot
// Returns every open position with its seat count and active candidates.
// Positions with no qualifying candidates are included with an empty
// list; hiding them is the frontend's choice.
func (h *VotingHandler) GetBallot(w http.ResponseWriter, r *http.Request) {
	ballot, err := h.engine.Ballot(r.Context())
	if err != nil {
		slog.Error("failed to build ballot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ballot)
}

// SubmitBallot handles POST /ballot
// Records the voter's full set of selections as one all-or-nothing cast.
func (h *VotingHandler) SubmitBallot(w http.ResponseWriter, r *http.Request) {
	// Get voter token from header
	voterToken := r.Header.Get("X-Voter-Token")
	if voterToken == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Voter-Token header required")
		return
	}

	// Parse request
	var req models.CastBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.VoterID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter_id is required")
		return
	}
	if len(req.Selections) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "selections cannot be empty")
		return
	}

	// Verify the session token belongs to this voter
	if err := auth.ValidateVoterToken(req.VoterID, voterToken, h.cfg.SessionSalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid voter token")
		return
	}

	if err := h.engine.Cast(r.Context(), req.VoterID, req.Selections); err != nil {
		slog.Info("ballot rejected", "voter_id", req.VoterID, "reason", err)
		writeElectionError(w, err)
		return
	}

	slog.Info("ballot cast", "voter_id", req.VoterID, "positions", len(req.Selections))

	middleware.JSONResponse(w, http.StatusCreated, models.CastBallotResponse{
		Message: "Vote submitted successfully!",
	})
}
