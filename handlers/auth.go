// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

type AuthHandler struct {
	engine *election.Engine
	cfg    cliparse.Config
}

func NewAuthHandler(engine *election.Engine, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{engine: engine, cfg: cfg}
}

// Login handles POST /login
// Verifies credentials and eligibility; on success returns a session
// token the ballot-submit endpoint requires.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.VoterID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter_id is required")
		return
	}
	if req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password is required")
		return
	}

	voter, err := h.engine.Login(r.Context(), req.VoterID, req.Password)
	if err != nil {
		slog.Info("login rejected", "voter_id", req.VoterID, "remote", middleware.GetClientIP(r), "reason", err)
		writeElectionError(w, err)
		return
	}

	slog.Info("voter logged in", "voter_id", voter.ID)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		VoterID:    voter.ID,
		Name:       voter.Name(),
		VoterToken: auth.GenerateVoterToken(voter.ID, h.cfg.SessionSalt),
		Redirect:   fmt.Sprintf("/vote/%d", voter.ID),
	})
}
