// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/store"
)

// pathID parses the {id} path segment as a record id.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// writeElectionError maps engine errors to HTTP statuses and the
// user-facing messages.
func writeElectionError(w http.ResponseWriter, err error) {
	var notOpen *election.PositionNotOpenError
	var tooMany *election.TooManySelectionsError
	var notEligible *election.CandidateNotEligibleError

	switch {
	case errors.Is(err, election.ErrInvalidCredentials):
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid login")
	case errors.Is(err, election.ErrInactiveVoter):
		middleware.ErrorResponse(w, http.StatusForbidden, "Your account is inactive. Please contact administrator.")
	case errors.Is(err, election.ErrAlreadyVoted):
		middleware.ErrorResponse(w, http.StatusConflict, "You already voted.")
	case errors.As(err, &notOpen):
		middleware.ErrorResponse(w, http.StatusConflict,
			fmt.Sprintf("Position %d is not open for voting", notOpen.PositionID))
	case errors.As(err, &tooMany):
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Too many votes for position %s (max %d)", tooMany.PositionName, tooMany.Seats))
	case errors.As(err, &notEligible):
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Candidate %d is not eligible for position %d", notEligible.CandidateID, notEligible.PositionID))
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
	default:
		slog.Error("request failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
