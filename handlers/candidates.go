// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/store"
)

type CandidateHandler struct {
	store *store.Store
}

func NewCandidateHandler(st *store.Store) *CandidateHandler {
	return &CandidateHandler{store: st}
}

// List handles GET /candidates
// Returns all candidates joined with their position name.
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.store.ListCandidates(r.Context())
	if err != nil {
		slog.Error("failed to query candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// Create handles POST /candidates
func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.FirstName == "" || req.LastName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "first_name and last_name are required")
		return
	}
	if req.Status == "" {
		req.Status = models.StatusActive
	}
	if req.Status != models.StatusActive && req.Status != models.StatusInactive {
		middleware.ErrorResponse(w, http.StatusBadRequest, "status must be active or inactive")
		return
	}

	// The position must exist (referential integrity)
	if _, err := h.store.GetPosition(r.Context(), req.PositionID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "position does not exist")
			return
		}
		slog.Error("failed to query position", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	id, err := h.store.CreateCandidate(r.Context(), req.FirstName, req.MiddleName, req.LastName, req.PositionID, req.Status)
	if err != nil {
		slog.Error("failed to insert candidate", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create candidate")
		return
	}

	slog.Info("candidate created", "candidate_id", id, "position_id", req.PositionID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateResponse{ID: id})
}

// Update handles PATCH /candidates/{id}
// Absent fields keep their stored value; a missing id is a no-op.
func (h *CandidateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	var req models.UpdateCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Status != nil && *req.Status != models.StatusActive && *req.Status != models.StatusInactive {
		middleware.ErrorResponse(w, http.StatusBadRequest, "status must be active or inactive")
		return
	}
	if req.PositionID != nil {
		if _, err := h.store.GetPosition(r.Context(), *req.PositionID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				middleware.ErrorResponse(w, http.StatusBadRequest, "position does not exist")
				return
			}
			slog.Error("failed to query position", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	if err := h.store.UpdateCandidate(r.Context(), id, req); err != nil {
		slog.Error("failed to update candidate", "error", err, "candidate_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update candidate")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CreateResponse{ID: id})
}

// Delete handles DELETE /candidates/{id}
func (h *CandidateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	if err := h.store.DeleteCandidate(r.Context(), id); err != nil {
		slog.Error("failed to delete candidate", "error", err, "candidate_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete candidate")
		return
	}

	slog.Info("candidate deleted", "candidate_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// Activate handles POST /candidates/{id}/activate
func (h *CandidateHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.StatusActive)
}

// Deactivate handles POST /candidates/{id}/deactivate
// Does not touch already-cast votes or the candidate's vote count.
func (h *CandidateHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.StatusInactive)
}

func (h *CandidateHandler) setStatus(w http.ResponseWriter, r *http.Request, status string) {
	id, err := pathID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	if err := h.store.UpdateCandidate(r.Context(), id, models.UpdateCandidateRequest{Status: &status}); err != nil {
		slog.Error("failed to update candidate status", "error", err, "candidate_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update candidate")
		return
	}

	slog.Info("candidate status changed", "candidate_id", id, "status", status)

	middleware.JSONResponse(w, http.StatusOK, models.CreateResponse{ID: id})
}
