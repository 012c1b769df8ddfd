// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/store"
)

type VoterHandler struct {
	store *store.Store
}

func NewVoterHandler(st *store.Store) *VoterHandler {
	return &VoterHandler{store: st}
}

// List handles GET /voters
// Passwords are never serialized (json:"-" on the model).
func (h *VoterHandler) List(w http.ResponseWriter, r *http.Request) {
	voters, err := h.store.ListVoters(r.Context())
	if err != nil {
		slog.Error("failed to query voters", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, voters)
}

// Create handles POST /voters
func (h *VoterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password is required")
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

	id, err := h.store.CreateVoter(r.Context(), req.Password, req.FirstName, req.MiddleName, req.LastName, req.Status)
	if err != nil {
		slog.Error("failed to insert voter", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create voter")
		return
	}

	slog.Info("voter created", "voter_id", id)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateResponse{ID: id})
}

// Update handles PATCH /voters/{id}
// Absent fields keep their stored value; a missing id is a no-op.
func (h *VoterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid voter id")
		return
	}

	var req models.UpdateVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Status != nil && *req.Status != models.StatusActive && *req.Status != models.StatusInactive {
		middleware.ErrorResponse(w, http.StatusBadRequest, "status must be active or inactive")
		return
	}

	if err := h.store.UpdateVoter(r.Context(), id, req); err != nil {
		slog.Error("failed to update voter", "error", err, "voter_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update voter")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CreateResponse{ID: id})
}

// Delete handles DELETE /voters/{id}
// Already-cast vote rows are untouched.
func (h *VoterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid voter id")
		return
	}

	if err := h.store.DeleteVoter(r.Context(), id); err != nil {
		slog.Error("failed to delete voter", "error", err, "voter_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete voter")
		return
	}

	slog.Info("voter deleted", "voter_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// Activate handles POST /voters/{id}/activate
func (h *VoterHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.StatusActive)
}

// Deactivate handles POST /voters/{id}/deactivate
func (h *VoterHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.StatusInactive)
}

func (h *VoterHandler) setStatus(w http.ResponseWriter, r *http.Request, status string) {
	id, err := pathID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid voter id")
		return
	}

	if err := h.store.UpdateVoter(r.Context(), id, models.UpdateVoterRequest{Status: &status}); err != nil {
		slog.Error("failed to update voter status", "error", err, "voter_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update voter")
		return
	}

	slog.Info("voter status changed", "voter_id", id, "status", status)

	middleware.JSONResponse(w, http.StatusOK, models.CreateResponse{ID: id})
}
