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

type PositionHandler struct {
	store *store.Store
}

func NewPositionHandler(st *store.Store) *PositionHandler {
	return &PositionHandler{store: st}
}

// List handles GET /positions
func (h *PositionHandler) List(w http.ResponseWriter, r *http.Request) {
	positions, err := h.store.ListPositions(r.Context())
	if err != nil {
		slog.Error("failed to query positions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, positions)
}

// Create handles POST /positions
func (h *PositionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePositionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Seats < 1 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "seats must be a positive integer")
		return
	}
	if req.Status == "" {
		req.Status = models.PositionOpen
	}
	if req.Status != models.PositionOpen && req.Status != models.PositionClosed {
		middleware.ErrorResponse(w, http.StatusBadRequest, "status must be open or closed")
		return
	}

	id, err := h.store.CreatePosition(r.Context(), req.Name, req.Seats, req.Status)
	if err != nil {
		slog.Error("failed to insert position", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create position")
		return
	}

	slog.Info("position created", "position_id", id, "name", req.Name, "seats", req.Seats)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateResponse{ID: id})
}

// Update handles PATCH /positions/{id}
// Absent fields keep their stored value; a missing id is a no-op.
func (h *PositionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid position id")
		return
	}

	var req models.UpdatePositionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Seats != nil && *req.Seats < 1 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "seats must be a positive integer")
		return
	}
	if req.Status != nil && *req.Status != models.PositionOpen && *req.Status != models.PositionClosed {
		middleware.ErrorResponse(w, http.StatusBadRequest, "status must be open or closed")
		return
	}

	if err := h.store.UpdatePosition(r.Context(), id, req); err != nil {
		slog.Error("failed to update position", "error", err, "position_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update position")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CreateResponse{ID: id})
}

// Delete handles DELETE /positions/{id}
func (h *PositionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid position id")
		return
	}

	if err := h.store.DeletePosition(r.Context(), id); err != nil {
		slog.Error("failed to delete position", "error", err, "position_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete position")
		return
	}

	slog.Info("position deleted", "position_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// Open handles POST /positions/{id}/open
func (h *PositionHandler) Open(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.PositionOpen)
}

// Close handles POST /positions/{id}/close
func (h *PositionHandler) Close(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.PositionClosed)
}

func (h *PositionHandler) setStatus(w http.ResponseWriter, r *http.Request, status string) {
	id, err := pathID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid position id")
		return
	}

	if err := h.store.UpdatePosition(r.Context(), id, models.UpdatePositionRequest{Status: &status}); err != nil {
		slog.Error("failed to update position status", "error", err, "position_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update position")
		return
	}

	slog.Info("position status changed", "position_id", id, "status", status)

	middleware.JSONResponse(w, http.StatusOK, models.CreateResponse{ID: id})
}
