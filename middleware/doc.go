// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Request Logging

WithLogging logs request start and completion with duration and a
per-request UUID, echoed to the client as X-Request-ID:

	mux.HandleFunc("POST /login", middleware.WithLogging(handler.Login))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	err := middleware.ParseJSONBody(r, &req)

ErrorResponse renders the models.ErrorResponse shape with the standard
status text and a human-readable message.

# CORS

CORS wraps the whole mux, allows the admin frontend origin, and
short-circuits OPTIONS preflight requests.

# Client IP

GetClientIP resolves the caller's address through X-Forwarded-For and
X-Real-IP before falling back to RemoteAddr; used for login audit logs.
*/
package middleware
