// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines all API routes using Go 1.22+ pattern routing.

NewRouter builds the store and election engine from the database handle,
wires every handler, and wraps each route with request logging:

	mux := router.NewRouter(dbConn, cfg)

# Routes

Voting:

	POST /login
	GET  /ballot
	POST /ballot

Results:

	GET /results
	GET /winners
	GET /summary

Admin CRUD (positions, candidates, voters follow the same shape):

	GET    /positions
	POST   /positions
	PATCH  /positions/{id}
	DELETE /positions/{id}
	POST   /positions/{id}/open
	POST   /positions/{id}/close

Utility:

	GET /health
	GET /
*/
package router
