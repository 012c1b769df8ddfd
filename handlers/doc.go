// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Ballot Box API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - AuthHandler: voter login and session token issuance
  - VotingHandler: ballot retrieval and submission
  - ResultsHandler: tallies, winners, and the election summary
  - PositionHandler / CandidateHandler / VoterHandler: admin CRUD

The voting-path handlers depend on the election engine; the admin CRUD
handlers talk to the store directly.

# Voting Flow

	POST /login   → Login (returns voter_token and redirect)
	GET  /ballot  → GetBallot (open positions with active candidates)
	POST /ballot  → SubmitBallot (X-Voter-Token header required)

Submission is all-or-nothing: any failed precondition leaves no votes
written and the voter still able to submit.

# Results

	GET /results → per-position tallies with two-decimal percentages
	GET /winners → top candidate per position
	GET /summary → entity counts and turnout

# Admin CRUD

Positions, candidates, and voters share the same route shape:

	GET    /{entity}
	POST   /{entity}
	PATCH  /{entity}/{id}    (absent fields keep their stored value)
	DELETE /{entity}/{id}
	POST   /{entity}/{id}/activate|deactivate  (open|close for positions)

Updates and deletes against a missing id succeed silently, mirroring the
listing-redirect behavior the admin frontend expects.

# Error Mapping

Engine errors carry the user-facing message semantics; writeElectionError
translates the typed taxonomy to HTTP statuses:

	ErrInvalidCredentials      → 401 "Invalid login"
	ErrInactiveVoter           → 403 "Your account is inactive. ..."
	ErrAlreadyVoted            → 409 "You already voted."
	PositionNotOpenError       → 409
	TooManySelectionsError     → 400 "Too many votes for position ..."
	CandidateNotEligibleError  → 400
*/
package handlers
