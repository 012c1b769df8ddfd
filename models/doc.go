// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - LoginRequest: voter_id, password
  - CastBallotRequest: voter_id, selections (map of position id to candidate ids)
  - CreatePositionRequest / CreateCandidateRequest / CreateVoterRequest
  - UpdatePositionRequest / UpdateCandidateRequest / UpdateVoterRequest

Update requests use pointer fields: a field absent from the JSON body stays
nil and the stored value is kept. This is the merge-on-update contract the
storage layer implements.

# Response Types

  - LoginResponse: voter_id, name, voter_token, redirect
  - CastBallotResponse: message
  - CreateResponse: id
  - SummaryResponse: entity counts and turnout
  - ErrorResponse: error, message

# Domain Types

  - Position: electable office with seat count and open/closed status
  - Candidate: person standing for a position, with denormalized vote count
  - Voter: registered account; password never serialized
  - Vote: immutable audit record of one selection
  - BallotPosition / BallotCandidate: what an eligible voter is offered
  - PositionResult / CandidateResult / PositionWinner: computed tallies

# Constants

Position status:

	PositionOpen   = "open"
	PositionClosed = "closed"

Candidate and voter status:

	StatusActive   = "active"
	StatusInactive = "inactive"
*/
package models
