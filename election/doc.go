// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements the voting and tally engine.

The engine holds no state of its own; it operates over an injected
store.Store:

	engine := election.New(store.New(dbConn))

# Operations

  - Login: credential check plus eligibility (active, not yet voted)
  - Ballot: open positions with seat counts and active candidates
  - Cast: the core all-or-nothing voting transaction
  - Results: per-position tallies with percentages
  - Winners: top candidate per position

# Casting Guarantees

Cast runs entirely inside one storage transaction. Eligibility and every
position/candidate status are re-read inside that transaction, so an
administrator closing a position or deactivating a candidate between
ballot construction and submission fails the cast instead of being
silently accepted. The has_voted flag is flipped with a guarded UPDATE,
so of two concurrent submissions for the same voter exactly one commits
and the other returns ErrAlreadyVoted with no rows written.

Every selection writes one immutable vote row and increments the
candidate's denormalized counter in the same transaction, keeping
candidate.votes equal to the count of vote rows at all times.

# Errors

Eligibility and selection failures are typed: ErrInvalidCredentials,
ErrInactiveVoter, ErrAlreadyVoted, PositionNotOpenError,
TooManySelectionsError, CandidateNotEligibleError. Handlers map them to
HTTP statuses and the user-facing messages.
*/
package election
