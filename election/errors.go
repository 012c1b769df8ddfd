// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials means no voter matched the id/password pair.
	ErrInvalidCredentials = errors.New("invalid login")

	// ErrInactiveVoter means the voter exists but is deactivated.
	ErrInactiveVoter = errors.New("voter account is inactive")

	// ErrAlreadyVoted means the voter's one submission has been used.
	ErrAlreadyVoted = errors.New("voter already voted")
)

// PositionNotOpenError reports a selection against a position that is
// missing or not open at cast time.
type PositionNotOpenError struct {
	PositionID int64
}

func (e *PositionNotOpenError) Error() string {
	return fmt.Sprintf("position %d is not open for voting", e.PositionID)
}

// TooManySelectionsError reports a selection exceeding a position's
// seat count.
type TooManySelectionsError struct {
	PositionID   int64
	PositionName string
	Seats        int
}

func (e *TooManySelectionsError) Error() string {
	return fmt.Sprintf("too many votes for position %s (max %d)", e.PositionName, e.Seats)
}

// CandidateNotEligibleError reports a selected candidate that is
// missing, inactive, or standing for a different position.
type CandidateNotEligibleError struct {
	CandidateID int64
	PositionID  int64
}

func (e *CandidateNotEligibleError) Error() string {
	return fmt.Sprintf("candidate %d is not eligible for position %d", e.CandidateID, e.PositionID)
}
