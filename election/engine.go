// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"slices"
	"time"

	"golang.org/x/exp/maps"

	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/store"
)

// Engine implements the voting rules over an injected storage handle.
type Engine struct {
	store *store.Store
}

func New(st *store.Store) *Engine {
	return &Engine{store: st}
}

// Login verifies the voter id and exact password and checks eligibility.
// Returns ErrInvalidCredentials on no match, ErrInactiveVoter or
// ErrAlreadyVoted when the account cannot cast a ballot.
func (e *Engine) Login(ctx context.Context, voterID int64, password string) (models.Voter, error) {
	voter, err := e.store.GetVoterByCredentials(ctx, voterID, password)
	if err == store.ErrNotFound {
		return models.Voter{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Voter{}, err
	}

	if voter.Status != models.StatusActive {
		return models.Voter{}, ErrInactiveVoter
	}
	if voter.HasVoted {
		return models.Voter{}, ErrAlreadyVoted
	}

	return voter, nil
}

// Ballot builds the offer for eligible voters: every open position with
// its seat count and active candidates. Positions with no qualifying
// candidates are included with an empty list.
func (e *Engine) Ballot(ctx context.Context) ([]models.BallotPosition, error) {
	positions, err := e.store.OpenPositions(ctx)
	if err != nil {
		return nil, err
	}

	ballot := []models.BallotPosition{}
	for _, pos := range positions {
		candidates, err := e.store.ActiveCandidatesByPosition(ctx, pos.ID)
		if err != nil {
			return nil, err
		}

		bp := models.BallotPosition{
			ID:         pos.ID,
			Name:       pos.Name,
			Seats:      pos.Seats,
			Candidates: []models.BallotCandidate{},
		}
		for _, c := range candidates {
			bp.Candidates = append(bp.Candidates, models.BallotCandidate{ID: c.ID, Name: c.Name()})
		}
		ballot = append(ballot, bp)
	}

	return ballot, nil
}

// Cast records a voter's full ballot as one all-or-nothing transaction.
//
// Preconditions, checked in order inside the transaction so state read
// at ballot construction cannot go stale between login and submit:
//
//  1. voter exists, is active, and has not voted
//  2. every selected position exists and is open
//  3. selections per position do not exceed the position's seats
//  4. every selected candidate is active and belongs to that position
//
// Duplicate candidate ids within one position are deduplicated before
// the seat check and before any write.
func (e *Engine) Cast(ctx context.Context, voterID int64, selections map[int64][]int64) error {
	now := time.Now()

	return e.store.WithTx(ctx, func(tx *store.Store) error {
		voter, err := tx.GetVoter(ctx, voterID)
		if err == store.ErrNotFound {
			return ErrInvalidCredentials
		}
		if err != nil {
			return err
		}
		if voter.Status != models.StatusActive {
			return ErrInactiveVoter
		}
		if voter.HasVoted {
			return ErrAlreadyVoted
		}

		// Deterministic position order regardless of map iteration
		positionIDs := maps.Keys(selections)
		slices.Sort(positionIDs)

		type pick struct {
			positionID  int64
			candidateID int64
		}
		var picks []pick

		for _, posID := range positionIDs {
			pos, err := tx.GetPosition(ctx, posID)
			if err == store.ErrNotFound {
				return &PositionNotOpenError{PositionID: posID}
			}
			if err != nil {
				return err
			}
			if pos.Status != models.PositionOpen {
				return &PositionNotOpenError{PositionID: posID}
			}

			candidateIDs := dedupe(selections[posID])
			if len(candidateIDs) > pos.Seats {
				return &TooManySelectionsError{PositionID: pos.ID, PositionName: pos.Name, Seats: pos.Seats}
			}

			for _, candID := range candidateIDs {
				cand, err := tx.GetCandidate(ctx, candID)
				if err == store.ErrNotFound {
					return &CandidateNotEligibleError{CandidateID: candID, PositionID: posID}
				}
				if err != nil {
					return err
				}
				if cand.PositionID != posID || cand.Status != models.StatusActive {
					return &CandidateNotEligibleError{CandidateID: candID, PositionID: posID}
				}
				picks = append(picks, pick{positionID: posID, candidateID: candID})
			}
		}

		// All preconditions passed; now the writes
		for _, p := range picks {
			if err := tx.InsertVote(ctx, p.positionID, voterID, p.candidateID, now); err != nil {
				return err
			}
			if err := tx.IncrementVotes(ctx, p.candidateID); err != nil {
				return err
			}
		}

		marked, err := tx.MarkVoted(ctx, voterID)
		if err != nil {
			return err
		}
		if !marked {
			// Lost a double-submit race; roll everything back
			return ErrAlreadyVoted
		}

		return nil
	})
}

// dedupe removes repeated ids, preserving first-seen order.
func dedupe(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
