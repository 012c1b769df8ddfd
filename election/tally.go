// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"math"
	"sort"

	"github.com/danielhkuo/ballotbox/models"
)

// Results groups all candidates by position and computes vote shares.
// Positions come back in ascending id order, candidates within a
// position in descending vote order. Percentages are rounded to two
// decimals; a position with zero total votes reports 0.00 for every
// candidate.
func (e *Engine) Results(ctx context.Context) ([]models.PositionResult, error) {
	positions, err := e.store.ListPositions(ctx)
	if err != nil {
		return nil, err
	}
	candidates, err := e.store.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}

	byPosition := make(map[int64][]models.Candidate)
	for _, c := range candidates {
		byPosition[c.PositionID] = append(byPosition[c.PositionID], c)
	}

	results := []models.PositionResult{}
	for _, pos := range positions {
		group := byPosition[pos.ID]

		total := 0
		for _, c := range group {
			total += c.Votes
		}

		// Candidates arrive in ascending id order; a stable sort keeps
		// that order for equal vote counts
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Votes > group[j].Votes
		})

		pr := models.PositionResult{
			PositionID:   pos.ID,
			PositionName: pos.Name,
			TotalVotes:   total,
			Candidates:   []models.CandidateResult{},
		}
		for _, c := range group {
			pr.Candidates = append(pr.Candidates, models.CandidateResult{
				ID:      c.ID,
				Name:    c.Name(),
				Votes:   c.Votes,
				Percent: percent(c.Votes, total),
			})
		}
		results = append(results, pr)
	}

	return results, nil
}

// Winners picks the top candidate per position, positions ordered by
// descending winning vote count. The tie-break is implementation-defined
// but stable: on equal counts the candidate with the lowest id wins,
// because candidates are scanned in ascending id order. Positions with
// no candidates are omitted.
func (e *Engine) Winners(ctx context.Context) ([]models.PositionWinner, error) {
	positions, err := e.store.ListPositions(ctx)
	if err != nil {
		return nil, err
	}
	candidates, err := e.store.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}

	best := make(map[int64]models.Candidate)
	for _, c := range candidates {
		if top, ok := best[c.PositionID]; !ok || c.Votes > top.Votes {
			best[c.PositionID] = c
		}
	}

	winners := []models.PositionWinner{}
	for _, pos := range positions {
		top, ok := best[pos.ID]
		if !ok {
			continue
		}
		winners = append(winners, models.PositionWinner{
			PositionID:   pos.ID,
			PositionName: pos.Name,
			CandidateID:  top.ID,
			Candidate:    top.Name(),
			Votes:        top.Votes,
		})
	}

	sort.SliceStable(winners, func(i, j int) bool {
		return winners[i].Votes > winners[j].Votes
	})

	return winners, nil
}

// percent computes votes/total*100 rounded to two decimals, 0 when the
// total is zero.
func percent(votes, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(votes)/float64(total)*10000) / 100
}
