// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"testing"

	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/testutil"
)

func TestResultsPercentages(t *testing.T) {
	conn, _, engine := setupEngine(t)
	ctx := context.Background()

	posID := testutil.CreateTestPosition(t, conn, "President", 1, models.PositionOpen)
	c1 := testutil.CreateTestCandidate(t, conn, posID, "Alice", "Anders", models.StatusActive)
	c2 := testutil.CreateTestCandidate(t, conn, posID, "Bob", "Brown", models.StatusActive)
	c3 := testutil.CreateTestCandidate(t, conn, posID, "Carol", "Chen", models.StatusActive)

	// 3, 1, 0 votes
	for i := 0; i < 3; i++ {
		voterID := testutil.CreateTestVoter(t, conn, "pw", "Voter", "N", models.StatusActive, true)
		testutil.InsertTestVote(t, conn, posID, voterID, c1)
	}
	voterID := testutil.CreateTestVoter(t, conn, "pw", "Voter", "N", models.StatusActive, true)
	testutil.InsertTestVote(t, conn, posID, voterID, c2)

	results, err := engine.Results(ctx)
	if err != nil {
		t.Fatalf("Results failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("Expected 1 position result, got %d", len(results))
	}
	pr := results[0]
	if pr.TotalVotes != 4 {
		t.Errorf("Expected total 4, got %d", pr.TotalVotes)
	}

	want := []struct {
		id      int64
		votes   int
		percent float64
	}{
		{c1, 3, 75.00},
		{c2, 1, 25.00},
		{c3, 0, 0.00},
	}
	if len(pr.Candidates) != len(want) {
		t.Fatalf("Expected %d candidates, got %d", len(want), len(pr.Candidates))
	}
	for i, w := range want {
		got := pr.Candidates[i]
		if got.ID != w.id || got.Votes != w.votes || got.Percent != w.percent {
			t.Errorf("Candidate %d: expected {%d %d %.2f}, got {%d %d %.2f}",
				i, w.id, w.votes, w.percent, got.ID, got.Votes, got.Percent)
		}
	}
}

func TestResultsZeroVotes(t *testing.T) {
	conn, _, engine := setupEngine(t)
	ctx := context.Background()

	posID := testutil.CreateTestPosition(t, conn, "President", 1, models.PositionOpen)
	testutil.CreateTestCandidate(t, conn, posID, "Alice", "Anders", models.StatusActive)
	testutil.CreateTestCandidate(t, conn, posID, "Bob", "Brown", models.StatusActive)

	results, err := engine.Results(ctx)
	if err != nil {
		t.Fatalf("Results failed: %v", err)
	}

	for _, c := range results[0].Candidates {
		if c.Percent != 0.00 {
			t.Errorf("Expected 0.00 percent with zero total, got %.2f", c.Percent)
		}
	}
}

func TestResultsIncludeInactiveAndClosed(t *testing.T) {
	conn, _, engine := setupEngine(t)
	ctx := context.Background()

	// Tallies cover every position and candidate, not just the ballot view
	closedID := testutil.CreateTestPosition(t, conn, "Secretary", 1, models.PositionClosed)
	inactive := testutil.CreateTestCandidate(t, conn, closedID, "Alice", "Anders", models.StatusInactive)

	voterID := testutil.CreateTestVoter(t, conn, "pw", "Voter", "N", models.StatusActive, true)
	testutil.InsertTestVote(t, conn, closedID, voterID, inactive)

	results, err := engine.Results(ctx)
	if err != nil {
		t.Fatalf("Results failed: %v", err)
	}
	if len(results) != 1 || len(results[0].Candidates) != 1 {
		t.Fatalf("Expected closed position with inactive candidate in results: %+v", results)
	}
	if results[0].Candidates[0].Votes != 1 {
		t.Errorf("Expected 1 vote, got %d", results[0].Candidates[0].Votes)
	}
}

func TestResultsIdempotent(t *testing.T) {
	conn, _, engine := setupEngine(t)
	ctx := context.Background()

	posID := testutil.CreateTestPosition(t, conn, "President", 1, models.PositionOpen)
	candID := testutil.CreateTestCandidate(t, conn, posID, "Alice", "Anders", models.StatusActive)
	voterID := testutil.CreateTestVoter(t, conn, "pw", "Voter", "N", models.StatusActive, true)
	testutil.InsertTestVote(t, conn, posID, voterID, candID)

	first, err := engine.Results(ctx)
	if err != nil {
		t.Fatalf("Results failed: %v", err)
	}
	second, err := engine.Results(ctx)
	if err != nil {
		t.Fatalf("Results failed: %v", err)
	}

	if len(first) != len(second) || first[0].TotalVotes != second[0].TotalVotes {
		t.Errorf("Repeated tallies disagree: %+v vs %+v", first, second)
	}
	if first[0].Candidates[0].Votes != 1 || second[0].Candidates[0].Votes != 1 {
		t.Error("Tally mutated vote counts")
	}
}

func TestWinnersOrderedByVotes(t *testing.T) {
	conn, _, engine := setupEngine(t)
	ctx := context.Background()

	p1 := testutil.CreateTestPosition(t, conn, "President", 1, models.PositionOpen)
	p2 := testutil.CreateTestPosition(t, conn, "Secretary", 1, models.PositionOpen)
	c1 := testutil.CreateTestCandidate(t, conn, p1, "Alice", "Anders", models.StatusActive)
	c2 := testutil.CreateTestCandidate(t, conn, p2, "Bob", "Brown", models.StatusActive)

	// Secretary's winner has more votes than President's
	for i := 0; i < 3; i++ {
		voterID := testutil.CreateTestVoter(t, conn, "pw", "Voter", "N", models.StatusActive, true)
		testutil.InsertTestVote(t, conn, p2, voterID, c2)
	}
	voterID := testutil.CreateTestVoter(t, conn, "pw", "Voter", "N", models.StatusActive, true)
	testutil.InsertTestVote(t, conn, p1, voterID, c1)

	winners, err := engine.Winners(ctx)
	if err != nil {
		t.Fatalf("Winners failed: %v", err)
	}

	if len(winners) != 2 {
		t.Fatalf("Expected 2 winners, got %d", len(winners))
	}
	if winners[0].CandidateID != c2 || winners[0].Votes != 3 {
		t.Errorf("Unexpected first winner: %+v", winners[0])
	}
	if winners[1].CandidateID != c1 || winners[1].Votes != 1 {
		t.Errorf("Unexpected second winner: %+v", winners[1])
	}
}

func TestWinnersTieBreakStable(t *testing.T) {
	conn, _, engine := setupEngine(t)
	ctx := context.Background()

	posID := testutil.CreateTestPosition(t, conn, "President", 1, models.PositionOpen)
	c1 := testutil.CreateTestCandidate(t, conn, posID, "Alice", "Anders", models.StatusActive)
	c2 := testutil.CreateTestCandidate(t, conn, posID, "Bob", "Brown", models.StatusActive)

	for _, candID := range []int64{c1, c2} {
		voterID := testutil.CreateTestVoter(t, conn, "pw", "Voter", "N", models.StatusActive, true)
		testutil.InsertTestVote(t, conn, posID, voterID, candID)
	}

	// Same inputs must produce the same winner every time
	for i := 0; i < 3; i++ {
		winners, err := engine.Winners(ctx)
		if err != nil {
			t.Fatalf("Winners failed: %v", err)
		}
		if len(winners) != 1 {
			t.Fatalf("Expected 1 winner, got %d", len(winners))
		}
		if winners[0].CandidateID != c1 {
			t.Errorf("Run %d: expected candidate %d to win the tie, got %d", i, c1, winners[0].CandidateID)
		}
	}
}

func TestWinnersSkipEmptyPositions(t *testing.T) {
	conn, _, engine := setupEngine(t)
	ctx := context.Background()

	testutil.CreateTestPosition(t, conn, "President", 1, models.PositionOpen)

	winners, err := engine.Winners(ctx)
	if err != nil {
		t.Fatalf("Winners failed: %v", err)
	}
	if len(winners) != 0 {
		t.Errorf("Expected no winners for candidate-less position, got %+v", winners)
	}
}

func TestPercentRounding(t *testing.T) {
	tests := []struct {
		votes, total int
		want         float64
	}{
		{1, 3, 33.33},
		{2, 3, 66.67},
		{1, 1, 100.00},
		{0, 5, 0.00},
		{0, 0, 0.00},
		{1, 8, 12.50},
	}

	for _, tt := range tests {
		if got := percent(tt.votes, tt.total); got != tt.want {
			t.Errorf("percent(%d, %d) = %.2f, want %.2f", tt.votes, tt.total, got, tt.want)
		}
	}
}
