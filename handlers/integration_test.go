// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/testutil"
)

// Full election round-trip: admin sets up the race, voters log in and
// cast, results and winners come out consistent.
func TestElectionEndToEnd(t *testing.T) {
	env := setupEnv(t)

	create := func(path string, body interface{}) int64 {
		t.Helper()
		req := testutil.MakeRequest("POST", path, body, nil)
		w := httptest.NewRecorder()
		switch path {
		case "/positions":
			env.positions.Create(w, req)
		case "/candidates":
			env.candidates.Create(w, req)
		case "/voters":
			env.voters.Create(w, req)
		}
		testutil.AssertStatus(t, w, http.StatusCreated)
		var resp models.CreateResponse
		testutil.AssertJSON(t, w, &resp)
		return resp.ID
	}

	// Admin setup: one single-seat race, two candidates, three voters
	posID := create("/positions", models.CreatePositionRequest{Name: "President", Seats: 1, Status: models.PositionOpen})
	alice := create("/candidates", models.CreateCandidateRequest{FirstName: "Alice", LastName: "Anders", PositionID: posID})
	bob := create("/candidates", models.CreateCandidateRequest{FirstName: "Bob", LastName: "Brown", PositionID: posID})

	voterIDs := make([]int64, 3)
	for i := range voterIDs {
		voterIDs[i] = create("/voters", models.CreateVoterRequest{
			Password:  fmt.Sprintf("pw%d", i),
			FirstName: "Voter",
			LastName:  fmt.Sprintf("%d", i),
		})
	}

	// Each voter logs in and casts; two for Alice, one for Bob
	picks := []int64{alice, alice, bob}
	for i, voterID := range voterIDs {
		req := testutil.MakeRequest("POST", "/login", models.LoginRequest{
			VoterID:  voterID,
			Password: fmt.Sprintf("pw%d", i),
		}, nil)
		w := httptest.NewRecorder()
		env.auth.Login(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var login models.LoginResponse
		testutil.AssertJSON(t, w, &login)

		req = testutil.MakeRequest("POST", "/ballot", models.CastBallotRequest{
			VoterID:    voterID,
			Selections: map[int64][]int64{posID: {picks[i]}},
		}, map[string]string{"X-Voter-Token": login.VoterToken})
		w = httptest.NewRecorder()
		env.voting.SubmitBallot(w, req)
		testutil.AssertStatus(t, w, http.StatusCreated)

		// A second login attempt is now rejected
		req = testutil.MakeRequest("POST", "/login", models.LoginRequest{
			VoterID:  voterID,
			Password: fmt.Sprintf("pw%d", i),
		}, nil)
		w = httptest.NewRecorder()
		env.auth.Login(w, req)
		testutil.AssertStatus(t, w, http.StatusConflict)
	}

	// Results: 2-1 split, percentages to two decimals
	req := testutil.MakeRequest("GET", "/results", nil, nil)
	w := httptest.NewRecorder()
	env.results.GetResults(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var results []models.PositionResult
	testutil.AssertJSON(t, w, &results)
	if len(results) != 1 || results[0].TotalVotes != 3 {
		t.Fatalf("Unexpected results: %+v", results)
	}
	if results[0].Candidates[0].ID != alice || results[0].Candidates[0].Percent != 66.67 {
		t.Errorf("Unexpected leader: %+v", results[0].Candidates[0])
	}
	if results[0].Candidates[1].ID != bob || results[0].Candidates[1].Percent != 33.33 {
		t.Errorf("Unexpected runner-up: %+v", results[0].Candidates[1])
	}

	// Winner is Alice
	req = testutil.MakeRequest("GET", "/winners", nil, nil)
	w = httptest.NewRecorder()
	env.results.GetWinners(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var winners []models.PositionWinner
	testutil.AssertJSON(t, w, &winners)
	if len(winners) != 1 || winners[0].CandidateID != alice || winners[0].Votes != 2 {
		t.Fatalf("Unexpected winners: %+v", winners)
	}

	// Summary reflects full turnout
	req = testutil.MakeRequest("GET", "/summary", nil, nil)
	w = httptest.NewRecorder()
	env.results.GetSummary(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var summary models.SummaryResponse
	testutil.AssertJSON(t, w, &summary)
	if summary.VotesCast != 3 || summary.TurnoutPercent != 100.00 {
		t.Errorf("Unexpected summary: %+v", summary)
	}
}
