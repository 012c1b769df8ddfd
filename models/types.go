package models

import (
	"strings"
	"time"
)

// Position status constants
const (
	PositionOpen   = "open"
	PositionClosed = "closed"
)

// Candidate / voter status constants
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Request types

type LoginRequest struct {
	VoterID  int64  `json:"voter_id"`
	Password string `json:"password"`
}

// position_id -> selected candidate ids
type CastBallotRequest struct {
	VoterID    int64             `json:"voter_id"`
	Selections map[int64][]int64 `json:"selections"`
}

type CreatePositionRequest struct {
	Name   string `json:"name"`
	Seats  int    `json:"seats"`
	Status string `json:"status"`
}

// Absent fields keep their stored value (merge-on-update)
type UpdatePositionRequest struct {
	Name   *string `json:"name"`
	Seats  *int    `json:"seats"`
	Status *string `json:"status"`
}

type CreateCandidateRequest struct {
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	PositionID int64  `json:"position_id"`
	Status     string `json:"status"`
}

type UpdateCandidateRequest struct {
	FirstName  *string `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   *string `json:"last_name"`
	PositionID *int64  `json:"position_id"`
	Status     *string `json:"status"`
}

type CreateVoterRequest struct {
	Password   string `json:"password"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	Status     string `json:"status"`
}

type UpdateVoterRequest struct {
	Password   *string `json:"password"`
	FirstName  *string `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   *string `json:"last_name"`
	Status     *string `json:"status"`
}

// Response types

type LoginResponse struct {
	VoterID    int64  `json:"voter_id"`
	Name       string `json:"name"`
	VoterToken string `json:"voter_token"`
	Redirect   string `json:"redirect"`
}

type CastBallotResponse struct {
	Message string `json:"message"`
}

type CreateResponse struct {
	ID int64 `json:"id"`
}

type SummaryResponse struct {
	Positions      int     `json:"positions"`
	OpenPositions  int     `json:"open_positions"`
	Candidates     int     `json:"candidates"`
	Voters         int     `json:"voters"`
	VotersVoted    int     `json:"voters_voted"`
	VotesCast      int     `json:"votes_cast"`
	TurnoutPercent float64 `json:"turnout_percent"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

type Position struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Seats  int    `json:"seats"`
	Status string `json:"status"`
}

type Candidate struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	MiddleName   string `json:"middle_name,omitempty"`
	LastName     string `json:"last_name"`
	PositionID   int64  `json:"position_id"`
	PositionName string `json:"position_name,omitempty"`
	Status       string `json:"status"`
	Votes        int    `json:"votes"`
}

type Voter struct {
	ID         int64  `json:"id"`
	Password   string `json:"-"` // Never expose in JSON
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name"`
	Status     string `json:"status"`
	HasVoted   bool   `json:"has_voted"`
}

type Vote struct {
	PositionID  int64     `json:"position_id"`
	VoterID     int64     `json:"voter_id"`
	CandidateID int64     `json:"candidate_id"`
	CastAt      time.Time `json:"cast_at"`
}

// Ballot types

type BallotCandidate struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BallotPosition struct {
	ID         int64             `json:"id"`
	Name       string            `json:"name"`
	Seats      int               `json:"seats"`
	Candidates []BallotCandidate `json:"candidates"`
}

// Result types

type CandidateResult struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Votes   int     `json:"votes"`
	Percent float64 `json:"percent"`
}

type PositionResult struct {
	PositionID   int64             `json:"position_id"`
	PositionName string            `json:"position_name"`
	TotalVotes   int               `json:"total_votes"`
	Candidates   []CandidateResult `json:"candidates"`
}

type PositionWinner struct {
	PositionID   int64  `json:"position_id"`
	PositionName string `json:"position_name"`
	CandidateID  int64  `json:"candidate_id"`
	Candidate    string `json:"candidate"`
	Votes        int    `json:"votes"`
}

// FullName joins name parts, skipping an empty middle name.
func FullName(first, middle, last string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{first, middle, last} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Name returns the candidate's full display name.
func (c Candidate) Name() string {
	return FullName(c.FirstName, c.MiddleName, c.LastName)
}

// Name returns the voter's full display name.
func (v Voter) Name() string {
	return FullName(v.FirstName, v.MiddleName, v.LastName)
}
