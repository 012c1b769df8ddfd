// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/ballotbox/models"
)

// ErrNotFound is returned by Get* methods when no record matches.
var ErrNotFound = errors.New("record not found")

// querier is the subset of *sql.DB / *sql.Tx the store runs on.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store provides typed record access over a database handle.
// A Store bound to a transaction is obtained through WithTx.
type Store struct {
	db *sql.DB
	q  querier
}

func New(db *sql.DB) *Store {
	return &Store{db: db, q: db}
}

// WithTx runs fn with a Store bound to a single transaction. The
// transaction commits if fn returns nil and rolls back otherwise.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&Store{db: s.db, q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Positions

func (s *Store) CreatePosition(ctx context.Context, name string, seats int, status string) (int64, error) {
	var id int64
	err := s.q.QueryRowContext(ctx, `
		INSERT INTO position (name, seats, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`, name, seats, status).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert position: %w", err)
	}
	return id, nil
}

func (s *Store) GetPosition(ctx context.Context, id int64) (models.Position, error) {
	var p models.Position
	err := s.q.QueryRowContext(ctx, `
		SELECT id, name, seats, status FROM position WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Seats, &p.Status)
	if err == sql.ErrNoRows {
		return models.Position{}, ErrNotFound
	}
	if err != nil {
		return models.Position{}, fmt.Errorf("failed to query position: %w", err)
	}
	return p, nil
}

func (s *Store) ListPositions(ctx context.Context) ([]models.Position, error) {
	return s.queryPositions(ctx, `
		SELECT id, name, seats, status FROM position ORDER BY id
	`)
}

// OpenPositions returns positions offered to voters, in ascending id order.
func (s *Store) OpenPositions(ctx context.Context) ([]models.Position, error) {
	return s.queryPositions(ctx, `
		SELECT id, name, seats, status FROM position WHERE status = 'open' ORDER BY id
	`)
}

func (s *Store) queryPositions(ctx context.Context, query string, args ...any) ([]models.Position, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}
	defer rows.Close()

	positions := []models.Position{}
	for rows.Next() {
		var p models.Position
		if err := rows.Scan(&p.ID, &p.Name, &p.Seats, &p.Status); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

// UpdatePosition merges the given fields onto the stored record. Nil
// fields keep their current value. Updating a missing id is a no-op.
func (s *Store) UpdatePosition(ctx context.Context, id int64, req models.UpdatePositionRequest) error {
	current, err := s.GetPosition(ctx, id)
	if err == ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Seats != nil {
		current.Seats = *req.Seats
	}
	if req.Status != nil {
		current.Status = *req.Status
	}

	_, err = s.q.ExecContext(ctx, `
		UPDATE position SET name = $1, seats = $2, status = $3 WHERE id = $4
	`, current.Name, current.Seats, current.Status, id)
	if err != nil {
		return fmt.Errorf("failed to update position: %w", err)
	}
	return nil
}

func (s *Store) DeletePosition(ctx context.Context, id int64) error {
	if _, err := s.q.ExecContext(ctx, `DELETE FROM position WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	return nil
}

// Candidates

func (s *Store) CreateCandidate(ctx context.Context, first, middle, last string, positionID int64, status string) (int64, error) {
	var id int64
	err := s.q.QueryRowContext(ctx, `
		INSERT INTO candidate (first_name, middle_name, last_name, position_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, first, middle, last, positionID, status).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert candidate: %w", err)
	}
	return id, nil
}

func (s *Store) GetCandidate(ctx context.Context, id int64) (models.Candidate, error) {
	var c models.Candidate
	err := s.q.QueryRowContext(ctx, `
		SELECT id, first_name, middle_name, last_name, position_id, status, votes
		FROM candidate WHERE id = $1
	`, id).Scan(&c.ID, &c.FirstName, &c.MiddleName, &c.LastName, &c.PositionID, &c.Status, &c.Votes)
	if err == sql.ErrNoRows {
		return models.Candidate{}, ErrNotFound
	}
	if err != nil {
		return models.Candidate{}, fmt.Errorf("failed to query candidate: %w", err)
	}
	return c, nil
}

// ListCandidates returns all candidates with their position name, in
// ascending id order.
func (s *Store) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT c.id, c.first_name, c.middle_name, c.last_name, c.position_id, p.name, c.status, c.votes
		FROM candidate c
		JOIN position p ON c.position_id = p.id
		ORDER BY c.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.FirstName, &c.MiddleName, &c.LastName,
			&c.PositionID, &c.PositionName, &c.Status, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

// ActiveCandidatesByPosition returns the active candidates standing for
// one position, in ascending id order.
func (s *Store) ActiveCandidatesByPosition(ctx context.Context, positionID int64) ([]models.Candidate, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT id, first_name, middle_name, last_name, position_id, status, votes
		FROM candidate
		WHERE position_id = $1 AND status = 'active'
		ORDER BY id
	`, positionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.FirstName, &c.MiddleName, &c.LastName,
			&c.PositionID, &c.Status, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func (s *Store) UpdateCandidate(ctx context.Context, id int64, req models.UpdateCandidateRequest) error {
	current, err := s.GetCandidate(ctx, id)
	if err == ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	if req.FirstName != nil {
		current.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		current.MiddleName = *req.MiddleName
	}
	if req.LastName != nil {
		current.LastName = *req.LastName
	}
	if req.PositionID != nil {
		current.PositionID = *req.PositionID
	}
	if req.Status != nil {
		current.Status = *req.Status
	}

	_, err = s.q.ExecContext(ctx, `
		UPDATE candidate
		SET first_name = $1, middle_name = $2, last_name = $3, position_id = $4, status = $5
		WHERE id = $6
	`, current.FirstName, current.MiddleName, current.LastName, current.PositionID, current.Status, id)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	return nil
}

func (s *Store) DeleteCandidate(ctx context.Context, id int64) error {
	if _, err := s.q.ExecContext(ctx, `DELETE FROM candidate WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	return nil
}

// IncrementVotes bumps the denormalized counter with an atomic
// read-modify-write in SQL.
func (s *Store) IncrementVotes(ctx context.Context, candidateID int64) error {
	if _, err := s.q.ExecContext(ctx, `
		UPDATE candidate SET votes = votes + 1 WHERE id = $1
	`, candidateID); err != nil {
		return fmt.Errorf("failed to increment votes: %w", err)
	}
	return nil
}

// Voters

func (s *Store) CreateVoter(ctx context.Context, password, first, middle, last, status string) (int64, error) {
	var id int64
	err := s.q.QueryRowContext(ctx, `
		INSERT INTO voter (password, first_name, middle_name, last_name, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, password, first, middle, last, status).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert voter: %w", err)
	}
	return id, nil
}

func (s *Store) GetVoter(ctx context.Context, id int64) (models.Voter, error) {
	return s.queryVoter(ctx, `
		SELECT id, password, first_name, middle_name, last_name, status, has_voted
		FROM voter WHERE id = $1
	`, id)
}

// GetVoterByCredentials matches the voter id and exact password. No
// match returns ErrNotFound without distinguishing which part failed.
func (s *Store) GetVoterByCredentials(ctx context.Context, id int64, password string) (models.Voter, error) {
	return s.queryVoter(ctx, `
		SELECT id, password, first_name, middle_name, last_name, status, has_voted
		FROM voter WHERE id = $1 AND password = $2
	`, id, password)
}

func (s *Store) queryVoter(ctx context.Context, query string, args ...any) (models.Voter, error) {
	var v models.Voter
	var hasVoted int
	err := s.q.QueryRowContext(ctx, query, args...).Scan(
		&v.ID, &v.Password, &v.FirstName, &v.MiddleName, &v.LastName, &v.Status, &hasVoted)
	if err == sql.ErrNoRows {
		return models.Voter{}, ErrNotFound
	}
	if err != nil {
		return models.Voter{}, fmt.Errorf("failed to query voter: %w", err)
	}
	v.HasVoted = hasVoted != 0
	return v, nil
}

func (s *Store) ListVoters(ctx context.Context) ([]models.Voter, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT id, password, first_name, middle_name, last_name, status, has_voted
		FROM voter ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query voters: %w", err)
	}
	defer rows.Close()

	voters := []models.Voter{}
	for rows.Next() {
		var v models.Voter
		var hasVoted int
		if err := rows.Scan(&v.ID, &v.Password, &v.FirstName, &v.MiddleName,
			&v.LastName, &v.Status, &hasVoted); err != nil {
			return nil, fmt.Errorf("failed to scan voter: %w", err)
		}
		v.HasVoted = hasVoted != 0
		voters = append(voters, v)
	}
	return voters, rows.Err()
}

func (s *Store) UpdateVoter(ctx context.Context, id int64, req models.UpdateVoterRequest) error {
	current, err := s.GetVoter(ctx, id)
	if err == ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	if req.Password != nil {
		current.Password = *req.Password
	}
	if req.FirstName != nil {
		current.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		current.MiddleName = *req.MiddleName
	}
	if req.LastName != nil {
		current.LastName = *req.LastName
	}
	if req.Status != nil {
		current.Status = *req.Status
	}

	_, err = s.q.ExecContext(ctx, `
		UPDATE voter
		SET password = $1, first_name = $2, middle_name = $3, last_name = $4, status = $5
		WHERE id = $6
	`, current.Password, current.FirstName, current.MiddleName, current.LastName, current.Status, id)
	if err != nil {
		return fmt.Errorf("failed to update voter: %w", err)
	}
	return nil
}

func (s *Store) DeleteVoter(ctx context.Context, id int64) error {
	if _, err := s.q.ExecContext(ctx, `DELETE FROM voter WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete voter: %w", err)
	}
	return nil
}

// MarkVoted flips has_voted and reports whether this call won the
// transition. The WHERE guard makes a concurrent double submit lose.
func (s *Store) MarkVoted(ctx context.Context, id int64) (bool, error) {
	res, err := s.q.ExecContext(ctx, `
		UPDATE voter SET has_voted = 1 WHERE id = $1 AND has_voted = 0
	`, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark voter as voted: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n == 1, nil
}

// Votes

// InsertVote appends one immutable audit row. Vote rows are never
// updated or deleted.
func (s *Store) InsertVote(ctx context.Context, positionID, voterID, candidateID int64, castAt time.Time) error {
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO vote (position_id, voter_id, candidate_id, cast_at)
		VALUES ($1, $2, $3, $4)
	`, positionID, voterID, candidateID, castAt)
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

func (s *Store) CountVotes(ctx context.Context) (int, error) {
	var count int
	if err := s.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM vote`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return count, nil
}

func (s *Store) CountVotesForCandidate(ctx context.Context, candidateID int64) (int, error) {
	var count int
	err := s.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM vote WHERE candidate_id = $1
	`, candidateID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return count, nil
}

func (s *Store) CountVotesForVoter(ctx context.Context, voterID int64) (int, error) {
	var count int
	err := s.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM vote WHERE voter_id = $1
	`, voterID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return count, nil
}
