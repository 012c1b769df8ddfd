// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"testing"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/store"
	"github.com/danielhkuo/ballotbox/testutil"
)

// testEnv bundles a fresh database with every handler wired the way the
// router wires them.
type testEnv struct {
	conn       *sql.DB
	store      *store.Store
	engine     *election.Engine
	cfg        cliparse.Config
	auth       *AuthHandler
	voting     *VotingHandler
	results    *ResultsHandler
	positions  *PositionHandler
	candidates *CandidateHandler
	voters     *VoterHandler
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	st := store.New(conn)
	engine := election.New(st)
	cfg := testutil.GetTestConfig()

	return &testEnv{
		conn:       conn,
		store:      st,
		engine:     engine,
		cfg:        cfg,
		auth:       NewAuthHandler(engine, cfg),
		voting:     NewVotingHandler(engine, cfg),
		results:    NewResultsHandler(engine, st),
		positions:  NewPositionHandler(st),
		candidates: NewCandidateHandler(st),
		voters:     NewVoterHandler(st),
	}
}
