// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides typed record storage for the election entities.

# Store

A Store wraps a *sql.DB and exposes create, get, list, update, and delete
per entity, plus the predicate queries the engine needs (open positions,
active candidates for a position):

	st := store.New(dbConn)
	positions, err := st.OpenPositions(ctx)

# Transactions

WithTx runs a function against a Store bound to one transaction; the vote
casting path uses this to make its writes all-or-nothing:

	err := st.WithTx(ctx, func(tx *store.Store) error {
		// reads and writes here commit or roll back together
		return nil
	})

# Partial Updates

Update methods take a request struct with pointer fields and merge it onto
the current record: nil fields keep their stored value. Updating or deleting
a missing id is a silent no-op, not an error. Get methods return ErrNotFound
when nothing matches.
*/
package store
