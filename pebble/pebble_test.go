// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/vaultvm/state"
)

func newTestDB(t *testing.T) *Database {
	cfg := NewDefaultConfig()
	cfg.Sync = false
	db, _, err := New(t.TempDir(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDatabaseGetInsertRemove(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db := newTestDB(t)

	_, err := db.GetValue(ctx, []byte("k"))
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Insert(ctx, []byte("k"), []byte("v")))
	v, err := db.GetValue(ctx, []byte("k"))
	require.NoError(err)
	require.Equal([]byte("v"), v)

	require.NoError(db.Remove(ctx, []byte("k")))
	_, err = db.GetValue(ctx, []byte("k"))
	require.ErrorIs(err, database.ErrNotFound)
}

func TestDatabaseCommitsSimpleMutableAsBatch(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db := newTestDB(t)
	require.NoError(db.Insert(ctx, []byte("gone"), []byte{1}))

	mu := state.NewSimpleMutable(db)
	require.NoError(mu.Insert(ctx, []byte("a"), []byte{2}))
	require.NoError(mu.Remove(ctx, []byte("gone")))
	require.NoError(mu.Commit(ctx))

	v, err := db.GetValue(ctx, []byte("a"))
	require.NoError(err)
	require.Equal([]byte{2}, v)
	_, err = db.GetValue(ctx, []byte("gone"))
	require.ErrorIs(err, database.ErrNotFound)
}

func TestDatabaseReopen(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	db, _, err := New(dir, NewDefaultConfig())
	require.NoError(err)
	require.NoError(db.Insert(ctx, []byte("k"), []byte("v")))
	require.NoError(db.Close())
	require.ErrorIs(db.Close(), ErrClosed)

	db, _, err = New(dir, NewDefaultConfig())
	require.NoError(err)
	defer db.Close()
	v, err := db.GetValue(ctx, []byte("k"))
	require.NoError(err)
	require.Equal([]byte("v"), v)
}
