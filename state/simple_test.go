// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/stretchr/testify/require"
)

type mapStore map[string][]byte

func (m mapStore) GetValue(_ context.Context, k []byte) ([]byte, error) {
	v, ok := m[string(k)]
	if !ok {
		return nil, database.ErrNotFound
	}
	return v, nil
}

func (m mapStore) Insert(_ context.Context, k []byte, v []byte) error {
	m[string(k)] = v
	return nil
}

func (m mapStore) Remove(_ context.Context, k []byte) error {
	delete(m, string(k))
	return nil
}

func TestSimpleMutableBuffersUntilCommit(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := mapStore{"a": []byte{1}, "b": []byte{2}}

	s := NewSimpleMutable(store)
	require.NoError(s.Insert(ctx, []byte("a"), []byte{3}))
	require.NoError(s.Remove(ctx, []byte("b")))
	require.NoError(s.Insert(ctx, []byte("c"), []byte{4}))
	require.Equal(3, s.Len())

	v, err := s.GetValue(ctx, []byte("a"))
	require.NoError(err)
	require.Equal([]byte{3}, v)
	_, err = s.GetValue(ctx, []byte("b"))
	require.ErrorIs(err, database.ErrNotFound)

	// underlying store is untouched
	require.Equal([]byte{1}, store["a"])
	require.Contains(store, "b")
	require.NotContains(store, "c")

	require.NoError(s.Commit(ctx))
	require.Equal(0, s.Len())
	require.Equal([]byte{3}, store["a"])
	require.NotContains(store, "b")
	require.Equal([]byte{4}, store["c"])
}

func TestSimpleMutableDiscard(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := mapStore{"a": []byte{1}}

	s := NewSimpleMutable(store)
	require.NoError(s.Remove(ctx, []byte("a")))

	v, err := store.GetValue(ctx, []byte("a"))
	require.NoError(err)
	require.Equal([]byte{1}, v)
}

func TestSimpleMutableNested(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := mapStore{}

	outer := NewSimpleMutable(store)
	inner := NewSimpleMutable(outer)
	require.NoError(inner.Insert(ctx, []byte("k"), []byte{9}))
	require.NoError(inner.Commit(ctx))
	require.NotContains(store, "k")

	require.NoError(outer.Commit(ctx))
	require.Equal([]byte{9}, store["k"])
}
