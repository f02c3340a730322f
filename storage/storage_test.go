// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage_test

import (
	"context"
	"math"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/vaultvm/chain/chaintest"
	"github.com/ava-labs/vaultvm/codec"
	"github.com/ava-labs/vaultvm/consts"
	"github.com/ava-labs/vaultvm/pda"
	"github.com/ava-labs/vaultvm/storage"
)

func TestBalance(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	st := chaintest.NewInMemoryStore()
	addr := codec.CreateAddress(consts.ED25519ID, ids.GenerateTestID())

	bal, err := storage.GetBalance(ctx, st, addr)
	require.NoError(err)
	require.Zero(bal)

	bal, err = storage.AddBalance(ctx, st, addr, 100)
	require.NoError(err)
	require.Equal(uint64(100), bal)

	_, err = storage.SubBalance(ctx, st, addr, 101)
	require.ErrorIs(err, storage.ErrInvalidBalance)

	_, err = storage.AddBalance(ctx, st, addr, math.MaxUint64)
	require.ErrorIs(err, storage.ErrInvalidBalance)

	bal, err = storage.SubBalance(ctx, st, addr, 100)
	require.NoError(err)
	require.Zero(bal)

	// An empty account is deleted.
	_, err = st.GetValue(ctx, storage.BalanceKey(addr))
	require.ErrorIs(err, database.ErrNotFound)
}

func TestSupply(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	st := chaintest.NewInMemoryStore()

	_, ok, err := storage.GetSupply(ctx, st)
	require.NoError(err)
	require.False(ok)

	require.NoError(storage.SetSupply(ctx, st, 1_000))
	supply, ok, err := storage.GetSupply(ctx, st)
	require.NoError(err)
	require.True(ok)
	require.Equal(uint64(1_000), supply)
}

func TestVaultAddress(t *testing.T) {
	require := require.New(t)

	owner := codec.CreateAddress(consts.ED25519ID, ids.GenerateTestID())
	vault, bump, err := storage.VaultAddress(consts.ProgramID(), owner)
	require.NoError(err)
	require.Equal(consts.PDAID, vault.TypeID())

	again, againBump, err := storage.VaultAddress(consts.ProgramID(), owner)
	require.NoError(err)
	require.Equal(vault, again)
	require.Equal(bump, againBump)

	derived, err := pda.Create(consts.ProgramID(), storage.VaultSeeds(owner), bump)
	require.NoError(err)
	require.Equal(vault, derived)

	other := codec.CreateAddress(consts.ED25519ID, ids.GenerateTestID())
	otherVault, _, err := storage.VaultAddress(consts.ProgramID(), other)
	require.NoError(err)
	require.NotEqual(vault, otherVault)
}
