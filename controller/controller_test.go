// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package controller

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/vaultvm/actions"
	"github.com/ava-labs/vaultvm/auth"
	"github.com/ava-labs/vaultvm/chain"
	"github.com/ava-labs/vaultvm/config"
	"github.com/ava-labs/vaultvm/consts"
	"github.com/ava-labs/vaultvm/crypto/ed25519"
	"github.com/ava-labs/vaultvm/genesis"
	"github.com/ava-labs/vaultvm/storage"
	"github.com/ava-labs/vaultvm/trace"
)

const initialBalance uint64 = 10_000_000

func newTestConfig(t *testing.T, g *genesis.Genesis) *config.Config {
	require := require.New(t)

	dir := t.TempDir()
	b, err := json.Marshal(g)
	require.NoError(err)
	genesisPath := filepath.Join(dir, "genesis.json")
	require.NoError(os.WriteFile(genesisPath, b, 0o600))

	cfg := config.New()
	cfg.DataDir = dir
	cfg.Genesis = genesisPath
	cfg.Pebble.Sync = false
	return cfg
}

func TestControllerPersistsLedger(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	factory := auth.NewED25519Factory(priv)
	owner := factory.Address()

	g := genesis.NewDefaultGenesis([]*genesis.CustomAllocation{
		{Address: owner, Balance: initialBalance},
	})
	g.Rules.NetworkID = 1337
	g.Rules.ChainID = ids.GenerateTestID()
	cfg := newTestConfig(t, g)

	c, err := New(ctx, logging.NoLog{}, trace.Noop("test"), cfg)
	require.NoError(err)
	require.Equal(uint32(1337), c.NetworkID())
	require.Equal(g.Rules.ChainID, c.ChainID())

	balance, err := c.GetBalance(ctx, owner)
	require.NoError(err)
	require.Equal(initialBalance, balance)

	tx, err := chain.NewTx(
		&chain.Base{Timestamp: time.Now().UnixMilli(), ChainID: c.ChainID(), MaxFee: genesis.DefaultBaseFee},
		&actions.Deposit{Amount: 1_000_000},
	).Sign(factory)
	require.NoError(err)
	result, err := c.Submit(ctx, tx)
	require.NoError(err)
	require.True(result.Success)

	families, err := c.Gatherer().Gather()
	require.NoError(err)
	require.NotEmpty(families)
	require.NoError(c.Shutdown(ctx))

	// Reopening keeps the ledger and does not apply genesis again.
	c, err = New(ctx, logging.NoLog{}, trace.Noop("test"), cfg)
	require.NoError(err)
	defer func() {
		require.NoError(c.Shutdown(ctx))
	}()

	balance, err = c.GetBalance(ctx, owner)
	require.NoError(err)
	require.Equal(initialBalance-1_000_000-genesis.DefaultBaseFee, balance)

	vault, bump, err := storage.VaultAddress(consts.ProgramID(), owner)
	require.NoError(err)
	for i := 0; i < 2; i++ {
		cached, cachedBump, err := c.Vault(owner)
		require.NoError(err)
		require.Equal(vault, cached)
		require.Equal(bump, cachedBump)
	}
	balance, err = c.GetBalance(ctx, vault)
	require.NoError(err)
	require.Equal(uint64(1_000_000), balance)

	supply, ok, err := storage.GetSupply(ctx, c.processor.State())
	require.NoError(err)
	require.True(ok)
	require.Equal(initialBalance, supply)
}

func TestControllerMissingGenesis(t *testing.T) {
	cfg := config.New()
	cfg.DataDir = t.TempDir()
	cfg.Genesis = filepath.Join(cfg.DataDir, "missing.json")

	_, err := New(context.Background(), logging.NoLog{}, trace.Noop("test"), cfg)
	require.Error(t, err)
}
