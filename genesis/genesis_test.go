// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/vaultvm/chain/chaintest"
	"github.com/ava-labs/vaultvm/codec"
	"github.com/ava-labs/vaultvm/storage"

	safemath "github.com/ava-labs/avalanchego/utils/math"
)

func TestDefaultMinimumBalance(t *testing.T) {
	require := require.New(t)
	r := NewDefaultRules()

	minBalance, err := r.GetMinimumBalance(0)
	require.NoError(err)
	require.Equal(uint64(890_880), minBalance)

	minBalance, err = r.GetMinimumBalance(165)
	require.NoError(err)
	require.Equal(uint64(2_039_280), minBalance)
}

func TestMinimumBalanceOverflow(t *testing.T) {
	r := NewDefaultRules()
	_, err := r.GetMinimumBalance(^uint64(0))
	require.ErrorIs(t, err, safemath.ErrOverflow)
}

func TestUpgradeRuleFactory(t *testing.T) {
	require := require.New(t)

	initial := NewDefaultRules()
	doubled := NewDefaultRules()
	doubled.ExemptionThreshold = 4
	cheaper := NewDefaultRules()
	cheaper.BaseFee = 1

	factory, err := NewUpgradeRuleFactory(initial, []*Upgrade{
		{ActivationTime: 100, Rules: doubled},
		{ActivationTime: 200, Rules: cheaper},
	})
	require.NoError(err)

	require.Equal(initial, factory.GetRules(0))
	require.Equal(initial, factory.GetRules(99))
	require.Equal(doubled, factory.GetRules(100))
	require.Equal(doubled, factory.GetRules(199))
	require.Equal(cheaper, factory.GetRules(200))
	require.Equal(cheaper, factory.GetRules(1_000))

	_, err = NewUpgradeRuleFactory(initial, []*Upgrade{
		{ActivationTime: 200, Rules: doubled},
		{ActivationTime: 100, Rules: cheaper},
	})
	require.ErrorIs(err, ErrUnorderedUpgrades)
}

func TestLoad(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	addr := codec.CreateAddress(0, ids.GenerateTestID())
	g := NewDefaultGenesis([]*CustomAllocation{
		{Address: addr, Balance: 10_000_000},
	})
	g.Rules.ChainID = ids.GenerateTestID()
	upgraded := NewDefaultRules()
	upgraded.LamportsPerByteYear = 1
	g.Upgrades = []*Upgrade{{ActivationTime: 10, Rules: upgraded}}

	b, err := json.Marshal(g)
	require.NoError(err)

	loaded, factory, err := Load(b)
	require.NoError(err)
	require.Equal(g.Rules.ChainID, factory.GetRules(10).GetChainID())

	minBalance, err := factory.GetRules(10).GetMinimumBalance(0)
	require.NoError(err)
	require.Equal(uint64(256), minBalance)

	store := chaintest.NewInMemoryStore()
	supply, err := loaded.InitializeState(ctx, store)
	require.NoError(err)
	require.Equal(uint64(10_000_000), supply)

	bal, err := storage.GetBalance(ctx, store, addr)
	require.NoError(err)
	require.Equal(uint64(10_000_000), bal)
}

func TestLoadUpgradeWithoutRules(t *testing.T) {
	_, _, err := Load([]byte(`{"upgrades":[{"activationTime":10}]}`))
	require.ErrorIs(t, err, ErrMissingUpgradeRules)
}
