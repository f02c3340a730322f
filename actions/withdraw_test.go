// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/vaultvm/chain"
	"github.com/ava-labs/vaultvm/chain/chainmock"
	"github.com/ava-labs/vaultvm/chain/chaintest"
	"github.com/ava-labs/vaultvm/codec"
	"github.com/ava-labs/vaultvm/consts"
	"github.com/ava-labs/vaultvm/pda"
	"github.com/ava-labs/vaultvm/state"
	"github.com/ava-labs/vaultvm/storage"
)

func TestWithdrawAction(t *testing.T) {
	owner := newOwner()
	other := newOwner()
	vault, _ := vaultOf(t, owner)
	otherVault, _ := vaultOf(t, other)

	tests := []chaintest.ActionTest{
		{
			Name:        "EmptyVault",
			Actor:       owner,
			Action:      &Withdraw{},
			Rules:       chaintest.NewRules(testMinimumBalance),
			State:       fundedStore(t, map[codec.Address]uint64{owner: 1_000}),
			ExpectedErr: ErrInvalidAmount,
			Assertion: func(ctx context.Context, t *testing.T, im state.Mutable) {
				requireBalance(ctx, t, im, owner, 1_000)
			},
		},
		{
			Name:   "ValidWithdraw",
			Actor:  owner,
			Action: &Withdraw{},
			Rules:  chaintest.NewRules(testMinimumBalance),
			State:  fundedStore(t, map[codec.Address]uint64{owner: 1_000, vault: 1_000_000}),
			ExpectedOutputs: &WithdrawResult{
				Vault:        vault,
				Amount:       1_000_000,
				OwnerBalance: 1_001_000,
			},
			Assertion: func(ctx context.Context, t *testing.T, im state.Mutable) {
				requireBalance(ctx, t, im, owner, 1_001_000)
				requireBalance(ctx, t, im, vault, 0)
				_, err := im.GetValue(ctx, storage.BalanceKey(vault))
				require.Error(t, err)
			},
		},
		{
			Name:        "OtherOwnersVaultUntouched",
			Actor:       owner,
			Action:      &Withdraw{},
			Rules:       chaintest.NewRules(testMinimumBalance),
			State:       fundedStore(t, map[codec.Address]uint64{otherVault: 1_000_000}),
			ExpectedErr: ErrInvalidAmount,
			Assertion: func(ctx context.Context, t *testing.T, im state.Mutable) {
				requireBalance(ctx, t, im, otherVault, 1_000_000)
				requireBalance(ctx, t, im, owner, 0)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}

func TestWithdrawSignsWithDerivation(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	owner := newOwner()
	vault, bump := vaultOf(t, owner)
	st := fundedStore(t, map[codec.Address]uint64{vault: 2_000_000})

	transferer := chainmock.NewTransferer(ctrl)
	transferer.EXPECT().
		Transfer(gomock.Any(), st, vault, owner, uint64(2_000_000), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ state.Mutable, from, _ codec.Address, _ uint64, signers ...chain.Signer) error {
			require.Len(signers, 1)
			signer, ok := signers[0].(*pda.Signer)
			require.True(ok)
			require.Equal(bump, signer.Bump)
			require.Equal(consts.ProgramID(), signer.ProgramID)
			addr, err := signer.Address()
			require.NoError(err)
			require.Equal(from, addr)
			return nil
		})

	_, err := (&Withdraw{}).Execute(ctx, chaintest.NewRules(testMinimumBalance), st, transferer, 0, owner, ids.Empty)
	require.NoError(err)
}

// Threshold 890,880: deposit, rejected second deposit, full withdraw and a
// rejected second withdraw.
func TestVaultLifecycle(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	owner := newOwner()
	vault, _ := vaultOf(t, owner)
	const initial uint64 = 10_000_000
	st := fundedStore(t, map[codec.Address]uint64{owner: initial})
	rules := chaintest.NewRules(testMinimumBalance)
	transferer := chain.NewSystemTransferer(owner)

	_, err := (&Deposit{Amount: 1_000_000}).Execute(ctx, rules, st, transferer, 0, owner, ids.Empty)
	require.NoError(err)
	requireBalance(ctx, t, st, vault, 1_000_000)
	requireBalance(ctx, t, st, owner, initial-1_000_000)

	_, err = (&Deposit{Amount: 500_000}).Execute(ctx, rules, st, transferer, 0, owner, ids.Empty)
	require.ErrorIs(err, ErrVaultAlreadyExists)
	requireBalance(ctx, t, st, vault, 1_000_000)

	output, err := (&Withdraw{}).Execute(ctx, rules, st, transferer, 0, owner, ids.Empty)
	require.NoError(err)
	require.Equal(uint64(1_000_000), output.(*WithdrawResult).Amount)
	requireBalance(ctx, t, st, vault, 0)
	requireBalance(ctx, t, st, owner, initial)

	_, err = (&Withdraw{}).Execute(ctx, rules, st, transferer, 0, owner, ids.Empty)
	require.ErrorIs(err, ErrInvalidAmount)
	requireBalance(ctx, t, st, owner, initial)
}

func BenchmarkWithdraw(b *testing.B) {
	owner := codec.CreateAddress(consts.ED25519ID, ids.GenerateTestID())
	vault, _, err := storage.VaultAddress(consts.ProgramID(), owner)
	require.NoError(b, err)

	bench := &chaintest.ActionBenchmark{
		Name:   "Withdraw",
		Actor:  owner,
		Action: &Withdraw{},
		Rules:  chaintest.NewRules(testMinimumBalance),
		CreateState: func() state.Mutable {
			st := chaintest.NewInMemoryStore()
			require.NoError(b, storage.SetBalance(context.Background(), st, vault, 1_000_000))
			return st
		},
		ExpectedOutputs: &WithdrawResult{
			Vault:        vault,
			Amount:       1_000_000,
			OwnerBalance: 1_000_000,
		},
	}
	bench.Run(context.Background(), b)
}
