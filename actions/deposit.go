// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/near/borsh-go"

	"github.com/ava-labs/vaultvm/chain"
	"github.com/ava-labs/vaultvm/codec"
	"github.com/ava-labs/vaultvm/consts"
	"github.com/ava-labs/vaultvm/state"
	"github.com/ava-labs/vaultvm/storage"
)

var _ chain.Action = (*Deposit)(nil)

// Deposit moves [Amount] from the actor into the actor's empty vault.
type Deposit struct {
	Amount uint64 `json:"amount"`
}

func (*Deposit) GetTypeID() uint8 {
	return consts.DepositID
}

func (d *Deposit) Marshal() ([]byte, error) {
	return borsh.Serialize(*d)
}

func UnmarshalDeposit(b []byte) (chain.Action, error) {
	var d Deposit
	if err := borsh.Deserialize(&d, b); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Deposit) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	t chain.Transferer,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	vault, bump, err := storage.VaultAddress(consts.ProgramID(), actor)
	if err != nil {
		return nil, err
	}
	vaultBalance, err := storage.GetBalance(ctx, mu, vault)
	if err != nil {
		return nil, err
	}
	if vaultBalance != 0 {
		return nil, fmt.Errorf("%w: %s holds %d", ErrVaultAlreadyExists, vault, vaultBalance)
	}

	// The minimum balance may change between epochs, so it is read on every
	// deposit.
	minBalance, err := r.GetMinimumBalance(0)
	if err != nil {
		return nil, err
	}
	if d.Amount <= minBalance {
		return nil, fmt.Errorf("%w: %d does not exceed minimum balance %d", ErrInvalidAmount, d.Amount, minBalance)
	}

	if err := t.Transfer(ctx, mu, actor, vault, d.Amount); err != nil {
		return nil, err
	}
	ownerBalance, err := storage.GetBalance(ctx, mu, actor)
	if err != nil {
		return nil, err
	}
	return &DepositResult{
		Vault:        vault,
		Bump:         bump,
		VaultBalance: d.Amount,
		OwnerBalance: ownerBalance,
	}, nil
}

var _ codec.Typed = (*DepositResult)(nil)

type DepositResult struct {
	Vault        codec.Address `json:"vault"`
	Bump         uint8         `json:"bump"`
	VaultBalance uint64        `json:"vaultBalance"`
	OwnerBalance uint64        `json:"ownerBalance"`
}

func (*DepositResult) GetTypeID() uint8 {
	return consts.DepositID
}
