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
	"github.com/ava-labs/vaultvm/pda"
	"github.com/ava-labs/vaultvm/state"
	"github.com/ava-labs/vaultvm/storage"
)

var _ chain.Action = (*Withdraw)(nil)

// Withdraw sweeps the actor's vault back to the actor. There is no partial
// withdrawal.
type Withdraw struct{}

func (*Withdraw) GetTypeID() uint8 {
	return consts.WithdrawID
}

func (w *Withdraw) Marshal() ([]byte, error) {
	return borsh.Serialize(*w)
}

func UnmarshalWithdraw(b []byte) (chain.Action, error) {
	var w Withdraw
	if err := borsh.Deserialize(&w, b); err != nil {
		return nil, err
	}
	return &w, nil
}

func (*Withdraw) Execute(
	ctx context.Context,
	_ chain.Rules,
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
	amount, err := storage.GetBalance(ctx, mu, vault)
	if err != nil {
		return nil, err
	}
	if amount == 0 {
		return nil, fmt.Errorf("%w: vault %s is empty", ErrInvalidAmount, vault)
	}

	// The vault has no key. It is unlocked by re-deriving its address.
	signer := pda.NewSigner(consts.ProgramID(), bump, storage.VaultSeeds(actor)...)
	if err := t.Transfer(ctx, mu, vault, actor, amount, signer); err != nil {
		return nil, err
	}
	ownerBalance, err := storage.GetBalance(ctx, mu, actor)
	if err != nil {
		return nil, err
	}
	return &WithdrawResult{
		Vault:        vault,
		Amount:       amount,
		OwnerBalance: ownerBalance,
	}, nil
}

var _ codec.Typed = (*WithdrawResult)(nil)

type WithdrawResult struct {
	Vault        codec.Address `json:"vault"`
	Amount       uint64        `json:"amount"`
	OwnerBalance uint64        `json:"ownerBalance"`
}

func (*WithdrawResult) GetTypeID() uint8 {
	return consts.WithdrawID
}
