// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/vaultvm/codec"
	"github.com/ava-labs/vaultvm/consts"
	"github.com/ava-labs/vaultvm/pda"
	"github.com/ava-labs/vaultvm/state"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// State
// 0x0/ (balance)
//   -> [address] => balance
// 0x1/ (supply)
//   -> genesis supply, present once genesis is applied
// 0x2/ (executed transactions)
//   -> [txID] => timestamp

const (
	balancePrefix byte = 0x0
	supplyPrefix  byte = 0x1
	txPrefix      byte = 0x2
)

var supplyKey = []byte{supplyPrefix}

// [balancePrefix] + [address]
func BalanceKey(addr codec.Address) []byte {
	k := make([]byte, consts.ByteLen+codec.AddressLen)
	k[0] = balancePrefix
	copy(k[1:], addr[:])
	return k
}

// If the balance is 0, then the account does not exist
func GetBalance(
	ctx context.Context,
	im state.Immutable,
	addr codec.Address,
) (uint64, error) {
	_, bal, _, err := getBalance(ctx, im, addr)
	return bal, err
}

func getBalance(
	ctx context.Context,
	im state.Immutable,
	addr codec.Address,
) ([]byte, uint64, bool, error) {
	k := BalanceKey(addr)
	bal, exists, err := innerGetBalance(im.GetValue(ctx, k))
	return k, bal, exists, err
}

func innerGetBalance(
	v []byte,
	err error,
) (uint64, bool, error) {
	if errors.Is(err, database.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	val, err := database.ParseUInt64(v)
	if err != nil {
		return 0, false, err
	}
	return val, true, nil
}

func SetBalance(
	ctx context.Context,
	mu state.Mutable,
	addr codec.Address,
	balance uint64,
) error {
	return setBalance(ctx, mu, BalanceKey(addr), balance)
}

func setBalance(
	ctx context.Context,
	mu state.Mutable,
	key []byte,
	balance uint64,
) error {
	if balance == 0 {
		// A zero balance is stored as the absence of the account.
		return mu.Remove(ctx, key)
	}
	return mu.Insert(ctx, key, binary.BigEndian.AppendUint64(nil, balance))
}

func AddBalance(
	ctx context.Context,
	mu state.Mutable,
	addr codec.Address,
	amount uint64,
) (uint64, error) {
	key, bal, _, err := getBalance(ctx, mu, addr)
	if err != nil {
		return 0, err
	}
	nbal, err := smath.Add(bal, amount)
	if err != nil {
		return 0, fmt.Errorf(
			"%w: could not add balance (bal=%d, addr=%v, amount=%d)",
			ErrInvalidBalance,
			bal,
			addr,
			amount,
		)
	}
	return nbal, setBalance(ctx, mu, key, nbal)
}

func SubBalance(
	ctx context.Context,
	mu state.Mutable,
	addr codec.Address,
	amount uint64,
) (uint64, error) {
	key, bal, _, err := getBalance(ctx, mu, addr)
	if err != nil {
		return 0, err
	}
	nbal, err := smath.Sub(bal, amount)
	if err != nil {
		return 0, fmt.Errorf(
			"%w: could not subtract balance (bal=%d, addr=%v, amount=%d)",
			ErrInvalidBalance,
			bal,
			addr,
			amount,
		)
	}
	return nbal, setBalance(ctx, mu, key, nbal)
}

// GetSupply returns the supply minted at genesis. ok is false if genesis
// has not been applied to [im].
func GetSupply(ctx context.Context, im state.Immutable) (supply uint64, ok bool, err error) {
	v, err := im.GetValue(ctx, supplyKey)
	if errors.Is(err, database.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	supply, err = database.ParseUInt64(v)
	if err != nil {
		return 0, false, err
	}
	return supply, true, nil
}

func SetSupply(ctx context.Context, mu state.Mutable, supply uint64) error {
	return mu.Insert(ctx, supplyKey, binary.BigEndian.AppendUint64(nil, supply))
}

// [txPrefix] + [txID]
func TxKey(txID ids.ID) []byte {
	k := make([]byte, consts.ByteLen+ids.IDLen)
	k[0] = txPrefix
	copy(k[1:], txID[:])
	return k
}

// HasTx reports whether [txID] has already been executed.
func HasTx(ctx context.Context, im state.Immutable, txID ids.ID) (bool, error) {
	_, err := im.GetValue(ctx, TxKey(txID))
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// StoreTx marks [txID] as executed.
func StoreTx(ctx context.Context, mu state.Mutable, txID ids.ID, timestamp int64) error {
	return mu.Insert(ctx, TxKey(txID), binary.BigEndian.AppendUint64(nil, uint64(timestamp)))
}

// VaultSeeds returns the derivation seeds of [owner]'s vault.
func VaultSeeds(owner codec.Address) [][]byte {
	return [][]byte{consts.VaultSeed, owner[:]}
}

// VaultAddress derives the vault of [owner] under [programID] and returns it
// with its canonical bump.
func VaultAddress(programID ids.ID, owner codec.Address) (codec.Address, uint8, error) {
	return pda.Find(programID, VaultSeeds(owner)...)
}
