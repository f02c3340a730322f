// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/vaultvm/codec"
	"github.com/ava-labs/vaultvm/state"
)

// Rules are the ledger parameters in force at a given time. Callers must not
// cache values read from Rules across transactions: a later epoch may change
// them.
type Rules interface {
	GetNetworkID() uint32
	GetChainID() ids.ID

	// GetMinimumBalance returns the smallest balance an account holding
	// [dataLen] bytes of data must keep to stay alive.
	GetMinimumBalance(dataLen uint64) (uint64, error)
	// GetBaseFee is charged to the actor of every executed transaction.
	GetBaseFee() uint64
	// GetValidityWindow (ms) bounds how far a transaction timestamp may be
	// from the ledger clock.
	GetValidityWindow() int64
}

type RuleFactory interface {
	GetRules(t int64) Rules
}

type Action interface {
	codec.Typed

	// Marshal returns the encoded action payload (without the type id).
	Marshal() ([]byte, error)

	// Execute applies the action on behalf of [actor], who has already proven
	// control of its address. If Execute returns an error, every change made
	// to [mu] is discarded by the caller.
	Execute(
		ctx context.Context,
		r Rules,
		mu state.Mutable,
		t Transferer,
		timestamp int64,
		actor codec.Address,
		actionID ids.ID,
	) (codec.Typed, error)
}

type Auth interface {
	codec.Typed

	// Verify returns an error if the auth does not sign [msg].
	Verify(ctx context.Context, msg []byte) error

	// Actor is the account that authorised the transaction.
	Actor() codec.Address

	Marshal() ([]byte, error)
}

// Signer proves control over an address other than the transaction actor's.
// Program derived addresses are controlled by a pda.Signer.
type Signer interface {
	Address() (codec.Address, error)
}

// Transferer moves native balance between accounts. The actor of the
// transaction may spend its own balance without a signer.
//
//go:generate go run go.uber.org/mock/mockgen -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/transferer.go -mock_names=Transferer=Transferer . Transferer
type Transferer interface {
	Transfer(
		ctx context.Context,
		mu state.Mutable,
		from codec.Address,
		to codec.Address,
		amount uint64,
		signers ...Signer,
	) error
}
