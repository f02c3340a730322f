// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"fmt"

	"github.com/ava-labs/vaultvm/codec"
	"github.com/ava-labs/vaultvm/state"
	"github.com/ava-labs/vaultvm/storage"
)

var _ Transferer = SystemTransferer{}

// SystemTransferer is the native balance transfer primitive. It is bound to
// the actor whose signature the processor verified: that actor may always
// spend from its own address, any other source needs a signer.
type SystemTransferer struct {
	actor codec.Address
}

// NewSystemTransferer returns the transferer for a transaction signed by
// [actor]. Only the processor binds actors in production.
func NewSystemTransferer(actor codec.Address) SystemTransferer {
	return SystemTransferer{actor: actor}
}

func (s SystemTransferer) Transfer(
	ctx context.Context,
	mu state.Mutable,
	from codec.Address,
	to codec.Address,
	amount uint64,
	signers ...Signer,
) error {
	if err := s.authorized(from, signers); err != nil {
		return err
	}
	if amount == 0 {
		return nil
	}
	if _, err := storage.SubBalance(ctx, mu, from, amount); err != nil {
		return err
	}
	_, err := storage.AddBalance(ctx, mu, to, amount)
	return err
}

func (s SystemTransferer) authorized(from codec.Address, signers []Signer) error {
	if from == s.actor && s.actor != codec.EmptyAddress {
		return nil
	}
	for _, signer := range signers {
		addr, err := signer.Address()
		if err != nil {
			// A credential that does not derive any address cannot sign.
			continue
		}
		if addr == from {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrMissingSigner, from)
}
