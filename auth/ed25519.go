// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"context"
	"fmt"

	"github.com/ava-labs/vaultvm/chain"
	"github.com/ava-labs/vaultvm/codec"
	"github.com/ava-labs/vaultvm/consts"
	"github.com/ava-labs/vaultvm/crypto"
	"github.com/ava-labs/vaultvm/crypto/ed25519"
)

var _ chain.Auth = (*ED25519)(nil)

const ED25519Size = ed25519.PublicKeyLen + ed25519.SignatureLen

type ED25519 struct {
	Signer    ed25519.PublicKey `json:"signer"`
	Signature ed25519.Signature `json:"signature"`

	addr codec.Address
}

func (d *ED25519) address() codec.Address {
	if d.addr == codec.EmptyAddress {
		d.addr = NewED25519Address(d.Signer)
	}
	return d.addr
}

func (*ED25519) GetTypeID() uint8 {
	return consts.ED25519ID
}

func (d *ED25519) Verify(_ context.Context, msg []byte) error {
	if !ed25519.Verify(msg, d.Signer, d.Signature) {
		return crypto.ErrInvalidSignature
	}
	return nil
}

func (d *ED25519) Actor() codec.Address {
	return d.address()
}

func (d *ED25519) Marshal() ([]byte, error) {
	b := make([]byte, ED25519Size)
	copy(b, d.Signer[:])
	copy(b[ed25519.PublicKeyLen:], d.Signature[:])
	return b, nil
}

func UnmarshalED25519(bytes []byte) (chain.Auth, error) {
	if len(bytes) != ED25519Size {
		return nil, fmt.Errorf("%w: ed25519 auth size %d != %d", codec.ErrInvalidSize, len(bytes), ED25519Size)
	}
	var d ED25519
	copy(d.Signer[:], bytes)
	copy(d.Signature[:], bytes[ed25519.PublicKeyLen:])
	return &d, nil
}

var _ chain.AuthFactory = (*ED25519Factory)(nil)

type ED25519Factory struct {
	priv ed25519.PrivateKey
}

func NewED25519Factory(priv ed25519.PrivateKey) *ED25519Factory {
	return &ED25519Factory{priv}
}

func (d *ED25519Factory) Sign(msg []byte) (chain.Auth, error) {
	sig := ed25519.Sign(msg, d.priv)
	return &ED25519{Signer: d.priv.PublicKey(), Signature: sig}, nil
}

func (d *ED25519Factory) Address() codec.Address {
	return NewED25519Address(d.priv.PublicKey())
}

// NewED25519Address returns the owner address controlled by [pk].
func NewED25519Address(pk ed25519.PublicKey) codec.Address {
	return codec.CreateKeyAddress(consts.ED25519ID, pk[:])
}
