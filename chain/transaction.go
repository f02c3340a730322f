// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/near/borsh-go"

	"github.com/ava-labs/vaultvm/codec"
)

type Base struct {
	// Timestamp (ms) must be within the validity window of the ledger clock.
	// It makes otherwise identical transactions distinct.
	Timestamp int64 `json:"timestamp"`

	// ChainID protects against replay attacks on other chains.
	ChainID ids.ID `json:"chainId"`

	// MaxFee is the most the actor is willing to pay.
	MaxFee uint64 `json:"maxFee"`
}

// Verify checks [b] against the rules in force at ledger time [now] (ms).
func (b *Base) Verify(r Rules, now int64) error {
	if window := r.GetValidityWindow(); b.Timestamp < now-window || b.Timestamp > now+window {
		return fmt.Errorf("%w: %d not within %d of %d", ErrTimestampOutOfRange, b.Timestamp, window, now)
	}
	if b.ChainID != r.GetChainID() {
		return fmt.Errorf("%w: %s != %s", ErrInvalidChainID, b.ChainID, r.GetChainID())
	}
	if fee := r.GetBaseFee(); b.MaxFee < fee {
		return fmt.Errorf("%w: max=%d base=%d", ErrInsufficientMaxFee, b.MaxFee, fee)
	}
	return nil
}

// unsignedTx is the borsh layout that auth signs over.
type unsignedTx struct {
	Timestamp  int64
	ChainID    [ids.IDLen]byte
	MaxFee     uint64
	ActionType uint8
	Action     []byte
}

type Transaction struct {
	Base   *Base
	Action Action
	Auth   Auth

	digest []byte
	id     ids.ID
}

// NewTx returns an unsigned transaction. Use [Transaction.Sign] to attach
// auth.
func NewTx(base *Base, action Action) *Transaction {
	return &Transaction{Base: base, Action: action}
}

// Digest returns the bytes signed by the transaction's auth.
func (t *Transaction) Digest() ([]byte, error) {
	if t.digest != nil {
		return t.digest, nil
	}
	if t.Action == nil {
		return nil, ErrMissingAction
	}
	actionBytes, err := t.Action.Marshal()
	if err != nil {
		return nil, err
	}
	digest, err := borsh.Serialize(unsignedTx{
		Timestamp:  t.Base.Timestamp,
		ChainID:    t.Base.ChainID,
		MaxFee:     t.Base.MaxFee,
		ActionType: t.Action.GetTypeID(),
		Action:     actionBytes,
	})
	if err != nil {
		return nil, err
	}
	t.digest = digest
	return digest, nil
}

// Sign returns a copy of t authorised by [factory].
func (t *Transaction) Sign(factory AuthFactory) (*Transaction, error) {
	digest, err := t.Digest()
	if err != nil {
		return nil, err
	}
	auth, err := factory.Sign(digest)
	if err != nil {
		return nil, err
	}
	signed := &Transaction{
		Base:   t.Base,
		Action: t.Action,
		Auth:   auth,
		digest: digest,
	}
	if err := signed.computeID(); err != nil {
		return nil, err
	}
	return signed, nil
}

func (t *Transaction) computeID() error {
	if t.Auth == nil {
		return ErrMissingAuth
	}
	digest, err := t.Digest()
	if err != nil {
		return err
	}
	authBytes, err := t.Auth.Marshal()
	if err != nil {
		return err
	}
	b := make([]byte, 0, len(digest)+1+len(authBytes))
	b = append(b, digest...)
	b = append(b, t.Auth.GetTypeID())
	b = append(b, authBytes...)
	t.id = hashing.ComputeHash256Array(b)
	return nil
}

func (t *Transaction) ID() ids.ID { return t.id }

// Verify checks that the auth signs the transaction digest.
func (t *Transaction) Verify(ctx context.Context) error {
	if t.Auth == nil {
		return ErrMissingAuth
	}
	digest, err := t.Digest()
	if err != nil {
		return err
	}
	return t.Auth.Verify(ctx, digest)
}

// AuthFactory signs digests for a single actor.
type AuthFactory interface {
	Sign(msg []byte) (Auth, error)
	Address() codec.Address
}

// SerializedTx is the JSON wire form of a [Transaction].
type SerializedTx struct {
	Base       *Base       `json:"base"`
	ActionType uint8       `json:"actionType"`
	Action     codec.Bytes `json:"action"`
	AuthType   uint8       `json:"authType"`
	Auth       codec.Bytes `json:"auth"`
}

func (t *Transaction) Serialize() (*SerializedTx, error) {
	if t.Action == nil {
		return nil, ErrMissingAction
	}
	if t.Auth == nil {
		return nil, ErrMissingAuth
	}
	actionBytes, err := t.Action.Marshal()
	if err != nil {
		return nil, err
	}
	authBytes, err := t.Auth.Marshal()
	if err != nil {
		return nil, err
	}
	return &SerializedTx{
		Base:       t.Base,
		ActionType: t.Action.GetTypeID(),
		Action:     actionBytes,
		AuthType:   t.Auth.GetTypeID(),
		Auth:       authBytes,
	}, nil
}
