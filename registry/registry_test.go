// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/vaultvm/actions"
	"github.com/ava-labs/vaultvm/auth"
	"github.com/ava-labs/vaultvm/chain"
	"github.com/ava-labs/vaultvm/codec"
	"github.com/ava-labs/vaultvm/crypto/ed25519"
)

func TestParseSignedTx(t *testing.T) {
	require := require.New(t)

	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	factory := auth.NewED25519Factory(priv)

	tx, err := chain.NewTx(
		&chain.Base{Timestamp: 1, ChainID: ids.GenerateTestID(), MaxFee: 5_000},
		&actions.Deposit{Amount: 1_000_000},
	).Sign(factory)
	require.NoError(err)

	serialized, err := tx.Serialize()
	require.NoError(err)
	parsed, err := Parser.ParseTx(serialized)
	require.NoError(err)

	require.Equal(tx.ID(), parsed.ID())
	require.Equal(&actions.Deposit{Amount: 1_000_000}, parsed.Action)
	require.Equal(factory.Address(), parsed.Auth.Actor())
	require.NoError(parsed.Verify(context.Background()))
}

func TestParseUnknownAction(t *testing.T) {
	require := require.New(t)

	_, err := Parser.ParseTx(&chain.SerializedTx{
		Base:       &chain.Base{},
		ActionType: 0x7f,
		Action:     codec.Bytes{},
	})
	require.ErrorIs(err, chain.ErrUnknownAction)
	require.ErrorIs(err, codec.ErrUnknownType)
}
