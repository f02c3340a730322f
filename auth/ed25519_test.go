// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/vaultvm/codec"
	"github.com/ava-labs/vaultvm/consts"
	"github.com/ava-labs/vaultvm/crypto"
	"github.com/ava-labs/vaultvm/crypto/ed25519"
)

func TestED25519SignVerify(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	factory := NewED25519Factory(priv)

	msg := []byte("withdraw")
	auth, err := factory.Sign(msg)
	require.NoError(err)
	require.NoError(auth.Verify(ctx, msg))
	require.ErrorIs(auth.Verify(ctx, []byte("deposit")), crypto.ErrInvalidSignature)

	require.Equal(factory.Address(), auth.Actor())
	require.Equal(consts.ED25519ID, auth.Actor().TypeID())
}

func TestED25519Marshal(t *testing.T) {
	require := require.New(t)

	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	auth, err := NewED25519Factory(priv).Sign([]byte("msg"))
	require.NoError(err)

	b, err := auth.Marshal()
	require.NoError(err)
	require.Len(b, ED25519Size)

	parsed, err := UnmarshalED25519(b)
	require.NoError(err)
	require.Equal(auth.Actor(), parsed.Actor())
	require.NoError(parsed.Verify(context.Background(), []byte("msg")))

	_, err = UnmarshalED25519(b[1:])
	require.ErrorIs(err, codec.ErrInvalidSize)
}

func TestED25519AddressDistinct(t *testing.T) {
	require := require.New(t)
	a, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	b, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	require.NotEqual(NewED25519Address(a.PublicKey()), NewED25519Address(b.PublicKey()))
	require.Equal(NewED25519Address(a.PublicKey()), NewED25519Address(a.PublicKey()))
}
