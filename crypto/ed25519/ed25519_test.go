// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/vaultvm/crypto"
)

var (
	TestPrivateKey = PrivateKey(
		[PrivateKeyLen]byte{
			32, 241, 118, 222, 210, 13, 164, 128, 3, 18,
			109, 215, 176, 215, 168, 171, 194, 181, 4, 11,
			253, 199, 173, 240, 107, 148, 127, 190, 48, 164,
			12, 48, 115, 50, 124, 153, 59, 53, 196, 150, 168,
			143, 151, 235, 222, 128, 136, 161, 9, 40, 139, 85,
			182, 153, 68, 135, 62, 166, 45, 235, 251, 246, 69, 7,
		},
	)
	TestPublicKey = []byte{
		115, 50, 124, 153, 59, 53, 196, 150, 168, 143, 151, 235,
		222, 128, 136, 161, 9, 40, 139, 85, 182, 153, 68, 135,
		62, 166, 45, 235, 251, 246, 69, 7,
	}
)

func TestGeneratePrivateKeyDifferent(t *testing.T) {
	require := require.New(t)
	a, err := GeneratePrivateKey()
	require.NoError(err)
	b, err := GeneratePrivateKey()
	require.NoError(err)
	require.NotEqual(EmptyPrivateKey, PrivateKey(a))
	require.NotEqual(a, b)
}

func TestPublicKeyValid(t *testing.T) {
	require := require.New(t)
	expectedPubKey := ed25519.PrivateKey(TestPrivateKey[:]).Public().(ed25519.PublicKey)
	require.Equal(PublicKey(expectedPubKey), TestPrivateKey.PublicKey())
	require.Equal(TestPublicKey, []byte(expectedPubKey))
}

func TestPrivateKeyHex(t *testing.T) {
	require := require.New(t)
	priv, err := PrivateKeyFromHex(TestPrivateKey.ToHex())
	require.NoError(err)
	require.Equal(TestPrivateKey, priv)

	_, err = PrivateKeyFromHex("0x0102")
	require.ErrorIs(err, crypto.ErrInvalidPrivateKey)
}

func TestSignVerify(t *testing.T) {
	require := require.New(t)
	msg := []byte("deposit")
	sig := Sign(msg, TestPrivateKey)
	require.True(Verify(msg, TestPrivateKey.PublicKey(), sig))
	require.False(Verify([]byte("withdraw"), TestPrivateKey.PublicKey(), sig))

	other, err := GeneratePrivateKey()
	require.NoError(err)
	require.False(Verify(msg, other.PublicKey(), sig))
}
