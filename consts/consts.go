// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	ByteLen   = 1
	IDLen     = 32
	MaxUint8  = ^uint8(0)
	Uint16Len = 2
	Uint64Len = 8
	MaxUint64 = ^uint64(0)

	// MaxSeeds and MaxSeedLen bound the input to program address derivation.
	// A full 33 byte address fits in one seed.
	MaxSeeds   = 16
	MaxSeedLen = 33
)
