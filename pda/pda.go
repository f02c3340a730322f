// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pda

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/vaultvm/codec"
	"github.com/ava-labs/vaultvm/consts"
)

const marker = "ProgramDerivedAddress"

var (
	ErrMaxSeeds      = errors.New("too many seeds")
	ErrMaxSeedLength = errors.New("seed exceeds max length")
	ErrOnCurve       = errors.New("derived address is on the ed25519 curve")
	ErrNoViableBump  = errors.New("unable to find a viable bump")
)

// Create returns the program address for [seeds] and [bump] under
// [programID]. It fails with [ErrOnCurve] if the digest is a valid ed25519
// public key, since a private key could then sign for the account.
func Create(programID ids.ID, seeds [][]byte, bump uint8) (codec.Address, error) {
	if len(seeds) > consts.MaxSeeds {
		return codec.EmptyAddress, fmt.Errorf("%w: %d > %d", ErrMaxSeeds, len(seeds), consts.MaxSeeds)
	}
	for i, seed := range seeds {
		if len(seed) > consts.MaxSeedLen {
			return codec.EmptyAddress, fmt.Errorf("%w: seed %d has %d bytes", ErrMaxSeedLength, i, len(seed))
		}
	}

	h := sha256.New()
	for _, seed := range seeds {
		h.Write(seed)
	}
	h.Write([]byte{bump})
	h.Write(programID[:])
	h.Write([]byte(marker))

	var digest ids.ID
	copy(digest[:], h.Sum(nil))
	if onCurve(digest) {
		return codec.EmptyAddress, ErrOnCurve
	}
	return codec.CreateAddress(consts.PDAID, digest), nil
}

// Find searches bumps from 255 down to 0 and returns the first (canonical)
// address that is off the curve, together with its bump.
func Find(programID ids.ID, seeds ...[]byte) (codec.Address, uint8, error) {
	for bump := int(consts.MaxUint8); bump >= 0; bump-- {
		addr, err := Create(programID, seeds, uint8(bump))
		switch {
		case err == nil:
			return addr, uint8(bump), nil
		case errors.Is(err, ErrOnCurve):
			continue
		default:
			return codec.EmptyAddress, 0, err
		}
	}
	return codec.EmptyAddress, 0, ErrNoViableBump
}

func onCurve(b ids.ID) bool {
	_, err := new(edwards25519.Point).SetBytes(b[:])
	return err == nil
}
