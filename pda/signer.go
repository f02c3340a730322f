// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pda

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/vaultvm/codec"
)

// Signer is the credential that stands in for a signature on a program
// address. Whoever knows the exact (program, seeds, bump) triple can
// reconstruct it.
type Signer struct {
	ProgramID ids.ID
	Seeds     [][]byte
	Bump      uint8
}

func NewSigner(programID ids.ID, bump uint8, seeds ...[]byte) *Signer {
	return &Signer{
		ProgramID: programID,
		Seeds:     seeds,
		Bump:      bump,
	}
}

// Address re-derives the address this credential controls.
func (s *Signer) Address() (codec.Address, error) {
	return Create(s.ProgramID, s.Seeds, s.Bump)
}
