// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/vaultvm/chain"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

var _ chain.Rules = (*Rules)(nil)

const (
	DefaultLamportsPerByteYear    uint64 = 3_480
	DefaultExemptionThreshold     uint64 = 2
	DefaultAccountStorageOverhead uint64 = 128
	DefaultBaseFee                uint64 = 5_000
	DefaultValidityWindow         int64  = 60_000 // ms
)

type Rules struct {
	NetworkID uint32 `json:"networkID"`
	ChainID   ids.ID `json:"chainID"`

	// Rent: an account must hold
	// (AccountStorageOverhead + dataLen) * LamportsPerByteYear * ExemptionThreshold
	// to be exempt from rent collection.
	LamportsPerByteYear    uint64 `json:"lamportsPerByteYear"`
	ExemptionThreshold     uint64 `json:"exemptionThreshold"` // years
	AccountStorageOverhead uint64 `json:"accountStorageOverhead"`

	BaseFee        uint64 `json:"baseFee"`
	ValidityWindow int64  `json:"validityWindow"` // ms
}

func NewDefaultRules() *Rules {
	return &Rules{
		LamportsPerByteYear:    DefaultLamportsPerByteYear,
		ExemptionThreshold:     DefaultExemptionThreshold,
		AccountStorageOverhead: DefaultAccountStorageOverhead,
		BaseFee:                DefaultBaseFee,
		ValidityWindow:         DefaultValidityWindow,
	}
}

func (r *Rules) GetNetworkID() uint32 {
	return r.NetworkID
}

func (r *Rules) GetChainID() ids.ID {
	return r.ChainID
}

func (r *Rules) GetMinimumBalance(dataLen uint64) (uint64, error) {
	size, err := smath.Add(r.AccountStorageOverhead, dataLen)
	if err != nil {
		return 0, err
	}
	perYear, err := smath.Mul(size, r.LamportsPerByteYear)
	if err != nil {
		return 0, err
	}
	return smath.Mul(perYear, r.ExemptionThreshold)
}

func (r *Rules) GetBaseFee() uint64 {
	return r.BaseFee
}

func (r *Rules) GetValidityWindow() int64 {
	return r.ValidityWindow
}
