// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaintest

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/vaultvm/chain"
)

var (
	_ chain.Rules       = (*Rules)(nil)
	_ chain.RuleFactory = (*Rules)(nil)
)

// Rules are fixed rules for tests. MinimumBalance is returned for every data
// length.
type Rules struct {
	ChainID        ids.ID
	MinimumBalance uint64
	BaseFee        uint64
	ValidityWindow int64

	// Fetches counts calls to GetMinimumBalance.
	Fetches int
}

func NewRules(minimumBalance uint64) *Rules {
	return &Rules{MinimumBalance: minimumBalance}
}

func (*Rules) GetNetworkID() uint32 { return 0 }

func (r *Rules) GetChainID() ids.ID { return r.ChainID }

func (r *Rules) GetMinimumBalance(uint64) (uint64, error) {
	r.Fetches++
	return r.MinimumBalance, nil
}

func (r *Rules) GetBaseFee() uint64 { return r.BaseFee }

func (r *Rules) GetValidityWindow() int64 { return r.ValidityWindow }

func (r *Rules) GetRules(int64) chain.Rules { return r }
