// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ava-labs/vaultvm/chain"
	"github.com/ava-labs/vaultvm/codec"
	"github.com/ava-labs/vaultvm/state"
	"github.com/ava-labs/vaultvm/storage"

	safemath "github.com/ava-labs/avalanchego/utils/math"
)

type CustomAllocation struct {
	Address codec.Address `json:"address"`
	Balance uint64        `json:"balance"`
}

type Genesis struct {
	CustomAllocation []*CustomAllocation `json:"customAllocation"`
	Rules            *Rules              `json:"initialRules"`
	Upgrades         []*Upgrade          `json:"upgrades,omitempty"`
}

func NewDefaultGenesis(customAllocations []*CustomAllocation) *Genesis {
	return &Genesis{
		CustomAllocation: customAllocations,
		Rules:            NewDefaultRules(),
	}
}

// Load parses a JSON genesis and returns it with the rule factory it
// describes. Upgrades inherit the network and chain ids of the genesis rules.
func Load(genesisBytes []byte) (*Genesis, chain.RuleFactory, error) {
	g := &Genesis{}
	if err := json.Unmarshal(genesisBytes, g); err != nil {
		return nil, nil, err
	}
	if g.Rules == nil {
		g.Rules = NewDefaultRules()
	}
	if len(g.Upgrades) == 0 {
		return g, &ImmutableRuleFactory{Rules: g.Rules}, nil
	}
	for i, u := range g.Upgrades {
		if u.Rules == nil {
			return nil, nil, fmt.Errorf("%w: upgrade %d", ErrMissingUpgradeRules, i)
		}
		u.Rules.NetworkID = g.Rules.NetworkID
		u.Rules.ChainID = g.Rules.ChainID
	}
	factory, err := NewUpgradeRuleFactory(g.Rules, g.Upgrades)
	if err != nil {
		return nil, nil, err
	}
	return g, factory, nil
}

// InitializeState credits every allocation to [mu].
func (g *Genesis) InitializeState(ctx context.Context, mu state.Mutable) (uint64, error) {
	supply := uint64(0)
	for _, alloc := range g.CustomAllocation {
		var err error
		supply, err = safemath.Add(supply, alloc.Balance)
		if err != nil {
			return 0, err
		}
		if _, err := storage.AddBalance(ctx, mu, alloc.Address, alloc.Balance); err != nil {
			return 0, fmt.Errorf("%w: addr=%s, bal=%d", err, alloc.Address, alloc.Balance)
		}
	}
	return supply, nil
}
