// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ava-labs/vaultvm/chain"
)

var (
	_ chain.RuleFactory = (*ImmutableRuleFactory)(nil)
	_ chain.RuleFactory = (*UpgradeRuleFactory)(nil)

	ErrUnorderedUpgrades   = errors.New("upgrades must activate in increasing order")
	ErrMissingUpgradeRules = errors.New("upgrade is missing rules")
)

type ImmutableRuleFactory struct {
	Rules chain.Rules
}

func (i *ImmutableRuleFactory) GetRules(_ int64) chain.Rules {
	return i.Rules
}

// Upgrade replaces the rules in force from [ActivationTime] (ms) onward.
type Upgrade struct {
	ActivationTime int64  `json:"activationTime"`
	Rules          *Rules `json:"rules"`
}

// UpgradeRuleFactory serves the genesis rules until the first upgrade
// activates, then the most recent activated upgrade.
type UpgradeRuleFactory struct {
	initial  chain.Rules
	upgrades []*Upgrade
}

func NewUpgradeRuleFactory(initial *Rules, upgrades []*Upgrade) (*UpgradeRuleFactory, error) {
	for i := 1; i < len(upgrades); i++ {
		if upgrades[i].ActivationTime <= upgrades[i-1].ActivationTime {
			return nil, fmt.Errorf("%w: upgrade %d at %d", ErrUnorderedUpgrades, i, upgrades[i].ActivationTime)
		}
	}
	return &UpgradeRuleFactory{initial: initial, upgrades: upgrades}, nil
}

func (u *UpgradeRuleFactory) GetRules(t int64) chain.Rules {
	// index of the first upgrade that is not yet active
	i := sort.Search(len(u.upgrades), func(i int) bool {
		return u.upgrades[i].ActivationTime > t
	})
	if i == 0 {
		return u.initial
	}
	return u.upgrades[i-1].Rules
}
