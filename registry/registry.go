// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/vaultvm/actions"
	"github.com/ava-labs/vaultvm/auth"
	"github.com/ava-labs/vaultvm/chain"
)

var Parser *chain.Parser

// Setup types
func init() {
	Parser = chain.NewParser()

	errs := &wrappers.Errs{}
	errs.Add(
		// When registering new actions, ALWAYS make sure to append at the end.
		Parser.ActionRegistry.Register(&actions.Deposit{}, actions.UnmarshalDeposit),
		Parser.ActionRegistry.Register(&actions.Withdraw{}, actions.UnmarshalWithdraw),

		// When registering new auth, ALWAYS make sure to append at the end.
		Parser.AuthRegistry.Register(&auth.ED25519{}, auth.UnmarshalED25519),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}
