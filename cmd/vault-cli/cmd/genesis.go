// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"crypto/rand"
	"encoding/json"
	"os"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/spf13/cobra"

	"github.com/ava-labs/vaultvm/codec"
	"github.com/ava-labs/vaultvm/consts"
	"github.com/ava-labs/vaultvm/genesis"
	"github.com/ava-labs/vaultvm/utils"
)

const fsModeWrite = 0o600

// allocation is a genesis allocation with a bech32 address.
type allocation struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}

var genesisCmd = &cobra.Command{
	Use: "genesis",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var genGenesisCmd = &cobra.Command{
	Use:   "generate [custom allocations file] [options]",
	Short: "Creates a new genesis in the default location",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		a, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var allocs []*allocation
		if err := json.Unmarshal(a, &allocs); err != nil {
			return err
		}
		custom := make([]*genesis.CustomAllocation, len(allocs))
		for i, alloc := range allocs {
			addr, err := codec.ParseAddressBech32(consts.HRP, alloc.Address)
			if err != nil {
				return err
			}
			custom[i] = &genesis.CustomAllocation{Address: addr, Balance: alloc.Balance}
		}

		g := genesis.NewDefaultGenesis(custom)
		g.Rules.NetworkID = networkID
		if chainID != "" {
			g.Rules.ChainID, err = ids.FromString(chainID)
		} else {
			_, err = rand.Read(g.Rules.ChainID[:])
		}
		if err != nil {
			return err
		}
		if baseFee > 0 {
			g.Rules.BaseFee = baseFee
		}

		b, err := json.Marshal(g)
		if err != nil {
			return err
		}
		if err := os.WriteFile(genesisFile, b, fsModeWrite); err != nil {
			return err
		}
		utils.Outf("{{yellow}}genesis created:{{/}} %s {{yellow}}chainID:{{/}} %s\n", genesisFile, g.Rules.ChainID)
		return nil
	},
}
