// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/vaultvm/actions"
	"github.com/ava-labs/vaultvm/chain"
	"github.com/ava-labs/vaultvm/cli/prompt"
	"github.com/ava-labs/vaultvm/codec"
	"github.com/ava-labs/vaultvm/consts"
	"github.com/ava-labs/vaultvm/rpc"
	"github.com/ava-labs/vaultvm/storage"
	"github.com/ava-labs/vaultvm/utils"
)

var vaultCmd = &cobra.Command{
	Use: "vault",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var addressVaultCmd = &cobra.Command{
	Use:   "address [owner]",
	Short: "Derives the vault of [owner] (default: the --key address)",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) > 1 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		owner, err := ownerAddress(args)
		if err != nil {
			return err
		}
		vault, bump, err := storage.VaultAddress(consts.ProgramID(), owner)
		if err != nil {
			return err
		}
		utils.Outf(
			"{{yellow}}owner:{{/}} %s\n{{green}}vault:{{/}} %s {{yellow}}bump:{{/}} %d\n",
			codec.MustAddressBech32(consts.HRP, owner),
			codec.MustAddressBech32(consts.HRP, vault),
			bump,
		)
		return nil
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Prints the balance of [address] and of its vault",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) > 1 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		owner, err := ownerAddress(args)
		if err != nil {
			return err
		}
		cli := rpc.NewJSONRPCClient(endpoint)
		bal, err := cli.Balance(ctx, codec.MustAddressBech32(consts.HRP, owner))
		if err != nil {
			return err
		}
		vault, _, vaultBal, err := cli.Vault(ctx, owner)
		if err != nil {
			return err
		}
		utils.Outf("{{yellow}}balance:{{/}} %s %s\n", utils.FormatBalance(bal), consts.Symbol)
		utils.Outf("{{yellow}}vault %s:{{/}} %s %s\n", vault, utils.FormatBalance(vaultBal), consts.Symbol)
		return nil
	},
}

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Moves --amount into the vault of the --key address",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		factory, err := loadFactory()
		if err != nil {
			return err
		}
		cli := rpc.NewJSONRPCClient(endpoint)
		owner := factory.Address()
		bal, err := cli.Balance(ctx, codec.MustAddressBech32(consts.HRP, owner))
		if err != nil {
			return err
		}
		rules, err := cli.Rules(ctx, 0)
		if err != nil {
			return err
		}
		utils.Outf(
			"{{yellow}}balance:{{/}} %s %s {{yellow}}vault minimum:{{/}} %s %s\n",
			utils.FormatBalance(bal), consts.Symbol,
			utils.FormatBalance(rules.MinimumBalance), consts.Symbol,
		)

		var value uint64
		if amount != "" {
			value, err = utils.ParseBalance(amount)
		} else {
			value, err = prompt.Amount("amount", bal, func(v uint64) error {
				if v <= rules.MinimumBalance {
					return actions.ErrInvalidAmount
				}
				return nil
			})
		}
		if err != nil {
			return err
		}
		return sendAndWait(ctx, cli, factory, &actions.Deposit{Amount: value})
	},
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Sweeps the vault of the --key address back to it",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		factory, err := loadFactory()
		if err != nil {
			return err
		}
		cli := rpc.NewJSONRPCClient(endpoint)
		vault, _, vaultBal, err := cli.Vault(ctx, factory.Address())
		if err != nil {
			return err
		}
		utils.Outf("{{yellow}}vault %s:{{/}} %s %s\n", vault, utils.FormatBalance(vaultBal), consts.Symbol)
		return sendAndWait(ctx, cli, factory, &actions.Withdraw{})
	},
}

func ownerAddress(args []string) (codec.Address, error) {
	if len(args) == 1 {
		return codec.ParseAddressBech32(consts.HRP, args[0])
	}
	factory, err := loadFactory()
	if err != nil {
		return codec.EmptyAddress, err
	}
	return factory.Address(), nil
}

func sendAndWait(ctx context.Context, cli *rpc.JSONRPCClient, factory chain.AuthFactory, action chain.Action) error {
	if !skipConfirm {
		cont, err := prompt.Continue()
		if !cont || err != nil {
			return err
		}
	}
	tx, err := cli.GenerateTransaction(ctx, action, factory)
	if err != nil {
		return err
	}
	reply, err := cli.SubmitTx(ctx, tx)
	if err != nil {
		return err
	}
	if !reply.Success {
		utils.Outf("{{red}}tx %s failed:{{/}} %s {{yellow}}fee:{{/}} %s\n", reply.TxID, reply.Error, utils.FormatBalance(reply.Fee))
		return fmt.Errorf("%w: %s", ErrTxFailed, reply.Error)
	}
	utils.Outf("{{green}}tx %s succeeded{{/}} {{yellow}}fee:{{/}} %s\n", reply.TxID, utils.FormatBalance(reply.Fee))
	switch {
	case reply.Deposit != nil:
		utils.Outf(
			"{{yellow}}vault:{{/}} %s {{yellow}}holds:{{/}} %s %s {{yellow}}owner balance:{{/}} %s %s\n",
			codec.MustAddressBech32(consts.HRP, reply.Deposit.Vault),
			utils.FormatBalance(reply.Deposit.VaultBalance), consts.Symbol,
			utils.FormatBalance(reply.Deposit.OwnerBalance), consts.Symbol,
		)
	case reply.Withdraw != nil:
		utils.Outf(
			"{{yellow}}withdrew:{{/}} %s %s {{yellow}}owner balance:{{/}} %s %s\n",
			utils.FormatBalance(reply.Withdraw.Amount), consts.Symbol,
			utils.FormatBalance(reply.Withdraw.OwnerBalance), consts.Symbol,
		)
	}
	return nil
}
