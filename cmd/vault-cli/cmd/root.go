// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const (
	defaultKey      = ".vault-key"
	defaultGenesis  = "genesis.json"
	defaultEndpoint = "http://127.0.0.1:9650"
)

var (
	keyPath     string
	endpoint    string
	configFile  string
	genesisFile string
	networkID   uint32
	chainID     string
	baseFee     uint64
	amount      string
	skipConfirm bool

	rootCmd = &cobra.Command{
		Use:        "vault-cli",
		Short:      "VaultVM CLI",
		SuggestFor: []string{"vault-cli", "vaultcli"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		keyCmd,
		genesisCmd,
		vaultCmd,
		balanceCmd,
		depositCmd,
		withdrawCmd,
		serveCmd,
	)
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVar(
		&keyPath,
		"key",
		defaultKey,
		"path to the ed25519 private key",
	)
	rootCmd.PersistentFlags().StringVar(
		&endpoint,
		"endpoint",
		defaultEndpoint,
		"node URI",
	)

	// key
	keyCmd.AddCommand(
		genKeyCmd,
		addressKeyCmd,
	)

	// genesis
	genGenesisCmd.PersistentFlags().StringVar(
		&genesisFile,
		"genesis-file",
		defaultGenesis,
		"genesis file path",
	)
	genGenesisCmd.PersistentFlags().Uint32Var(
		&networkID,
		"network-id",
		1337,
		"network id",
	)
	genGenesisCmd.PersistentFlags().StringVar(
		&chainID,
		"chain-id",
		"",
		"chain id (random if empty)",
	)
	genGenesisCmd.PersistentFlags().Uint64Var(
		&baseFee,
		"base-fee",
		0,
		"fee charged per transaction (default rules if 0)",
	)
	genesisCmd.AddCommand(
		genGenesisCmd,
	)

	// vault
	vaultCmd.AddCommand(
		addressVaultCmd,
	)

	// actions
	depositCmd.PersistentFlags().StringVar(
		&amount,
		"amount",
		"",
		"amount to deposit (prompted if empty)",
	)
	for _, c := range []*cobra.Command{depositCmd, withdrawCmd} {
		c.PersistentFlags().BoolVarP(
			&skipConfirm,
			"yes",
			"y",
			false,
			"skip confirmation",
		)
	}

	// serve
	serveCmd.PersistentFlags().StringVar(
		&configFile,
		"config",
		"",
		"config file (yaml or json), overridden by VAULT_ env vars",
	)
}

// Execute runs the CLI until it finishes or receives SIGINT or SIGTERM.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return rootCmd.ExecuteContext(ctx)
}
