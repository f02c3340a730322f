// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava-labs/vaultvm/auth"
	"github.com/ava-labs/vaultvm/codec"
	"github.com/ava-labs/vaultvm/consts"
	"github.com/ava-labs/vaultvm/crypto/ed25519"
	"github.com/ava-labs/vaultvm/utils"
)

var errKeyExists = errors.New("key file already exists")

var keyCmd = &cobra.Command{
	Use: "key",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var genKeyCmd = &cobra.Command{
	Use:   "generate",
	Short: "Creates a new ed25519 key at --key",
	RunE: func(*cobra.Command, []string) error {
		if _, err := os.Stat(keyPath); err == nil {
			return fmt.Errorf("%w: %s", errKeyExists, keyPath)
		}
		priv, err := ed25519.GeneratePrivateKey()
		if err != nil {
			return err
		}
		if err := utils.SaveBytes(keyPath, []byte(priv.ToHex())); err != nil {
			return err
		}
		utils.Outf(
			"{{green}}created address:{{/}} %s {{yellow}}(saved to %s){{/}}\n",
			codec.MustAddressBech32(consts.HRP, auth.NewED25519Address(priv.PublicKey())),
			keyPath,
		)
		return nil
	},
}

var addressKeyCmd = &cobra.Command{
	Use:   "address",
	Short: "Prints the address of the key at --key",
	RunE: func(*cobra.Command, []string) error {
		factory, err := loadFactory()
		if err != nil {
			return err
		}
		utils.Outf("{{green}}address:{{/}} %s\n", codec.MustAddressBech32(consts.HRP, factory.Address()))
		return nil
	},
}

func loadFactory() (*auth.ED25519Factory, error) {
	b, err := utils.LoadBytes(keyPath, -1)
	if err != nil {
		return nil, err
	}
	priv, err := ed25519.PrivateKeyFromHex(strings.TrimSpace(string(b)))
	if err != nil {
		return nil, err
	}
	return auth.NewED25519Factory(priv), nil
}
