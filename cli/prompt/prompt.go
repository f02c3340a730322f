// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompt

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ava-labs/vaultvm/codec"
	"github.com/ava-labs/vaultvm/consts"
	"github.com/ava-labs/vaultvm/utils"
)

var (
	ErrInputEmpty          = errors.New("input is empty")
	ErrInvalidChoice       = errors.New("invalid choice")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

func Address(label string) (codec.Address, error) {
	promptText := promptui.Prompt{
		Label:    label,
		Validate: validateAddress,
	}
	recipient, err := promptText.Run()
	if err != nil {
		return codec.EmptyAddress, err
	}
	return codec.ParseAddressBech32(consts.HRP, strings.TrimSpace(recipient))
}

func validateAddress(input string) error {
	if len(input) == 0 {
		return ErrInputEmpty
	}
	_, err := codec.ParseAddressBech32(consts.HRP, strings.TrimSpace(input))
	return err
}

// Amount asks for a decimal amount no larger than [balance]. [f], if set,
// applies extra checks to the parsed amount.
func Amount(
	label string,
	balance uint64,
	f func(input uint64) error,
) (uint64, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			return validateAmount(input, balance, f)
		},
	}
	rawAmount, err := promptText.Run()
	if err != nil {
		return 0, err
	}
	return utils.ParseBalance(strings.TrimSpace(rawAmount))
}

func validateAmount(input string, balance uint64, f func(uint64) error) error {
	if len(input) == 0 {
		return ErrInputEmpty
	}
	amount, err := utils.ParseBalance(input)
	if err != nil {
		return err
	}
	if amount > balance {
		return ErrInsufficientBalance
	}
	if f != nil {
		return f(amount)
	}
	return nil
}

func Continue() (bool, error) {
	promptText := promptui.Prompt{
		Label:    "continue (y/n)",
		Validate: validateContinue,
	}
	rawContinue, err := promptText.Run()
	if err != nil {
		return false, err
	}
	if strings.ToLower(rawContinue) == "n" {
		utils.Outf("{{red}}exiting...{{/}}\n")
		return false, nil
	}
	return true, nil
}

func validateContinue(input string) error {
	if len(input) == 0 {
		return ErrInputEmpty
	}
	lower := strings.ToLower(input)
	if lower == "y" || lower == "n" {
		return nil
	}
	return ErrInvalidChoice
}
