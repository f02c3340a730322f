// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	// ErrVaultAlreadyExists is returned when depositing into a vault that
	// still holds a balance.
	ErrVaultAlreadyExists = errors.New("vault already exists")
	// ErrInvalidAmount is returned when a deposit does not exceed the minimum
	// balance or a withdrawal targets an empty vault.
	ErrInvalidAmount = errors.New("invalid amount")
)
