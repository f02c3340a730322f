// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	// Action TypeIDs
	DepositID  uint8 = 0
	WithdrawID uint8 = 1

	// Auth TypeIDs
	ED25519ID uint8 = 0

	// Address TypeIDs. ED25519ID doubles as the address type of key-controlled
	// accounts.
	PDAID uint8 = 0xff
)
