// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	ErrMissingSigner       = errors.New("missing signer for source account")
	ErrInvalidChainID      = errors.New("invalid chain id")
	ErrInsufficientMaxFee  = errors.New("max fee below base fee")
	ErrUnknownAction       = errors.New("unknown action")
	ErrUnknownAuth         = errors.New("unknown auth")
	ErrMissingAction       = errors.New("missing action")
	ErrMissingAuth         = errors.New("missing auth")
	ErrCannotPayFee        = errors.New("actor cannot pay fee")
	ErrDuplicateTx         = errors.New("duplicate transaction")
	ErrTimestampOutOfRange = errors.New("timestamp out of range")
)
