// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import "errors"

var (
	ErrMissingTx      = errors.New("missing tx")
	ErrUnknownOutput  = errors.New("unknown output")
	ErrInvalidAddress = errors.New("invalid address")
)
