// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/vaultvm/codec"
)

type Result struct {
	TxID    ids.ID `json:"txId"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Fee     uint64 `json:"fee"`

	Output codec.Typed `json:"output,omitempty"`

	// Err is the action error, kept for errors.Is matching by local callers.
	Err error `json:"-"`
}
