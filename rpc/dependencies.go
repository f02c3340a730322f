// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/trace"

	"github.com/ava-labs/vaultvm/chain"
	"github.com/ava-labs/vaultvm/codec"
)

type Controller interface {
	Tracer() trace.Tracer
	NetworkID() uint32
	ChainID() ids.ID
	Rules(t int64) chain.Rules
	Parser() *chain.Parser
	Vault(owner codec.Address) (codec.Address, uint8, error)
	GetBalance(context.Context, codec.Address) (uint64, error)
	Submit(context.Context, *chain.Transaction) (*chain.Result, error)
}
