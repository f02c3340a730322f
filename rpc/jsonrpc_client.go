// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"strings"
	"time"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/vaultvm/chain"
	"github.com/ava-labs/vaultvm/codec"
	"github.com/ava-labs/vaultvm/consts"

	arpc "github.com/ava-labs/avalanchego/utils/rpc"
)

type JSONRPCClient struct {
	requester arpc.EndpointRequester

	networkID uint32
	chainID   ids.ID
	programID ids.ID
}

func NewJSONRPCClient(uri string) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	uri += JSONRPCEndpoint
	return &JSONRPCClient{requester: arpc.NewEndpointRequester(uri)}
}

func (cli *JSONRPCClient) send(ctx context.Context, method string, args any, reply any) error {
	return cli.requester.SendRequest(ctx, Name+"."+method, args, reply)
}

func (cli *JSONRPCClient) Ping(ctx context.Context) (bool, error) {
	resp := new(PingReply)
	err := cli.send(ctx, "ping", struct{}{}, resp)
	return resp.Success, err
}

// Network returns the network, chain and program ids. They never change, so
// the first answer is cached.
func (cli *JSONRPCClient) Network(ctx context.Context) (uint32, ids.ID, ids.ID, error) {
	if cli.chainID != ids.Empty {
		return cli.networkID, cli.chainID, cli.programID, nil
	}

	resp := new(NetworkReply)
	if err := cli.send(ctx, "network", struct{}{}, resp); err != nil {
		return 0, ids.Empty, ids.Empty, err
	}
	cli.networkID = resp.NetworkID
	cli.chainID = resp.ChainID
	cli.programID = resp.ProgramID
	return resp.NetworkID, resp.ChainID, resp.ProgramID, nil
}

func (cli *JSONRPCClient) Rules(ctx context.Context, timestamp int64) (*RulesReply, error) {
	resp := new(RulesReply)
	err := cli.send(ctx, "rules", &RulesArgs{Timestamp: timestamp}, resp)
	return resp, err
}

// Vault returns the vault address of [owner], its bump and its balance.
func (cli *JSONRPCClient) Vault(ctx context.Context, owner codec.Address) (string, uint8, uint64, error) {
	resp := new(VaultReply)
	err := cli.send(ctx, "vault", &VaultArgs{Owner: codec.MustAddressBech32(consts.HRP, owner)}, resp)
	return resp.Address, resp.Bump, resp.Balance, err
}

func (cli *JSONRPCClient) Balance(ctx context.Context, addr string) (uint64, error) {
	resp := new(BalanceReply)
	err := cli.send(ctx, "balance", &BalanceArgs{Address: addr}, resp)
	return resp.Amount, err
}

func (cli *JSONRPCClient) SubmitTx(ctx context.Context, tx *chain.Transaction) (*SubmitTxReply, error) {
	serialized, err := tx.Serialize()
	if err != nil {
		return nil, err
	}
	resp := new(SubmitTxReply)
	if err := cli.send(ctx, "submitTx", &SubmitTxArgs{Tx: serialized}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GenerateTransaction signs [action] with [factory] for the chain the client
// is connected to, paying the current base fee.
func (cli *JSONRPCClient) GenerateTransaction(
	ctx context.Context,
	action chain.Action,
	factory chain.AuthFactory,
) (*chain.Transaction, error) {
	_, chainID, _, err := cli.Network(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now().UnixMilli()
	rules, err := cli.Rules(ctx, now)
	if err != nil {
		return nil, err
	}
	base := &chain.Base{
		Timestamp: now,
		ChainID:   chainID,
		MaxFee:    rules.BaseFee,
	}
	return chain.NewTx(base, action).Sign(factory)
}
