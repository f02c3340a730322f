// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/vaultvm/actions"
	"github.com/ava-labs/vaultvm/chain"
	"github.com/ava-labs/vaultvm/codec"
	"github.com/ava-labs/vaultvm/consts"
)

type JSONRPCServer struct {
	c Controller
}

func NewJSONRPCServer(c Controller) *JSONRPCServer {
	return &JSONRPCServer{c}
}

type PingReply struct {
	Success bool `json:"success"`
}

func (*JSONRPCServer) Ping(_ *http.Request, _ *struct{}, reply *PingReply) error {
	reply.Success = true
	return nil
}

type NetworkReply struct {
	NetworkID uint32 `json:"networkId"`
	ChainID   ids.ID `json:"chainId"`
	ProgramID ids.ID `json:"programId"`
}

func (j *JSONRPCServer) Network(_ *http.Request, _ *struct{}, reply *NetworkReply) error {
	reply.NetworkID = j.c.NetworkID()
	reply.ChainID = j.c.ChainID()
	reply.ProgramID = consts.ProgramID()
	return nil
}

type RulesArgs struct {
	// Timestamp (ms) to read rules at. Zero means now.
	Timestamp int64 `json:"timestamp"`
}

type RulesReply struct {
	Timestamp      int64  `json:"timestamp"`
	MinimumBalance uint64 `json:"minimumBalance"`
	BaseFee        uint64 `json:"baseFee"`
}

func (j *JSONRPCServer) Rules(req *http.Request, args *RulesArgs, reply *RulesReply) error {
	_, span := j.c.Tracer().Start(req.Context(), "Server.Rules")
	defer span.End()

	t := args.Timestamp
	if t == 0 {
		t = time.Now().UnixMilli()
	}
	r := j.c.Rules(t)
	minimum, err := r.GetMinimumBalance(0)
	if err != nil {
		return err
	}
	reply.Timestamp = t
	reply.MinimumBalance = minimum
	reply.BaseFee = r.GetBaseFee()
	return nil
}

type VaultArgs struct {
	Owner string `json:"owner"`
}

type VaultReply struct {
	Address string `json:"address"`
	Bump    uint8  `json:"bump"`
	Balance uint64 `json:"balance"`
}

func (j *JSONRPCServer) Vault(req *http.Request, args *VaultArgs, reply *VaultReply) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "Server.Vault")
	defer span.End()

	owner, err := codec.ParseAddressBech32(consts.HRP, args.Owner)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	vault, bump, err := j.c.Vault(owner)
	if err != nil {
		return err
	}
	balance, err := j.c.GetBalance(ctx, vault)
	if err != nil {
		return err
	}
	reply.Address = codec.MustAddressBech32(consts.HRP, vault)
	reply.Bump = bump
	reply.Balance = balance
	return nil
}

type BalanceArgs struct {
	Address string `json:"address"`
}

type BalanceReply struct {
	Amount uint64 `json:"amount"`
}

func (j *JSONRPCServer) Balance(req *http.Request, args *BalanceArgs, reply *BalanceReply) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "Server.Balance")
	defer span.End()

	addr, err := codec.ParseAddressBech32(consts.HRP, args.Address)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	balance, err := j.c.GetBalance(ctx, addr)
	if err != nil {
		return err
	}
	reply.Amount = balance
	return nil
}

type SubmitTxArgs struct {
	Tx *chain.SerializedTx `json:"tx"`
}

// SubmitTxReply reports the outcome of an executed transaction. At most one
// of the outputs is set.
type SubmitTxReply struct {
	TxID    ids.ID `json:"txId"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Fee     uint64 `json:"fee"`

	Deposit  *actions.DepositResult  `json:"deposit,omitempty"`
	Withdraw *actions.WithdrawResult `json:"withdraw,omitempty"`
}

func (j *JSONRPCServer) SubmitTx(req *http.Request, args *SubmitTxArgs, reply *SubmitTxReply) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "Server.SubmitTx")
	defer span.End()

	if args.Tx == nil {
		return ErrMissingTx
	}
	tx, err := j.c.Parser().ParseTx(args.Tx)
	if err != nil {
		return err
	}
	result, err := j.c.Submit(ctx, tx)
	if err != nil {
		return err
	}
	reply.TxID = result.TxID
	reply.Success = result.Success
	reply.Error = result.Error
	reply.Fee = result.Fee
	switch output := result.Output.(type) {
	case nil:
	case *actions.DepositResult:
		reply.Deposit = output
	case *actions.WithdrawResult:
		reply.Withdraw = output
	default:
		return fmt.Errorf("%w: %T", ErrUnknownOutput, output)
	}
	return nil
}
