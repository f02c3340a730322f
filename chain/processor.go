// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/ava-labs/vaultvm/state"
	"github.com/ava-labs/vaultvm/storage"

	oteltrace "go.opentelemetry.io/otel/trace"
)

// Processor executes transactions against a ledger. It plays the part of
// the host runtime: it verifies auth, charges fees and gives every action
// all-or-nothing semantics. Executions are serialised.
type Processor struct {
	log     logging.Logger
	tracer  trace.Tracer
	metrics *metrics
	rules   RuleFactory
	now     func() int64

	l  sync.Mutex
	db state.Mutable
}

type Option func(*Processor)

// WithClock replaces the ledger clock (unix ms) used to select rules and to
// bound transaction timestamps.
func WithClock(now func() int64) Option {
	return func(p *Processor) {
		p.now = now
	}
}

func NewProcessor(
	log logging.Logger,
	tracer trace.Tracer,
	registerer prometheus.Registerer,
	rules RuleFactory,
	db state.Mutable,
	opts ...Option,
) (*Processor, error) {
	m, err := newMetrics(registerer)
	if err != nil {
		return nil, err
	}
	p := &Processor{
		log:     log,
		tracer:  tracer,
		metrics: m,
		rules:   rules,
		now: func() int64 {
			return time.Now().UnixMilli()
		},
		db: db,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Rules returns the rules in force at [t].
func (p *Processor) Rules(t int64) Rules {
	return p.rules.GetRules(t)
}

// State returns the committed ledger state.
func (p *Processor) State() state.Immutable {
	return p.db
}

// Execute verifies and executes [tx] under the rules in force on the ledger
// clock. An error is returned only when the transaction is rejected before
// execution, in which case no state changes. Once executed, the fee is
// charged whether or not the action succeeds, the transaction id is recorded
// so it can never execute again, and the action's changes are committed only
// if it succeeds.
func (p *Processor) Execute(ctx context.Context, tx *Transaction) (*Result, error) {
	start := time.Now()
	defer func() {
		p.metrics.executeTime.Observe(float64(time.Since(start)))
	}()
	p.metrics.txsSubmitted.Inc()

	ctx, span := p.tracer.Start(
		ctx, "Processor.Execute",
		oteltrace.WithAttributes(
			attribute.Stringer("txID", tx.ID()),
			attribute.Int64("timestamp", tx.Base.Timestamp),
		),
	)
	defer span.End()

	now := p.now()
	r := p.rules.GetRules(now)
	if err := tx.Base.Verify(r, now); err != nil {
		p.metrics.txsRejected.Inc()
		return nil, err
	}
	if err := tx.Verify(ctx); err != nil {
		p.metrics.txsRejected.Inc()
		return nil, err
	}

	p.l.Lock()
	defer p.l.Unlock()

	executed, err := storage.HasTx(ctx, p.db, tx.ID())
	if err != nil {
		return nil, err
	}
	if executed {
		p.metrics.txsRejected.Inc()
		return nil, fmt.Errorf("%w: %s", ErrDuplicateTx, tx.ID())
	}

	actor := tx.Auth.Actor()
	fee := r.GetBaseFee()
	feeState := state.NewSimpleMutable(p.db)
	if _, err := storage.SubBalance(ctx, feeState, actor, fee); err != nil {
		p.metrics.txsRejected.Inc()
		return nil, fmt.Errorf("%w: %w", ErrCannotPayFee, err)
	}
	if err := storage.StoreTx(ctx, feeState, tx.ID(), tx.Base.Timestamp); err != nil {
		return nil, err
	}

	actionState := state.NewSimpleMutable(feeState)
	output, err := tx.Action.Execute(ctx, r, actionState, NewSystemTransferer(actor), now, actor, tx.ID())
	result := &Result{
		TxID:    tx.ID(),
		Success: err == nil,
		Fee:     fee,
		Output:  output,
		Err:     err,
	}
	if err != nil {
		result.Error = err.Error()
		result.Output = nil
		p.log.Debug("action failed",
			zap.Stringer("txID", tx.ID()),
			zap.Stringer("actor", actor),
			zap.Uint8("action", tx.Action.GetTypeID()),
			zap.Error(err),
		)
	} else if err := actionState.Commit(ctx); err != nil {
		return nil, err
	}
	if err := feeState.Commit(ctx); err != nil {
		// The ledger may be corrupt if this fails halfway on a store that
		// cannot batch.
		p.log.Error("failed to commit transaction",
			zap.Stringer("txID", tx.ID()),
			zap.Error(err),
		)
		return nil, err
	}

	p.metrics.feesBurned.Add(float64(fee))
	if result.Success {
		p.metrics.txsSucceeded.Inc()
	} else {
		p.metrics.txsFailed.Inc()
	}
	span.SetAttributes(attribute.Bool("success", result.Success))
	p.log.Info("executed transaction",
		zap.Stringer("txID", tx.ID()),
		zap.Stringer("actor", actor),
		zap.Bool("success", result.Success),
		zap.Uint64("fee", fee),
	)
	return result, nil
}
