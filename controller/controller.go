// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package controller

import (
	"context"
	"fmt"
	"os"

	"github.com/ava-labs/avalanchego/cache"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/vaultvm/chain"
	"github.com/ava-labs/vaultvm/codec"
	"github.com/ava-labs/vaultvm/config"
	"github.com/ava-labs/vaultvm/consts"
	"github.com/ava-labs/vaultvm/genesis"
	"github.com/ava-labs/vaultvm/pebble"
	"github.com/ava-labs/vaultvm/registry"
	"github.com/ava-labs/vaultvm/rpc"
	"github.com/ava-labs/vaultvm/state"
	"github.com/ava-labs/vaultvm/storage"
)

var _ rpc.Controller = (*Controller)(nil)

const vaultCacheSize = 4_096

type vaultEntry struct {
	address codec.Address
	bump    uint8
}

// Controller is a single ledger node: a pebble-backed ledger, the rules
// loaded from genesis and the processor executing submitted transactions.
type Controller struct {
	log    logging.Logger
	tracer trace.Tracer

	genesis *genesis.Genesis
	rules   chain.RuleFactory

	db        *pebble.Database
	processor *chain.Processor
	gatherer  prometheus.Gatherers

	// owner -> derived vault
	vaults *cache.LRU[codec.Address, vaultEntry]
}

// New opens the ledger in [cfg.DataDir] and applies the genesis at
// [cfg.Genesis] if the ledger is empty.
func New(
	ctx context.Context,
	log logging.Logger,
	tracer trace.Tracer,
	cfg *config.Config,
) (*Controller, error) {
	genesisBytes, err := os.ReadFile(cfg.Genesis)
	if err != nil {
		return nil, fmt.Errorf("unable to read genesis: %w", err)
	}
	g, rules, err := genesis.Load(genesisBytes)
	if err != nil {
		return nil, fmt.Errorf("unable to parse genesis: %w", err)
	}
	log.Info("loaded genesis",
		zap.Uint32("networkID", g.Rules.NetworkID),
		zap.Stringer("chainID", g.Rules.ChainID),
		zap.Int("allocations", len(g.CustomAllocation)),
		zap.Int("upgrades", len(g.Upgrades)),
	)

	db, dbRegistry, err := pebble.New(cfg.DatabasePath(), cfg.Pebble)
	if err != nil {
		return nil, err
	}
	c := &Controller{
		log:     log,
		tracer:  tracer,
		genesis: g,
		rules:   rules,
		db:      db,
		vaults:  &cache.LRU[codec.Address, vaultEntry]{Size: vaultCacheSize},
	}
	if err := c.init(ctx, dbRegistry); err != nil {
		_ = db.Close()
		return nil, err
	}
	return c, nil
}

func (c *Controller) init(ctx context.Context, dbRegistry *prometheus.Registry) error {
	processorRegistry := prometheus.NewRegistry()
	processor, err := chain.NewProcessor(c.log, c.tracer, processorRegistry, c.rules, c.db)
	if err != nil {
		return err
	}
	c.processor = processor
	c.gatherer = prometheus.Gatherers{processorRegistry, dbRegistry}

	supply, ok, err := storage.GetSupply(ctx, c.db)
	if err != nil {
		return err
	}
	if ok {
		c.log.Info("ledger already initialized",
			zap.Uint64("supply", supply),
		)
		return nil
	}
	mu := state.NewSimpleMutable(c.db)
	supply, err = c.genesis.InitializeState(ctx, mu)
	if err != nil {
		return err
	}
	if err := storage.SetSupply(ctx, mu, supply); err != nil {
		return err
	}
	if err := mu.Commit(ctx); err != nil {
		return err
	}
	c.log.Info("applied genesis",
		zap.Uint64("supply", supply),
	)
	return nil
}

func (c *Controller) Tracer() trace.Tracer {
	return c.tracer
}

// Gatherer collects the processor and database metrics.
func (c *Controller) Gatherer() prometheus.Gatherer {
	return c.gatherer
}

func (c *Controller) Genesis() *genesis.Genesis {
	return c.genesis
}

func (c *Controller) NetworkID() uint32 {
	return c.genesis.Rules.NetworkID
}

func (c *Controller) ChainID() ids.ID {
	return c.genesis.Rules.ChainID
}

func (c *Controller) Rules(t int64) chain.Rules {
	return c.rules.GetRules(t)
}

func (*Controller) Parser() *chain.Parser {
	return registry.Parser
}

// Vault returns the vault address of [owner] and its bump.
func (c *Controller) Vault(owner codec.Address) (codec.Address, uint8, error) {
	if entry, ok := c.vaults.Get(owner); ok {
		return entry.address, entry.bump, nil
	}
	vault, bump, err := storage.VaultAddress(consts.ProgramID(), owner)
	if err != nil {
		return codec.EmptyAddress, 0, err
	}
	c.vaults.Put(owner, vaultEntry{address: vault, bump: bump})
	return vault, bump, nil
}

func (c *Controller) GetBalance(ctx context.Context, addr codec.Address) (uint64, error) {
	return storage.GetBalance(ctx, c.processor.State(), addr)
}

// Submit executes [tx] against the local ledger.
func (c *Controller) Submit(ctx context.Context, tx *chain.Transaction) (*chain.Result, error) {
	return c.processor.Execute(ctx, tx)
}

func (c *Controller) Shutdown(context.Context) error {
	return c.db.Close()
}
