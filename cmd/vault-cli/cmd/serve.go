// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"net"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/vaultvm/config"
	"github.com/ava-labs/vaultvm/consts"
	"github.com/ava-labs/vaultvm/controller"
	"github.com/ava-labs/vaultvm/rpc"
	"github.com/ava-labs/vaultvm/server"
	"github.com/ava-labs/vaultvm/trace"
	"github.com/ava-labs/vaultvm/utils"
)

const metricsEndpoint = "/ext/metrics"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs a ledger node serving JSON-RPC and metrics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		log, err := config.NewLogger(consts.Name, cfg.Log)
		if err != nil {
			return err
		}
		defer log.Stop()

		tracer, err := trace.New(cfg.Trace)
		if err != nil {
			return err
		}
		defer func() {
			if err := tracer.Close(); err != nil {
				log.Warn("failed to close tracer", zap.Error(err))
			}
		}()

		ctx := cmd.Context()
		c, err := controller.New(ctx, log, tracer, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := c.Shutdown(ctx); err != nil {
				log.Error("failed to close ledger", zap.Error(err))
			}
		}()

		handler, err := server.NewJSONRPCHandler(rpc.Name, rpc.NewJSONRPCServer(c))
		if err != nil {
			return err
		}
		s := server.New(log, cfg.HTTP)
		s.AddRoute(rpc.JSONRPCEndpoint, handler)
		s.AddRoute(metricsEndpoint, promhttp.HandlerFor(
			prometheus.Gatherers{c.Gatherer(), prometheus.DefaultGatherer},
			promhttp.HandlerOpts{},
		))

		listener, err := net.Listen("tcp", cfg.HTTP.Address)
		if err != nil {
			return err
		}
		utils.Outf("{{green}}serving{{/}} %s {{yellow}}chainID:{{/}} %s\n", listener.Addr(), c.ChainID())

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return s.Dispatch(listener)
		})
		g.Go(func() error {
			<-gctx.Done()
			log.Info("shutting down")
			return s.Shutdown()
		})
		return g.Wait()
	},
}
