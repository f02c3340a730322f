// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "chain"

type metrics struct {
	txsSubmitted prometheus.Counter
	txsRejected  prometheus.Counter
	txsSucceeded prometheus.Counter
	txsFailed    prometheus.Counter
	feesBurned   prometheus.Counter
	executeTime  prometheus.Histogram
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		txsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "txs_submitted",
			Help:      "number of transactions submitted for execution",
		}),
		txsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "txs_rejected",
			Help:      "number of transactions rejected before execution",
		}),
		txsSucceeded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "txs_succeeded",
			Help:      "number of transactions whose action succeeded",
		}),
		txsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "txs_failed",
			Help:      "number of executed transactions whose action failed",
		}),
		feesBurned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fees_burned",
			Help:      "total fees charged to actors",
		}),
		executeTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "execute_time",
			Help:      "time spent executing a transaction (ns)",
			Buckets:   prometheus.ExponentialBuckets(1_000, 4, 10),
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.txsSubmitted),
		r.Register(m.txsRejected),
		r.Register(m.txsSucceeded),
		r.Register(m.txsFailed),
		r.Register(m.feesBurned),
		r.Register(m.executeTime),
	)
	return m, errs.Err
}
