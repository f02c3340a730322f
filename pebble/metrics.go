// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsInterval = 10 * time.Second

type metrics struct {
	delayStart time.Time
	writeStall prometheus.Histogram

	getLatency prometheus.Histogram

	l0Compactions     prometheus.Counter
	otherCompactions  prometheus.Counter
	activeCompactions prometheus.Gauge

	tombstoneCount   prometheus.Gauge
	obsoleteWALCount prometheus.Gauge
	diskUsage        prometheus.Gauge
}

func newMetrics() (*prometheus.Registry, *metrics, error) {
	r := prometheus.NewRegistry()
	m := &metrics{
		writeStall: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pebble",
			Name:      "write_stall",
			Help:      "time spent waiting for disk write (ns)",
		}),
		getLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pebble",
			Name:      "read_latency",
			Help:      "time spent waiting for db get (ns)",
		}),
		l0Compactions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pebble",
			Name:      "l0_compactions",
			Help:      "number of l0 compactions",
		}),
		otherCompactions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pebble",
			Name:      "other_compactions",
			Help:      "number of l1+ compactions",
		}),
		activeCompactions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pebble",
			Name:      "active_compactions",
			Help:      "number of active compactions",
		}),
		tombstoneCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pebble",
			Name:      "tombstone_count",
			Help:      "approximate count of internal tombstones",
		}),
		obsoleteWALCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pebble",
			Name:      "obsolete_wal_count",
			Help:      "number of WAL files no longer needed by the db",
		}),
		diskUsage: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pebble",
			Name:      "disk_usage",
			Help:      "bytes used on disk by the db",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.writeStall),
		r.Register(m.getLatency),
		r.Register(m.l0Compactions),
		r.Register(m.otherCompactions),
		r.Register(m.activeCompactions),
		r.Register(m.tombstoneCount),
		r.Register(m.obsoleteWALCount),
		r.Register(m.diskUsage),
	)
	return r, m, errs.Err
}

func (d *Database) onCompactionBegin(info pebble.CompactionInfo) {
	d.metrics.activeCompactions.Inc()
	if len(info.Input) > 0 && info.Input[0].Level == 0 {
		d.metrics.l0Compactions.Inc()
	} else {
		d.metrics.otherCompactions.Inc()
	}
}

func (d *Database) onCompactionEnd(pebble.CompactionInfo) {
	d.metrics.activeCompactions.Dec()
}

func (d *Database) onWriteStallBegin(pebble.WriteStallBeginInfo) {
	d.metrics.delayStart = time.Now()
}

func (d *Database) onWriteStallEnd() {
	d.metrics.writeStall.Observe(float64(time.Since(d.metrics.delayStart)))
}

func (d *Database) collectMetrics() {
	t := time.NewTicker(metricsInterval)
	defer t.Stop()

	for {
		select {
		case <-t.C:
			metrics := d.db.Metrics()
			d.metrics.tombstoneCount.Set(float64(metrics.Keys.TombstoneCount))
			d.metrics.obsoleteWALCount.Set(float64(metrics.WAL.ObsoleteFiles))
			d.metrics.diskUsage.Set(float64(metrics.DiskSpaceUsage()))
		case <-d.closing:
			return
		}
	}
}
