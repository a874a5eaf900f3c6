// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package metrics exposes the engine's per-tick snapshot as Prometheus
// metrics over an optional HTTP listener.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"grimm.is/wiretop/internal/engine"
	"grimm.is/wiretop/internal/logging"
)

// Publisher updates Prometheus collectors from each tick's snapshot.
type Publisher struct {
	registry *prometheus.Registry

	rxRate  prometheus.Gauge
	txRate  prometheus.Gauge
	peakRx  prometheus.Gauge
	peakTx  prometheus.Gauge
	tracked prometheus.Gauge

	rxTotal prometheus.Counter
	txTotal prometheus.Counter
}

// NewPublisher creates a Publisher with its own registry.
func NewPublisher() *Publisher {
	p := &Publisher{
		registry: prometheus.NewRegistry(),
		rxRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wiretop_rx_bytes_per_second",
			Help: "Inbound rate over the last tick.",
		}),
		txRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wiretop_tx_bytes_per_second",
			Help: "Outbound rate over the last tick.",
		}),
		peakRx: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wiretop_peak_rx_bytes_per_second",
			Help: "Highest inbound per-tick rate seen.",
		}),
		peakTx: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wiretop_peak_tx_bytes_per_second",
			Help: "Highest outbound per-tick rate seen.",
		}),
		tracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wiretop_tracked_hosts",
			Help: "Hosts currently holding a rate window.",
		}),
		rxTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wiretop_rx_bytes_total",
			Help: "Lifetime inbound bytes.",
		}),
		txTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wiretop_tx_bytes_total",
			Help: "Lifetime outbound bytes.",
		}),
	}
	p.registry.MustRegister(p.rxRate, p.txRate, p.peakRx, p.peakTx, p.tracked, p.rxTotal, p.txTotal)
	return p
}

// Publish records one tick's snapshot.
func (p *Publisher) Publish(s engine.Snapshot) {
	p.rxRate.Set(s.RxRate)
	p.txRate.Set(s.TxRate)
	p.peakRx.Set(s.PeakRxRate)
	p.peakTx.Set(s.PeakTxRate)
	p.tracked.Set(float64(len(s.Talkers)))
	p.rxTotal.Add(float64(s.LastRx))
	p.txTotal.Add(float64(s.LastTx))
}

// Handler returns the scrape handler for the publisher's registry.
func (p *Publisher) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (p *Publisher) Registry() *prometheus.Registry {
	return p.registry
}

// Serve starts the scrape listener in the background. Listener failures
// are logged, not fatal: the monitor keeps running without metrics.
func (p *Publisher) Serve(listen string, logger *logging.Logger) {
	if logger == nil {
		logger = logging.New(logging.DefaultConfig())
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", p.Handler())

	srv := &http.Server{
		Addr:              listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("Metrics listener started", "listen", listen)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Metrics listener failed", "error", err)
		}
	}()
}
