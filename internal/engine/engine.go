// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package engine

import (
	"sort"
	"time"
)

// Config sets the engine's timing constants. The per-host window size and
// the global history length are both Smoothing / Tick.
type Config struct {
	Tick      time.Duration
	Smoothing time.Duration
}

// DefaultConfig matches the classic 60s-over-500ms setup (120 samples).
func DefaultConfig() Config {
	return Config{
		Tick:      500 * time.Millisecond,
		Smoothing: 60 * time.Second,
	}
}

// WindowSize returns the number of per-tick samples covering the smoothing duration.
func (c Config) WindowSize() int {
	n := int(c.Smoothing / c.Tick)
	if n < 1 {
		n = 1
	}
	return n
}

// Talker is one ranked entry: a tracked host and its smoothed rate in bytes/sec.
type Talker struct {
	Addr Addr
	Rate float64
}

// Snapshot is what one tick hands to the rendering layer. History slices
// are fixed-length copies, oldest first; rates are bytes per second.
type Snapshot struct {
	RxHistory []uint64 // per-tick inbound byte totals
	TxHistory []uint64 // per-tick outbound byte totals

	LastRx uint64 // bytes drained this tick, inbound
	LastTx uint64 // bytes drained this tick, outbound

	RxRate     float64
	TxRate     float64
	PeakRxRate float64
	PeakTxRate float64

	TotalRx uint64
	TotalTx uint64

	Talkers []Talker
}

// Engine owns all per-tick state: the shared accumulator, the per-host
// window registry, the global history buffers, and the lifetime and peak
// counters. Everything except the accumulator is touched only by the
// goroutine calling Tick.
type Engine struct {
	acc *Accumulator
	cfg Config

	tickSeconds float64
	windowSize  int

	hosts   map[Addr]*window
	rxHist  []uint64
	txHist  []uint64
	totalRx uint64
	totalTx uint64
	peakRx  uint64 // peak per-tick bytes
	peakTx  uint64
}

// New creates an Engine draining acc on every Tick. History buffers start
// zero-filled at their full fixed length so charts are never empty.
func New(acc *Accumulator, cfg Config) *Engine {
	if cfg.Tick <= 0 {
		cfg = DefaultConfig()
	}
	n := cfg.WindowSize()
	return &Engine{
		acc:         acc,
		cfg:         cfg,
		tickSeconds: cfg.Tick.Seconds(),
		windowSize:  n,
		hosts:       make(map[Addr]*window),
		rxHist:      make([]uint64, n),
		txHist:      make([]uint64, n),
	}
}

// Record is the producer-side entry point, called once per captured frame.
func (e *Engine) Record(src, dst Addr, length int) {
	if length <= 0 {
		return
	}
	e.acc.Record(src, dst, uint64(length))
}

// Tick executes one synchronous update pass: drain the accumulator, roll
// the global history buffers, age every tracked host's window (pruning
// hosts whose running sum reaches zero), and rebuild the ranking.
func (e *Engine) Tick() Snapshot {
	drained := e.acc.DrainAndReset()

	// Global history: drop oldest, push newest. Length is invariant.
	shiftPush(e.rxHist, drained.Rx)
	shiftPush(e.txHist, drained.Tx)

	e.totalRx += drained.Rx
	e.totalTx += drained.Tx
	if drained.Rx > e.peakRx {
		e.peakRx = drained.Rx
	}
	if drained.Tx > e.peakTx {
		e.peakTx = drained.Tx
	}

	// Every tracked host gets an update this tick, with a zero delta if it
	// was silent, so old traffic ages out of its window. Hosts appearing
	// in the drain for the first time are created lazily.
	talkers := make([]Talker, 0, len(e.hosts))
	for host, w := range e.hosts {
		rate := w.update(drained.PerHost[host], e.tickSeconds)
		delete(drained.PerHost, host)
		if w.sum == 0 {
			delete(e.hosts, host)
			continue
		}
		talkers = append(talkers, Talker{Addr: host, Rate: rate})
	}
	for host, delta := range drained.PerHost {
		if delta == 0 {
			continue
		}
		w := newWindow(e.windowSize)
		rate := w.update(delta, e.tickSeconds)
		e.hosts[host] = w
		talkers = append(talkers, Talker{Addr: host, Rate: rate})
	}

	sort.Slice(talkers, func(i, j int) bool {
		return talkers[i].Rate > talkers[j].Rate
	})

	return Snapshot{
		RxHistory:  append([]uint64(nil), e.rxHist...),
		TxHistory:  append([]uint64(nil), e.txHist...),
		LastRx:     drained.Rx,
		LastTx:     drained.Tx,
		RxRate:     float64(drained.Rx) / e.tickSeconds,
		TxRate:     float64(drained.Tx) / e.tickSeconds,
		PeakRxRate: float64(e.peakRx) / e.tickSeconds,
		PeakTxRate: float64(e.peakTx) / e.tickSeconds,
		TotalRx:    e.totalRx,
		TotalTx:    e.totalTx,
		Talkers:    talkers,
	}
}

// TrackedHosts returns the number of hosts currently holding a window.
func (e *Engine) TrackedHosts() int {
	return len(e.hosts)
}

func shiftPush(buf []uint64, v uint64) {
	copy(buf, buf[1:])
	buf[len(buf)-1] = v
}
