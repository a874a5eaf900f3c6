// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package engine

import (
	"sync"
)

// Drained is the point-in-time result of one DrainAndReset: all bytes
// recorded since the previous drain.
type Drained struct {
	PerHost map[Addr]uint64
	Rx      uint64
	Tx      uint64
}

// Accumulator collects bytes-since-last-drain, shared between the capture
// goroutine and the tick loop. Record and DrainAndReset are mutually
// exclusive; everything else in the engine is single-owner state.
type Accumulator struct {
	mu    sync.Mutex
	local Addr
	class *Classifier

	perHost map[Addr]uint64
	rx      uint64
	tx      uint64
}

// NewAccumulator creates an Accumulator. local is the capture interface's
// own address, used to split traffic into inbound and outbound. class
// decides which hosts are tracked individually.
func NewAccumulator(local Addr, class *Classifier) *Accumulator {
	if class == nil {
		class = DefaultClassifier()
	}
	return &Accumulator{
		local:   local,
		class:   class,
		perHost: make(map[Addr]uint64),
	}
}

// Record attributes one frame's bytes. Frames sourced from the local
// address count as outbound, everything else as inbound. Source and
// destination are classified independently, so a single frame can credit
// zero, one, or two host counters. Safe for concurrent use.
func (a *Accumulator) Record(src, dst Addr, n uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if src == a.local {
		a.tx += n
	} else {
		a.rx += n
	}

	if a.class.Local(src) {
		a.perHost[src] += n
	}
	if a.class.Local(dst) {
		a.perHost[dst] += n
	}
}

// DrainAndReset atomically hands back everything recorded since the last
// drain and resets the accumulator to empty. Bytes recorded before the
// drain begins land in this snapshot; bytes recorded after land in the
// next one; nothing is lost or double-counted.
func (a *Accumulator) DrainAndReset() Drained {
	a.mu.Lock()
	defer a.mu.Unlock()

	d := Drained{
		PerHost: a.perHost,
		Rx:      a.rx,
		Tx:      a.tx,
	}
	a.perHost = make(map[Addr]uint64)
	a.rx = 0
	a.tx = 0
	return d
}
