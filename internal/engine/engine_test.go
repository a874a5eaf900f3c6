// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine(tick time.Duration, smoothing time.Duration) *Engine {
	acc := NewAccumulator(testLocal, DefaultClassifier())
	return New(acc, Config{Tick: tick, Smoothing: smoothing})
}

func TestEngine_GlobalHistoryScenario(t *testing.T) {
	// Inbound deltas 10,20,5 with a length-3 buffer read back [10,20,5];
	// peak is 20 and the lifetime total 35.
	e := testEngine(time.Second, 3*time.Second)

	var snap Snapshot
	for _, d := range []uint64{10, 20, 5} {
		e.Record(testWAN, testLocal, int(d))
		snap = e.Tick()
	}

	assert.Equal(t, []uint64{10, 20, 5}, snap.RxHistory)
	assert.Equal(t, 20.0, snap.PeakRxRate)
	assert.Equal(t, uint64(35), snap.TotalRx)
	assert.Equal(t, uint64(0), snap.TotalTx)
}

func TestEngine_BoundedHistory(t *testing.T) {
	e := testEngine(time.Second, 4*time.Second)

	for i := 0; i < 50; i++ {
		snap := e.Tick()
		require.Len(t, snap.RxHistory, 4)
		require.Len(t, snap.TxHistory, 4)
	}
}

func TestEngine_HostPruning(t *testing.T) {
	// A host silent for a full window is removed exactly on the tick its
	// running sum first reaches zero.
	e := testEngine(time.Second, 4*time.Second)

	e.Record(testWAN, testPeer, 100)
	e.Tick()
	require.Equal(t, 1, e.TrackedHosts())

	// Three silent ticks: sum still 100, host stays.
	for i := 0; i < 3; i++ {
		e.Tick()
		assert.Equal(t, 1, e.TrackedHosts(), "tick %d", i+2)
	}

	// Fourth silent tick evicts the 100 sample; sum hits zero, host goes.
	snap := e.Tick()
	assert.Equal(t, 0, e.TrackedHosts())
	assert.Empty(t, snap.Talkers)
}

func TestEngine_PerHostScenario(t *testing.T) {
	// Tick 1s, window 4. Deltas 100,100,100,100,0,0 produce smoothed
	// rates 100,100,100,100,75,50.
	e := testEngine(time.Second, 4*time.Second)

	deltas := []uint64{100, 100, 100, 100, 0, 0}
	want := []float64{100, 100, 100, 100, 75, 50}

	for i, d := range deltas {
		if d > 0 {
			e.Record(testWAN, testPeer, int(d))
		}
		snap := e.Tick()
		require.Len(t, snap.Talkers, 1, "tick %d", i+1)
		assert.Equal(t, testPeer, snap.Talkers[0].Addr)
		assert.Equal(t, want[i], snap.Talkers[0].Rate, "tick %d", i+1)
	}
}

func TestEngine_RankingOrder(t *testing.T) {
	e := testEngine(time.Second, 4*time.Second)

	hosts := []struct {
		addr  Addr
		bytes int
	}{
		{Addr{192, 168, 1, 10}, 50},
		{Addr{192, 168, 1, 11}, 5000},
		{Addr{192, 168, 1, 12}, 500},
	}
	for _, h := range hosts {
		e.Record(testWAN, h.addr, h.bytes)
	}
	snap := e.Tick()

	require.Len(t, snap.Talkers, 3)
	for i := 1; i < len(snap.Talkers); i++ {
		assert.GreaterOrEqual(t, snap.Talkers[i-1].Rate, snap.Talkers[i].Rate)
	}
	assert.Equal(t, Addr{192, 168, 1, 11}, snap.Talkers[0].Addr)
	assert.Equal(t, Addr{192, 168, 1, 10}, snap.Talkers[2].Addr)
}

func TestEngine_LazyCreation(t *testing.T) {
	e := testEngine(time.Second, 4*time.Second)

	e.Tick()
	assert.Equal(t, 0, e.TrackedHosts(), "no traffic, no windows")

	e.Record(testWAN, testPeer, 1)
	e.Tick()
	assert.Equal(t, 1, e.TrackedHosts())
}

func TestEngine_SilentTickKeepsInvariants(t *testing.T) {
	e := testEngine(500*time.Millisecond, 2*time.Second)

	e.Record(testWAN, testPeer, 1000)
	first := e.Tick()
	require.Len(t, first.Talkers, 1)
	// 1000 bytes over one 0.5s sample = 2000 B/s.
	assert.Equal(t, 2000.0, first.Talkers[0].Rate)

	second := e.Tick()
	require.Len(t, second.Talkers, 1)
	// Same 1000 bytes now averaged over two samples.
	assert.Equal(t, 1000.0, second.Talkers[0].Rate)
}

func TestEngine_SnapshotIsACopy(t *testing.T) {
	e := testEngine(time.Second, 2*time.Second)

	e.Record(testWAN, testLocal, 10)
	snap := e.Tick()
	snap.RxHistory[0] = 999999

	next := e.Tick()
	assert.NotEqual(t, uint64(999999), next.RxHistory[0],
		"mutating a snapshot must not reach engine state")
}
