// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package engine

import (
	"sync"
	"testing"
)

var (
	testLocal = Addr{192, 168, 1, 2}
	testPeer  = Addr{192, 168, 1, 50}
	testWAN   = Addr{1, 1, 1, 1}
)

func TestAccumulator_Directions(t *testing.T) {
	acc := NewAccumulator(testLocal, DefaultClassifier())

	acc.Record(testLocal, testWAN, 100) // outbound
	acc.Record(testWAN, testLocal, 250) // inbound

	d := acc.DrainAndReset()
	if d.Tx != 100 {
		t.Errorf("tx=%d, want 100", d.Tx)
	}
	if d.Rx != 250 {
		t.Errorf("rx=%d, want 250", d.Rx)
	}
}

func TestAccumulator_HostClassification(t *testing.T) {
	acc := NewAccumulator(testLocal, DefaultClassifier())

	// Local <-> local credits both hosts; local <-> WAN credits one.
	acc.Record(testPeer, testLocal, 40)
	acc.Record(testWAN, testPeer, 60)
	acc.Record(testWAN, Addr{8, 8, 8, 8}, 30) // no local host involved

	d := acc.DrainAndReset()
	if got := d.PerHost[testPeer]; got != 100 {
		t.Errorf("peer counter=%d, want 100", got)
	}
	if got := d.PerHost[testLocal]; got != 40 {
		t.Errorf("local counter=%d, want 40", got)
	}
	if _, ok := d.PerHost[testWAN]; ok {
		t.Error("WAN host should not be tracked")
	}
}

func TestAccumulator_DrainResets(t *testing.T) {
	acc := NewAccumulator(testLocal, DefaultClassifier())
	acc.Record(testWAN, testPeer, 500)

	first := acc.DrainAndReset()
	if first.Rx != 500 {
		t.Errorf("first drain rx=%d, want 500", first.Rx)
	}

	second := acc.DrainAndReset()
	if second.Rx != 0 || second.Tx != 0 || len(second.PerHost) != 0 {
		t.Errorf("second drain should be empty, got %+v", second)
	}
}

func TestAccumulator_ExactlyOnce(t *testing.T) {
	// N concurrent 1-byte records followed by one drain yield exactly N.
	acc := NewAccumulator(testLocal, DefaultClassifier())

	const workers = 32
	const perWorker = 1000

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				acc.Record(testWAN, testPeer, 1)
			}
		}()
	}
	wg.Wait()

	d := acc.DrainAndReset()
	if d.Rx != workers*perWorker {
		t.Errorf("rx=%d, want %d", d.Rx, workers*perWorker)
	}
	if got := d.PerHost[testPeer]; got != workers*perWorker {
		t.Errorf("peer counter=%d, want %d", got, workers*perWorker)
	}
}

func TestAccumulator_ConcurrentDrain(t *testing.T) {
	// Bytes recorded while draining land in exactly one drain.
	acc := NewAccumulator(testLocal, DefaultClassifier())

	const total = 5000
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < total; i++ {
			acc.Record(testWAN, testPeer, 1)
		}
	}()

	var drained uint64
	for {
		d := acc.DrainAndReset()
		drained += d.Rx
		select {
		case <-done:
			final := acc.DrainAndReset()
			drained += final.Rx
			if drained != total {
				t.Errorf("drained %d bytes across drains, want %d", drained, total)
			}
			return
		default:
		}
	}
}
