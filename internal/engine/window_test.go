// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package engine

import (
	"math/rand"
	"testing"
)

func TestWindow_SumInvariant(t *testing.T) {
	w := newWindow(8)
	rng := rand.New(rand.NewSource(1))

	held := []uint64{}
	for i := 0; i < 100; i++ {
		delta := uint64(rng.Intn(10000))
		w.update(delta, 0.5)

		held = append(held, delta)
		if len(held) > 8 {
			held = held[1:]
		}
		var want uint64
		for _, v := range held {
			want += v
		}
		if w.sum != want {
			t.Fatalf("after %d updates: sum=%d, want %d", i+1, w.sum, want)
		}
		if w.count != len(held) {
			t.Fatalf("after %d updates: count=%d, want %d", i+1, w.count, len(held))
		}
	}
}

func TestWindow_Convergence(t *testing.T) {
	// Constant delta d for at least W ticks converges to exactly d/tickSeconds.
	w := newWindow(4)
	var rate float64
	for i := 0; i < 10; i++ {
		rate = w.update(100, 1.0)
	}
	if rate != 100.0 {
		t.Errorf("expected converged rate 100.0, got %f", rate)
	}
}

func TestWindow_ShrinkingDivisor(t *testing.T) {
	// Fewer than W samples average over the samples present, not over W.
	w := newWindow(4)
	rate := w.update(100, 1.0)
	if rate != 100.0 {
		t.Errorf("one sample: expected 100.0, got %f", rate)
	}
	rate = w.update(50, 1.0)
	if rate != 75.0 {
		t.Errorf("two samples: expected 75.0, got %f", rate)
	}
}

func TestWindow_Eviction(t *testing.T) {
	// Strict FIFO: the oldest sample leaves first.
	w := newWindow(2)
	w.update(10, 1.0)
	w.update(20, 1.0)
	rate := w.update(30, 1.0) // evicts 10
	if w.sum != 50 {
		t.Errorf("expected sum 50 after eviction, got %d", w.sum)
	}
	if rate != 25.0 {
		t.Errorf("expected rate 25.0, got %f", rate)
	}
}

func TestWindow_TickScenario(t *testing.T) {
	// Tick 1s, window 4. Deltas 100,100,100,100,0,0 give rates
	// 100,100,100,100,75,50 and the sum drains to zero two ticks later.
	w := newWindow(4)
	deltas := []uint64{100, 100, 100, 100, 0, 0}
	want := []float64{100, 100, 100, 100, 75, 50}

	for i, d := range deltas {
		got := w.update(d, 1.0)
		if got != want[i] {
			t.Errorf("tick %d: rate=%f, want %f", i+1, got, want[i])
		}
	}

	w.update(0, 1.0)
	w.update(0, 1.0)
	if w.sum != 0 {
		t.Errorf("expected empty window sum 0, got %d", w.sum)
	}
	if w.update(0, 1.0) != 0 {
		t.Error("fully aged-out window should report rate 0")
	}
}

func TestWindow_ZeroCapacityClamped(t *testing.T) {
	w := newWindow(0)
	if len(w.samples) != 1 {
		t.Errorf("capacity should clamp to 1, got %d", len(w.samples))
	}
}
