// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package engine

// window is a bounded FIFO of per-tick byte deltas with a running sum,
// giving a true moving average over the trailing samples. Invariant:
// sum always equals the sum of the held samples, and len never exceeds
// the capacity the ring was created with.
type window struct {
	samples []uint64 // ring storage, capacity fixed at creation
	start   int      // index of the oldest sample
	count   int
	sum     uint64
}

func newWindow(capacity int) *window {
	if capacity < 1 {
		capacity = 1
	}
	return &window{samples: make([]uint64, capacity)}
}

// update appends delta as the newest sample, evicting the oldest sample
// (and subtracting it from the running sum in the same step) once the
// window is full. It returns the smoothed rate in bytes per second,
// averaged over however many samples are present.
func (w *window) update(delta uint64, tickSeconds float64) float64 {
	if w.count == len(w.samples) {
		w.sum -= w.samples[w.start]
		w.samples[w.start] = delta
		w.start = (w.start + 1) % len(w.samples)
	} else {
		w.samples[(w.start+w.count)%len(w.samples)] = delta
		w.count++
	}
	w.sum += delta

	seconds := float64(w.count) * tickSeconds
	if seconds == 0 {
		return 0
	}
	return float64(w.sum) / seconds
}
