// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"grimm.is/wiretop/internal/engine"
)

// MockBackend implements Backend for testing purposes
type MockBackend struct {
	Snapshot  engine.Snapshot
	TickCount int
}

func (m *MockBackend) Tick() engine.Snapshot {
	m.TickCount++
	return m.Snapshot
}

func testSnapshot() engine.Snapshot {
	return engine.Snapshot{
		RxHistory:  []uint64{0, 10, 500, 2048},
		TxHistory:  []uint64{0, 5, 100, 300},
		LastRx:     2048,
		LastTx:     300,
		RxRate:     4096,
		TxRate:     600,
		PeakRxRate: 8192,
		PeakTxRate: 1200,
		TotalRx:    1 << 20,
		TotalTx:    1 << 18,
		Talkers: []engine.Talker{
			{Addr: engine.Addr{192, 168, 1, 50}, Rate: 2_000_000},
			{Addr: engine.Addr{192, 168, 1, 7}, Rate: 50_000},
			{Addr: engine.Addr{10, 0, 0, 3}, Rate: 100},
		},
	}
}
