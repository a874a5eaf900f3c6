// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package netutil

import (
	"fmt"
)

// FormatBits renders a bytes-per-second rate as a bits-per-second figure,
// binary-scaled (Kb/s, Mb/s, Gb/s).
func FormatBits(bytesPerSec float64) string {
	const (
		kb = 1024.0
		mb = 1024.0 * kb
		gb = 1024.0 * mb
	)
	bps := bytesPerSec * 8
	switch {
	case bps >= gb:
		return fmt.Sprintf("%.2f Gb/s", bps/gb)
	case bps >= mb:
		return fmt.Sprintf("%.2f Mb/s", bps/mb)
	case bps >= kb:
		return fmt.Sprintf("%.2f Kb/s", bps/kb)
	default:
		return fmt.Sprintf("%.0f b/s", bps)
	}
}

// FormatBytes renders a cumulative byte total with binary units.
func FormatBytes(bytes uint64) string {
	const (
		kib = uint64(1024)
		mib = 1024 * kib
		gib = 1024 * mib
		tib = 1024 * gib
	)
	switch {
	case bytes >= tib:
		return fmt.Sprintf("%.2f TiB", float64(bytes)/float64(tib))
	case bytes >= gib:
		return fmt.Sprintf("%.2f GiB", float64(bytes)/float64(gib))
	case bytes >= mib:
		return fmt.Sprintf("%.2f MiB", float64(bytes)/float64(mib))
	case bytes >= kib:
		return fmt.Sprintf("%.2f KiB", float64(bytes)/float64(kib))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
