// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package engine implements the bandwidth aggregation core: the shared
// delta accumulator fed by the capture path, per-host sliding-window rate
// estimators, bounded global history buffers, and the per-tick drain and
// ranking pass that ties them together.
package engine

import (
	"fmt"
	"net"
	"net/netip"
)

// Addr is an IPv4 host address used as a map key. Equality is byte-exact.
type Addr [4]byte

// AddrFromIP converts a net.IP to an Addr. Returns false for non-IPv4 addresses.
func AddrFromIP(ip net.IP) (Addr, bool) {
	v4 := ip.To4()
	if v4 == nil {
		return Addr{}, false
	}
	return Addr{v4[0], v4[1], v4[2], v4[3]}, true
}

// AddrFromNetip converts a netip.Addr to an Addr. Returns false for non-IPv4 addresses.
func AddrFromNetip(a netip.Addr) (Addr, bool) {
	if a.Is4In6() {
		a = a.Unmap()
	}
	if !a.Is4() {
		return Addr{}, false
	}
	return Addr(a.As4()), true
}

// Netip returns the address as a netip.Addr.
func (a Addr) Netip() netip.Addr {
	return netip.AddrFrom4(a)
}

func (a Addr) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a[0], a[1], a[2], a[3])
}
