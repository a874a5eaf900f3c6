// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package netutil

import (
	"net"
	"net/netip"

	"grimm.is/wiretop/internal/errors"
)

// InterfaceIPv4 returns the first IPv4 address assigned to the named interface.
func InterfaceIPv4(name string) (netip.Addr, error) {
	ifi, err := net.InterfaceByName(name)
	if err != nil {
		return netip.Addr{}, errors.Wrapf(err, errors.KindNotFound, "interface %s", name)
	}
	addrs, err := ifi.Addrs()
	if err != nil {
		return netip.Addr{}, errors.Wrapf(err, errors.KindInternal, "addresses of %s", name)
	}
	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok {
			continue
		}
		if v4 := ipnet.IP.To4(); v4 != nil {
			return netip.AddrFrom4([4]byte{v4[0], v4[1], v4[2], v4[3]}), nil
		}
	}
	return netip.Addr{}, errors.Errorf(errors.KindNotFound, "no IPv4 address on %s", name)
}

// DefaultInterface picks the first interface that is up, not loopback, and
// carries an IPv4 address.
func DefaultInterface() (string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "", errors.Wrap(err, errors.KindInternal, "list interfaces")
	}
	for _, ifi := range ifaces {
		if ifi.Flags&net.FlagUp == 0 || ifi.Flags&net.FlagLoopback != 0 {
			continue
		}
		if _, err := InterfaceIPv4(ifi.Name); err == nil {
			return ifi.Name, nil
		}
	}
	return "", errors.New(errors.KindNotFound, "no usable capture interface found")
}
