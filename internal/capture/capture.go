// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package capture reads raw frames off one interface and hands decoded
// IPv4 source/destination/length triples to the aggregation engine.
package capture

import (
	"github.com/gopacket/gopacket"
	"github.com/gopacket/gopacket/layers"

	"grimm.is/wiretop/internal/engine"
)

// Handler receives one decoded frame. length is the full link-layer frame
// length in bytes. Called from the capture goroutine.
type Handler func(src, dst engine.Addr, length int)

// Config selects the capture interface and socket options.
type Config struct {
	Interface   string
	Promiscuous bool
}

// decoder is a reusable Ethernet/IPv4 layer parser. Not safe for
// concurrent use; each capture loop owns one.
type decoder struct {
	eth     layers.Ethernet
	ip4     layers.IPv4
	parser  *gopacket.DecodingLayerParser
	decoded []gopacket.LayerType
}

func newDecoder() *decoder {
	d := &decoder{}
	d.parser = gopacket.NewDecodingLayerParser(layers.LayerTypeEthernet, &d.eth, &d.ip4)
	d.parser.IgnoreUnsupported = true
	return d
}

// decode extracts IPv4 endpoints from a raw Ethernet frame. Non-IPv4
// frames return ok=false and are skipped by the caller.
func (d *decoder) decode(frame []byte) (src, dst engine.Addr, ok bool) {
	if err := d.parser.DecodeLayers(frame, &d.decoded); err != nil {
		return engine.Addr{}, engine.Addr{}, false
	}
	for _, lt := range d.decoded {
		if lt != layers.LayerTypeIPv4 {
			continue
		}
		s, sok := engine.AddrFromIP(d.ip4.SrcIP)
		t, tok := engine.AddrFromIP(d.ip4.DstIP)
		if !sok || !tok {
			return engine.Addr{}, engine.Addr{}, false
		}
		return s, t, true
	}
	return engine.Addr{}, engine.Addr{}, false
}
