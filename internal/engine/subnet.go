// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package engine

import (
	"net/netip"

	"grimm.is/wiretop/internal/errors"
)

// Classifier decides whether a host address belongs to the local subnets
// and is therefore tracked individually rather than only counted in the
// global totals.
type Classifier struct {
	prefixes []netip.Prefix
}

// NewClassifier builds a Classifier from CIDR strings.
func NewClassifier(cidrs []string) (*Classifier, error) {
	prefixes := make([]netip.Prefix, 0, len(cidrs))
	for _, cidr := range cidrs {
		p, err := netip.ParsePrefix(cidr)
		if err != nil {
			return nil, errors.Wrapf(err, errors.KindValidation, "invalid local subnet %q", cidr)
		}
		prefixes = append(prefixes, p.Masked())
	}
	return &Classifier{prefixes: prefixes}, nil
}

// DefaultClassifier matches the RFC 1918 private ranges.
func DefaultClassifier() *Classifier {
	return &Classifier{prefixes: []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("172.16.0.0/12"),
		netip.MustParsePrefix("192.168.0.0/16"),
	}}
}

// Local reports whether a belongs to any configured local subnet.
func (c *Classifier) Local(a Addr) bool {
	ip := a.Netip()
	for _, p := range c.prefixes {
		if p.Contains(ip) {
			return true
		}
	}
	return false
}
