// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

//go:build !linux

package capture

import (
	"context"

	"grimm.is/wiretop/internal/errors"
	"grimm.is/wiretop/internal/logging"
)

// Source is unavailable on this platform.
type Source struct{}

// Open always fails: AF_PACKET capture requires Linux.
func Open(cfg Config, handler Handler, logger *logging.Logger) (*Source, error) {
	return nil, errors.New(errors.KindUnavailable, "packet capture requires Linux")
}

func (s *Source) Run(ctx context.Context) error {
	return errors.New(errors.KindUnavailable, "packet capture requires Linux")
}

func (s *Source) Close() error {
	return nil
}
