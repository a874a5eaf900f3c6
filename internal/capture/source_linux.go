// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

//go:build linux

package capture

import (
	"context"
	"net"
	"os"
	"time"

	"github.com/mdlayher/packet"
	"golang.org/x/sys/unix"

	"grimm.is/wiretop/internal/errors"
	"grimm.is/wiretop/internal/logging"
)

// Source is an AF_PACKET frame source bound to one interface.
type Source struct {
	conn    *packet.Conn
	iface   string
	handler Handler
	logger  *logging.Logger
}

// Open binds a raw AF_PACKET socket to the configured interface.
// Requires CAP_NET_RAW.
func Open(cfg Config, handler Handler, logger *logging.Logger) (*Source, error) {
	if logger == nil {
		logger = logging.New(logging.DefaultConfig())
	}

	ifi, err := net.InterfaceByName(cfg.Interface)
	if err != nil {
		return nil, errors.Wrapf(err, errors.KindNotFound, "interface %s", cfg.Interface)
	}

	conn, err := packet.Listen(ifi, packet.Raw, unix.ETH_P_ALL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, errors.KindUnavailable, "open AF_PACKET socket on %s", cfg.Interface)
	}

	if cfg.Promiscuous {
		if err := conn.SetPromiscuous(true); err != nil {
			conn.Close()
			return nil, errors.Wrapf(err, errors.KindUnavailable, "promiscuous mode on %s", cfg.Interface)
		}
	}

	logger.Info("Capture started", "interface", cfg.Interface, "promiscuous", cfg.Promiscuous)

	return &Source{
		conn:    conn,
		iface:   cfg.Interface,
		handler: handler,
		logger:  logger,
	}, nil
}

// Run reads frames until the context is canceled or the socket fails.
// Read deadlines are used so cancellation is observed within a second.
func (s *Source) Run(ctx context.Context) error {
	buf := make([]byte, 65536)
	dec := newDecoder()

	for {
		if ctx.Err() != nil {
			return nil
		}

		_ = s.conn.SetReadDeadline(time.Now().Add(time.Second))
		n, _, err := s.conn.ReadFrom(buf)
		if err != nil {
			if os.IsTimeout(err) {
				continue
			}
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return errors.Wrapf(err, errors.KindUnavailable, "read frame on %s", s.iface)
		}
		if n == 0 {
			continue
		}

		if src, dst, ok := dec.decode(buf[:n]); ok {
			s.handler(src, dst, n)
		}
	}
}

// Close shuts down the capture socket, unblocking Run.
func (s *Source) Close() error {
	return s.conn.Close()
}
