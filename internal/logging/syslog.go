// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package logging

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"grimm.is/wiretop/internal/brand"
	"grimm.is/wiretop/internal/errors"
)

// SyslogConfig controls remote syslog forwarding.
type SyslogConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Protocol string // "udp" or "tcp"
	Tag      string
	Facility int // RFC3164 facility code
}

// DefaultSyslogConfig returns the disabled default syslog configuration.
func DefaultSyslogConfig() SyslogConfig {
	return SyslogConfig{
		Enabled:  false,
		Port:     514,
		Protocol: "udp",
		Tag:      brand.LowerName,
		Facility: 1, // user-level
	}
}

// SyslogWriter forwards log lines to a remote syslog collector in RFC3164 framing.
type SyslogWriter struct {
	conn     net.Conn
	tag      string
	facility int
	hostname string
}

// NewSyslogWriter connects to the configured syslog collector.
func NewSyslogWriter(cfg SyslogConfig) (*SyslogWriter, error) {
	if cfg.Host == "" {
		return nil, errors.New(errors.KindValidation, "syslog host is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 514
	}
	if cfg.Protocol == "" {
		cfg.Protocol = "udp"
	}
	if cfg.Tag == "" {
		cfg.Tag = brand.LowerName
	}

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	conn, err := net.DialTimeout(cfg.Protocol, addr, 5*time.Second)
	if err != nil {
		return nil, errors.Wrapf(err, errors.KindUnavailable, "syslog dial %s/%s", cfg.Protocol, addr)
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}

	return &SyslogWriter{
		conn:     conn,
		tag:      cfg.Tag,
		facility: cfg.Facility,
		hostname: hostname,
	}, nil
}

// Write implements io.Writer. Each write is sent as one syslog message
// at severity "informational".
func (w *SyslogWriter) Write(p []byte) (int, error) {
	const severity = 6 // informational
	pri := w.facility*8 + severity
	msg := strings.TrimRight(string(p), "\n")
	ts := time.Now().Format(time.Stamp)

	_, err := fmt.Fprintf(w.conn, "<%d>%s %s %s: %s\n", pri, ts, w.hostname, w.tag, msg)
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close closes the syslog connection.
func (w *SyslogWriter) Close() error {
	return w.conn.Close()
}
