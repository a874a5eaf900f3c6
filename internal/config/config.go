// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package config provides HCL configuration handling for the monitor.
package config

import (
	"net/netip"
	"time"

	"grimm.is/wiretop/internal/errors"
)

// Config is the top-level structure for the monitor configuration.
type Config struct {
	// Capture interface name. Empty means autodetect the first usable one.
	Interface string `hcl:"interface,optional" json:"interface,omitempty"`

	// Consumer tick interval, e.g. "500ms".
	// @default: "500ms"
	Tick string `hcl:"tick,optional" json:"tick,omitempty"`

	// Smoothing duration for per-host averages and chart history, e.g. "60s".
	// Window length is smoothing_window / tick.
	// @default: "60s"
	SmoothingWindow string `hcl:"smoothing_window,optional" json:"smoothing_window,omitempty"`

	// CIDR ranges whose hosts are tracked individually.
	// @default: RFC 1918 private ranges
	LocalSubnets []string `hcl:"local_subnets,optional" json:"local_subnets,omitempty"`

	// Put the capture socket into promiscuous mode.
	// @default: true
	Promiscuous *bool `hcl:"promiscuous,optional" json:"promiscuous,omitempty"`

	Log     *LogConfig     `hcl:"log,block" json:"log,omitempty"`
	Metrics *MetricsConfig `hcl:"metrics,block" json:"metrics,omitempty"`
	Syslog  *SyslogConfig  `hcl:"syslog,block" json:"syslog,omitempty"`

	tick      time.Duration
	smoothing time.Duration
}

// LogConfig controls local logging. The TUI owns the terminal, so logs go
// to a file (or nowhere) rather than stderr.
type LogConfig struct {
	Level string `hcl:"level,optional" json:"level,omitempty"`
	File  string `hcl:"file,optional" json:"file,omitempty"`
	JSON  bool   `hcl:"json,optional" json:"json,omitempty"`
}

// MetricsConfig controls the optional Prometheus listener.
type MetricsConfig struct {
	Enabled bool   `hcl:"enabled,optional" json:"enabled,omitempty"`
	Listen  string `hcl:"listen,optional" json:"listen,omitempty"`
}

// SyslogConfig mirrors logging.SyslogConfig for the HCL surface.
type SyslogConfig struct {
	Enabled  bool   `hcl:"enabled,optional" json:"enabled,omitempty"`
	Host     string `hcl:"host,optional" json:"host,omitempty"`
	Port     int    `hcl:"port,optional" json:"port,omitempty"`
	Protocol string `hcl:"protocol,optional" json:"protocol,omitempty"`
	Tag      string `hcl:"tag,optional" json:"tag,omitempty"`
	Facility int    `hcl:"facility,optional" json:"facility,omitempty"`
}

// DefaultConfig returns the built-in defaults: 500ms tick, 60s smoothing,
// RFC 1918 local subnets, promiscuous capture, info-level logging.
func DefaultConfig() *Config {
	promisc := true
	return &Config{
		Tick:            "500ms",
		SmoothingWindow: "60s",
		LocalSubnets:    []string{"10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"},
		Promiscuous:     &promisc,
		Log:             &LogConfig{Level: "info"},
		Metrics:         &MetricsConfig{Listen: "127.0.0.1:9643"},
		tick:            500 * time.Millisecond,
		smoothing:       60 * time.Second,
	}
}

// Validate fills defaults, parses durations and subnets, and rejects
// inconsistent settings.
func (c *Config) Validate() error {
	if c.Tick == "" {
		c.Tick = "500ms"
	}
	if c.SmoothingWindow == "" {
		c.SmoothingWindow = "60s"
	}
	if len(c.LocalSubnets) == 0 {
		c.LocalSubnets = []string{"10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}
	}
	if c.Promiscuous == nil {
		promisc := true
		c.Promiscuous = &promisc
	}
	if c.Log == nil {
		c.Log = &LogConfig{Level: "info"}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{Listen: "127.0.0.1:9643"}
	}
	if c.Metrics.Enabled && c.Metrics.Listen == "" {
		c.Metrics.Listen = "127.0.0.1:9643"
	}

	tick, err := time.ParseDuration(c.Tick)
	if err != nil {
		return errors.Wrapf(err, errors.KindValidation, "tick %q", c.Tick)
	}
	if tick <= 0 {
		return errors.Errorf(errors.KindValidation, "tick must be positive, got %s", tick)
	}

	smoothing, err := time.ParseDuration(c.SmoothingWindow)
	if err != nil {
		return errors.Wrapf(err, errors.KindValidation, "smoothing_window %q", c.SmoothingWindow)
	}
	if smoothing < tick {
		return errors.Errorf(errors.KindValidation,
			"smoothing_window %s must be at least one tick (%s)", smoothing, tick)
	}

	for _, cidr := range c.LocalSubnets {
		if _, err := netip.ParsePrefix(cidr); err != nil {
			return errors.Wrapf(err, errors.KindValidation, "local subnet %q", cidr)
		}
	}

	if c.Syslog != nil && c.Syslog.Enabled && c.Syslog.Host == "" {
		return errors.New(errors.KindValidation, "syslog.host is required when syslog is enabled")
	}

	c.tick = tick
	c.smoothing = smoothing
	return nil
}

// TickInterval returns the parsed tick duration. Validate must have run.
func (c *Config) TickInterval() time.Duration {
	return c.tick
}

// Smoothing returns the parsed smoothing duration. Validate must have run.
func (c *Config) Smoothing() time.Duration {
	return c.smoothing
}
