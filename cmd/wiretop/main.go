// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"grimm.is/wiretop/internal/brand"
	"grimm.is/wiretop/internal/capture"
	"grimm.is/wiretop/internal/config"
	"grimm.is/wiretop/internal/engine"
	"grimm.is/wiretop/internal/errors"
	"grimm.is/wiretop/internal/logging"
	"grimm.is/wiretop/internal/metrics"
	"grimm.is/wiretop/internal/netutil"
	"grimm.is/wiretop/internal/tui"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to "+brand.ConfigFileName)
		ifaceFlag   = flag.String("i", "", "capture interface (overrides config)")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", brand.BinaryName, brand.Version)
		return
	}

	if err := run(*configPath, *ifaceFlag); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", brand.BinaryName, err)
		os.Exit(1)
	}
}

func run(configPath, ifaceOverride string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	iface := cfg.Interface
	if ifaceOverride != "" {
		iface = ifaceOverride
	}
	if iface == "" {
		iface, err = netutil.DefaultInterface()
		if err != nil {
			return err
		}
	}

	logger, cleanup, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	// The interface may be capture-only and carry no address. Everything
	// then counts as inbound, same as binding to 0.0.0.0.
	var local engine.Addr
	if ip, err := netutil.InterfaceIPv4(iface); err == nil {
		local, _ = engine.AddrFromNetip(ip)
	} else {
		logger.Warn("No IPv4 address on capture interface", "interface", iface)
	}

	classifier, err := engine.NewClassifier(cfg.LocalSubnets)
	if err != nil {
		return err
	}

	acc := engine.NewAccumulator(local, classifier)
	eng := engine.New(acc, engine.Config{
		Tick:      cfg.TickInterval(),
		Smoothing: cfg.Smoothing(),
	})

	var pub *metrics.Publisher
	if cfg.Metrics.Enabled {
		pub = metrics.NewPublisher()
		pub.Serve(cfg.Metrics.Listen, logger.WithComponent("metrics"))
	}

	src, err := capture.Open(capture.Config{
		Interface:   iface,
		Promiscuous: *cfg.Promiscuous,
	}, eng.Record, logger.WithComponent("capture"))
	if err != nil {
		return err
	}
	defer src.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := src.Run(ctx); err != nil {
			logger.Error("Capture stopped", "error", err)
		}
	}()

	logger.Info("Starting monitor",
		"interface", iface,
		"local", local,
		"tick", cfg.TickInterval().String(),
		"window", cfg.Smoothing().String())

	backend := &monitorBackend{eng: eng, pub: pub}
	model := tui.NewModel(backend, iface, cfg.TickInterval())
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return errors.Wrap(err, errors.KindInternal, "terminal UI")
	}
	return nil
}

// monitorBackend runs the engine's tick pass and tees the snapshot to the
// metrics publisher before the TUI renders it.
type monitorBackend struct {
	eng *engine.Engine
	pub *metrics.Publisher
}

func (b *monitorBackend) Tick() engine.Snapshot {
	snap := b.eng.Tick()
	if b.pub != nil {
		b.pub.Publish(snap)
	}
	return snap
}

// setupLogging builds the process logger. The TUI owns the terminal, so
// without a configured log file everything is discarded.
func setupLogging(cfg *config.Config) (*logging.Logger, func(), error) {
	var out io.Writer = io.Discard
	cleanup := func() {}

	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, errors.KindInternal, "open log file %s", cfg.Log.File)
		}
		out = f
		cleanup = func() { f.Close() }
	}

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Output: out,
		JSON:   cfg.Log.JSON,
	})

	if cfg.Syslog != nil && cfg.Syslog.Enabled {
		w, err := logging.NewSyslogWriter(logging.SyslogConfig{
			Enabled:  true,
			Host:     cfg.Syslog.Host,
			Port:     cfg.Syslog.Port,
			Protocol: cfg.Syslog.Protocol,
			Tag:      cfg.Syslog.Tag,
			Facility: cfg.Syslog.Facility,
		})
		if err != nil {
			return nil, nil, err
		}
		logger.AddOutput(w)
		prev := cleanup
		cleanup = func() { w.Close(); prev() }
	}

	logging.SetDefault(logger)
	return logger, cleanup, nil
}
