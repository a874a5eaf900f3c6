// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package logging provides leveled, key-value structured logging with
// optional JSON output and remote syslog forwarding.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level defines the log severity threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name to a Level. Unknown names map to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Config controls logger construction.
type Config struct {
	Level  Level
	Output io.Writer
	JSON   bool
}

// DefaultConfig returns the standard stderr text logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Output: os.Stderr,
		JSON:   false,
	}
}

// Logger is a leveled logger carrying an optional component name.
// Loggers derived with WithComponent share the same output and mutex.
type Logger struct {
	mu        *sync.Mutex
	out       io.Writer
	level     Level
	json      bool
	component string
}

// New creates a Logger from the given configuration.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		mu:    &sync.Mutex{},
		out:   out,
		level: cfg.Level,
		json:  cfg.JSON,
	}
}

// WithComponent returns a Logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	clone := *l
	clone.component = name
	return &clone
}

// SetOutput redirects the logger (and all loggers sharing its mutex) to w.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// AddOutput tees log records to an additional writer, e.g. a syslog connection.
func (l *Logger) AddOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = io.MultiWriter(l.out, w)
}

func (l *Logger) Debug(msg string, kv ...any) { l.log(LevelDebug, msg, kv) }
func (l *Logger) Info(msg string, kv ...any)  { l.log(LevelInfo, msg, kv) }
func (l *Logger) Warn(msg string, kv ...any)  { l.log(LevelWarn, msg, kv) }
func (l *Logger) Error(msg string, kv ...any) { l.log(LevelError, msg, kv) }

func (l *Logger) log(level Level, msg string, kv []any) {
	if level < l.level {
		return
	}

	ts := time.Now().Format(time.RFC3339)

	var line string
	if l.json {
		rec := map[string]any{
			"ts":    ts,
			"level": level.String(),
			"msg":   msg,
		}
		if l.component != "" {
			rec["component"] = l.component
		}
		for i := 0; i+1 < len(kv); i += 2 {
			key, ok := kv[i].(string)
			if !ok {
				key = fmt.Sprint(kv[i])
			}
			rec[key] = fmt.Sprint(kv[i+1])
		}
		b, err := json.Marshal(rec)
		if err != nil {
			return
		}
		line = string(b) + "\n"
	} else {
		var sb strings.Builder
		sb.WriteString(ts)
		sb.WriteString(" ")
		sb.WriteString(fmt.Sprintf("%-5s", level.String()))
		if l.component != "" {
			sb.WriteString(" [")
			sb.WriteString(l.component)
			sb.WriteString("]")
		}
		sb.WriteString(" ")
		sb.WriteString(msg)
		for i := 0; i+1 < len(kv); i += 2 {
			sb.WriteString(fmt.Sprintf(" %v=%v", kv[i], kv[i+1]))
		}
		sb.WriteString("\n")
		line = sb.String()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.out, line)
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New(DefaultConfig())
)

// SetDefault replaces the process-wide default logger.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Default returns the process-wide default logger.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// WithComponent returns the default logger tagged with a component name.
func WithComponent(name string) *Logger {
	return Default().WithComponent(name)
}
