// Package config defines the runtime configuration for gosnake.
package config

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	"gosnake/internal/errors"
	"gosnake/util"
)

// Config holds every tuneable for a single game session.
type Config struct {
	// ── Connection ───────────────────────────────────────────────────
	Host            string
	Port            int
	Transport       string // tcp | ws
	WSPath          string
	Timeout         time.Duration
	ConnectAttempts int
	TurnTimeout     time.Duration

	// ── Terminal ─────────────────────────────────────────────────────
	Display string // ansi | tcell
	QuitKey rune
	Sound   bool

	// ── Output ───────────────────────────────────────────────────────
	LogFile string
	Verbose int
	Stats   bool
	DryRun  bool
}

// Default returns a Config populated from defaults.go.
func Default() *Config {
	return &Config{
		Host:            DefaultHost,
		Port:            DefaultPort,
		Transport:       DefaultTransport,
		WSPath:          DefaultWSPath,
		Timeout:         DefaultConnTimeout,
		ConnectAttempts: DefaultConnectAttempts,
		TurnTimeout:     DefaultTurnTimeout,
		Display:         DefaultDisplay,
		QuitKey:         DefaultQuitKey,
		LogFile:         DefaultLogFile,
		Verbose:         1,
	}
}

// Address returns "host:port".
func (c *Config) Address() string {
	return util.FormatAddr(c.Host, c.Port)
}

// ParseQuitKey accepts a single printable character.
func ParseQuitKey(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if s == "" || size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("quit key must be a single character, got %q", s)
	}
	if !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return 0, fmt.Errorf("quit key must be printable, got %q", s)
	}
	return r, nil
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Host == "" {
		return &errors.ConfigError{Field: "host", Message: "server host is required"}
	}
	if c.Port < 1 || c.Port > 65535 {
		return &errors.ConfigError{Field: "port", Value: c.Port, Message: "out of range 1-65535"}
	}

	switch c.Transport {
	case "tcp":
	case "ws":
		if len(c.WSPath) == 0 || c.WSPath[0] != '/' {
			return &errors.ConfigError{
				Field:   "ws-path",
				Value:   c.WSPath,
				Message: "must be an absolute path",
				Hint:    "e.g. --ws-path /play",
			}
		}
	default:
		return &errors.ConfigError{
			Field:   "transport",
			Value:   c.Transport,
			Message: "unknown transport",
			Hint:    "use tcp or ws",
		}
	}

	switch c.Display {
	case "ansi", "tcell":
	default:
		return &errors.ConfigError{
			Field:   "display",
			Value:   c.Display,
			Message: "unknown display backend",
			Hint:    "use ansi or tcell",
		}
	}

	if c.QuitKey == 0 || !unicode.IsPrint(c.QuitKey) || unicode.IsSpace(c.QuitKey) {
		return &errors.ConfigError{Field: "quit-key", Value: string(c.QuitKey), Message: "must be a printable character"}
	}
	if c.ConnectAttempts < 1 {
		return &errors.ConfigError{
			Field:   "retries",
			Value:   c.ConnectAttempts,
			Message: "at least one connection attempt is required",
		}
	}
	if c.Timeout < 0 {
		return &errors.ConfigError{Field: "timeout", Value: c.Timeout, Message: "must not be negative"}
	}
	if c.TurnTimeout < 0 {
		return &errors.ConfigError{
			Field:   "turn-timeout",
			Value:   c.TurnTimeout,
			Message: "must not be negative",
			Hint:    "use 0 to wait for the server indefinitely",
		}
	}
	return nil
}
