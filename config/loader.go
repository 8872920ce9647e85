package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Defaults   (defaults.go)

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the GOSNAKE_ prefix.  Boolean values
// accept "1", "true", "yes" (case-insensitive).

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  This should be called BEFORE
// CLI flag parsing so that flags take precedence.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("GOSNAKE_HOST"); v != "" {
		cfg.Host = v
	}
	if v := envInt("GOSNAKE_PORT"); v > 0 {
		cfg.Port = v
	}
	if v := os.Getenv("GOSNAKE_TRANSPORT"); v != "" {
		cfg.Transport = strings.ToLower(v)
	}
	if v := os.Getenv("GOSNAKE_WS_PATH"); v != "" {
		cfg.WSPath = v
	}
	if v := envInt("GOSNAKE_RETRIES"); v > 0 {
		cfg.ConnectAttempts = v
	}
	if v := envInt("GOSNAKE_TIMEOUT"); v > 0 {
		cfg.Timeout = secondsDuration(v)
	}
	if v := envInt("GOSNAKE_TURN_TIMEOUT"); v > 0 {
		cfg.TurnTimeout = secondsDuration(v)
	}

	// Terminal
	if v := os.Getenv("GOSNAKE_DISPLAY"); v != "" {
		cfg.Display = strings.ToLower(v)
	}
	if v := os.Getenv("GOSNAKE_QUIT_KEY"); v != "" {
		if r, err := ParseQuitKey(v); err == nil {
			cfg.QuitKey = r
		}
	}
	if envBool("GOSNAKE_SOUND") {
		cfg.Sound = true
	}

	// Output
	if v, ok := os.LookupEnv("GOSNAKE_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v := envInt("GOSNAKE_VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}

func secondsDuration(sec int) time.Duration {
	return time.Duration(sec) * time.Second
}
