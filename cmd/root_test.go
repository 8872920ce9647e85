package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gosnake/config"
)

// TestExecute_Version verifies --version prints a version string.
func TestExecute_Version(t *testing.T) {
	if err := Execute(context.Background(), []string{"--version"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestExecute_Help verifies --help returns without error.
func TestExecute_Help(t *testing.T) {
	for _, args := range [][]string{{"--help"}, {"-h"}} {
		t.Run(args[0], func(t *testing.T) {
			if err := Execute(context.Background(), args); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

// TestExecute_DryRun verifies --dry-run validates and exits cleanly.
func TestExecute_DryRun(t *testing.T) {
	tests := [][]string{
		{"--dry-run"},
		{"--dry-run", "snake.example.com"},
		{"--dry-run", "-t", "ws", "--ws-path", "/game", "10.0.0.1", "9000"},
		{"--dry-run", "-d", "tcell", "-q", "x", "-s", "-vv", "-r", "3"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if err := Execute(context.Background(), args); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

// TestExecute_DryRunDoesNotTouchLog verifies the log file is only
// truncated by a real game.
func TestExecute_DryRunDoesNotTouchLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log")
	if err := os.WriteFile(path, []byte("keep\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Execute(context.Background(), []string{"--dry-run", "-L", path}); err != nil {
		t.Fatal(err)
	}
	if got, _ := os.ReadFile(path); string(got) != "keep\n" {
		t.Errorf("log file = %q", got)
	}
}

// TestExecute_Invalid verifies bad input is rejected before connecting.
func TestExecute_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantSub string
	}{
		{"unknown flag", []string{"--nonexistent-flag"}, "unknown flag"},
		{"bad port", []string{"--dry-run", "localhost", "http"}, "port"},
		{"too many args", []string{"--dry-run", "a", "1", "2"}, "too many arguments"},
		{"bad transport", []string{"--dry-run", "-t", "udp"}, "transport"},
		{"bad display", []string{"--dry-run", "-d", "gl"}, "display"},
		{"long quit key", []string{"--dry-run", "-q", "quit"}, "quit-key"},
		{"zero retries", []string{"--dry-run", "-r", "0"}, "retries"},
		{"negative turn timeout", []string{"--dry-run", "--turn-timeout", "-1"}, "turn-timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Execute(context.Background(), tt.args)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantSub)
			}
		})
	}
}

// TestExecute_EnvOverlay verifies environment defaults and flag
// precedence.
func TestExecute_EnvOverlay(t *testing.T) {
	t.Setenv("GOSNAKE_TRANSPORT", "bogus")
	if err := Execute(context.Background(), []string{"--dry-run"}); err == nil {
		t.Fatal("env transport should be validated")
	}
	if err := Execute(context.Background(), []string{"--dry-run", "-t", "tcp"}); err != nil {
		t.Fatalf("flag should override env: %v", err)
	}
}

func TestParsePositional(t *testing.T) {
	cfg := config.Default()
	if err := parsePositional(cfg, []string{"example.org", "7000"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Address() != "example.org:7000" {
		t.Errorf("address = %q", cfg.Address())
	}

	cfg = config.Default()
	if err := parsePositional(cfg, nil); err != nil || cfg.Address() != "127.0.0.1:8080" {
		t.Errorf("defaults: %q, %v", cfg.Address(), err)
	}
}
