// Package cmd wires up the CLI flags and dispatches to the game core.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"gosnake/config"
	"gosnake/internal/core"
	"gosnake/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X gosnake/cmd.version=1.1.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and plays a game.
func Execute(ctx context.Context, args []string) error {
	cfg := config.Default()
	config.LoadFromEnv(cfg)

	fs := flag.NewFlagSet("gosnake", flag.ContinueOnError)

	// ── connection ───────────────────────────────────────────────
	fs.StringVarP(&cfg.Transport, "transport", "t", cfg.Transport, "Transport: tcp or ws")
	fs.StringVar(&cfg.WSPath, "ws-path", cfg.WSPath, "Websocket endpoint path (with -t ws)")
	fs.IntVarP(&cfg.ConnectAttempts, "retries", "r", cfg.ConnectAttempts, "Initial connection attempts")

	timeoutSec := int(cfg.Timeout / time.Second)
	fs.IntVarP(&timeoutSec, "timeout", "w", timeoutSec, "Connect timeout in seconds")
	turnTimeoutSec := int(cfg.TurnTimeout / time.Second)
	fs.IntVar(&turnTimeoutSec, "turn-timeout", turnTimeoutSec, "Read deadline per server message in seconds (0 = none)")

	// ── terminal ─────────────────────────────────────────────────
	fs.StringVarP(&cfg.Display, "display", "d", cfg.Display, "Display backend: ansi or tcell")
	quitKey := string(cfg.QuitKey)
	fs.StringVarP(&quitKey, "quit-key", "q", quitKey, "Key that quits the game")
	fs.BoolVarP(&cfg.Sound, "sound", "s", cfg.Sound, "Play sound cues")

	// ── output ───────────────────────────────────────────────────
	fs.StringVarP(&cfg.LogFile, "log-file", "L", cfg.LogFile, `Session log file ("-" = stderr, "" = off)`)
	var verbosity int
	fs.CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")
	fs.BoolVar(&cfg.Stats, "stats", false, "Print session metrics as JSON on exit")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Validate configuration and exit")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Printf("gosnake %s\n", version)
		return nil
	}

	cfg.Timeout = time.Duration(timeoutSec) * time.Second
	cfg.TurnTimeout = time.Duration(turnTimeoutSec) * time.Second
	cfg.Verbose += verbosity

	r, err := config.ParseQuitKey(quitKey)
	if err != nil {
		return fmt.Errorf("quit-key: %w", err)
	}
	cfg.QuitKey = r

	// ── positional arguments ─────────────────────────────────────
	if err := parsePositional(cfg, fs.Args()); err != nil {
		return err
	}

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.DryRun {
		fmt.Printf("gosnake: would connect to %s over %s (display %s, quit key %q)\n",
			cfg.Address(), cfg.Transport, cfg.Display, cfg.QuitKey)
		return nil
	}

	// ── build components ─────────────────────────────────────────
	logOut, err := util.OpenLogFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logOut.Close()

	logger := util.NewLogger(cfg.Verbose)
	logger.SetOutput(util.NewSafeWriter(logOut))

	mode, err := core.Build(cfg, logger)
	if err != nil {
		return err
	}
	return mode.Run(ctx)
}

// ── helpers ──────────────────────────────────────────────────────────

// parsePositional accepts [host] [port].
func parsePositional(cfg *config.Config, remaining []string) error {
	switch len(remaining) {
	case 0:
	case 1:
		cfg.Host = remaining[0]
	case 2:
		cfg.Host = remaining[0]
		port, err := util.ParsePort(remaining[1])
		if err != nil {
			return fmt.Errorf("port: %w", err)
		}
		cfg.Port = port
	default:
		return fmt.Errorf("too many arguments (use --help for usage)")
	}
	return nil
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `gosnake – multiplayer snake terminal client v%s

Usage:
  gosnake [options] [host] [port]        Join a game (default 127.0.0.1 8080)

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Keys:
  arrows        steer
  ENTER         vote to start early while in the lobby
  q, Ctrl-C     quit

Examples:
  gosnake                                  Local server on 8080
  gosnake snake.example.com 9000           Remote server
  gosnake -t ws --ws-path /play host 80    Through a websocket
  gosnake -d tcell -s -vv                  tcell display, sound, verbose log
`)
}
