package core

import (
	"fmt"

	"gosnake/config"
	"gosnake/internal/metrics"
	"gosnake/internal/transport"
	"gosnake/util"
)

// Build constructs the game from the given configuration.
func Build(cfg *config.Config, logger *util.Logger) (Mode, error) {
	dialer, err := transport.New(cfg.Transport, cfg.Timeout, cfg.WSPath)
	if err != nil {
		return nil, fmt.Errorf("transport: %w", err)
	}

	return &PlayMode{
		Dialer:      dialer,
		Address:     cfg.Address(),
		Attempts:    cfg.ConnectAttempts,
		TurnTimeout: cfg.TurnTimeout,
		Surface:     surfaceFor(cfg.Display, logger),
		QuitKeys:    []rune{cfg.QuitKey},
		Sound:       cfg.Sound,
		LostWait:    config.DefaultLostCueWait,
		Stats:       cfg.Stats,
		Logger:      logger,
		Metrics:     metrics.New(),
	}, nil
}
