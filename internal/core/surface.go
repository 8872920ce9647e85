package core

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"gosnake/internal/display"
	"gosnake/internal/input"
	"gosnake/internal/metrics"
	"gosnake/internal/terminal"
	"gosnake/util"
)

// Surface is the acquired terminal: where frames are drawn, where keys
// come from, and how to give the terminal back.
type Surface struct {
	Sink    display.Sink
	Poller  input.Poller
	Release func() error

	// Transient surfaces take what was drawn with them on Release.
	Transient bool
}

// SurfaceFunc acquires a Surface.  It is called after the connection is
// established so a failed dial never touches the terminal.
type SurfaceFunc func(m *metrics.Collector) (*Surface, error)

func surfaceFor(kind string, logger *util.Logger) SurfaceFunc {
	if kind == "tcell" {
		return openScreen
	}
	return func(m *metrics.Collector) (*Surface, error) {
		return openANSI(logger, m)
	}
}

// openANSI puts stdin in raw mode and draws with escape sequences on
// stdout.
func openANSI(logger *util.Logger, m *metrics.Collector) (*Surface, error) {
	tm, err := terminal.Open()
	if err != nil {
		return nil, err
	}
	sink := display.NewANSI(tm.Out())
	return &Surface{
		Sink:   sink,
		Poller: input.NewRawPoller(tm, logger, m),
		Release: func() error {
			resetErr := sink.Reset()
			if err := tm.Close(); err != nil {
				return err
			}
			return resetErr
		},
	}, nil
}

// openScreen takes over the terminal with tcell.
func openScreen(m *metrics.Collector) (*Surface, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return &Surface{
		Sink:   display.NewScreen(s),
		Poller: input.NewScreenPoller(s, m),
		Release: func() error {
			s.Fini()
			return nil
		},
		Transient: true,
	}, nil
}
