package input

import (
	"gosnake/internal/metrics"
	"gosnake/util"
)

// Source yields whatever keyboard bytes are pending without blocking.
// An empty result means nothing was typed.
type Source interface {
	ReadAvailable() ([]byte, error)
}

// Poller returns the most recent key typed since the previous poll.
// Implementations never block and never sleep.
type Poller interface {
	PollLatest() (Event, bool)
}

// RawPoller parses a byte Source.
type RawPoller struct {
	src     Source
	logger  *util.Logger
	metrics *metrics.Collector
}

// NewRawPoller returns a poller over src.  logger and m may be nil.
func NewRawPoller(src Source, logger *util.Logger, m *metrics.Collector) *RawPoller {
	return &RawPoller{src: src, logger: logger, metrics: m}
}

// PollLatest drains src and returns the last complete event, if any.
// A read error is logged and treated as no input: the keyboard is never
// a reason to end the game.
func (p *RawPoller) PollLatest() (Event, bool) {
	data, err := p.src.ReadAvailable()
	if err != nil {
		if p.logger != nil {
			p.logger.Debug("keyboard read: %v", err)
		}
		return Event{}, false
	}
	if len(data) == 0 {
		return Event{}, false
	}

	events := Parse(data)
	p.metrics.InputsPolled(len(events))
	if len(events) == 0 {
		return Event{}, false
	}
	return events[len(events)-1], true
}
