package input

import (
	"github.com/gdamore/tcell/v2"

	"gosnake/internal/metrics"
)

// ScreenPoller reads keys from a tcell screen.  tcell only offers a
// blocking PollEvent, so a pump goroutine forwards events into a
// buffered channel which PollLatest drains without blocking.
type ScreenPoller struct {
	events  chan tcell.Event
	metrics *metrics.Collector
}

// NewScreenPoller starts the pump.  It exits when the screen is
// finalised and PollEvent returns nil.
func NewScreenPoller(s tcell.Screen, m *metrics.Collector) *ScreenPoller {
	p := &ScreenPoller{events: make(chan tcell.Event, 256), metrics: m}
	go func() {
		defer close(p.events)
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			p.events <- ev
		}
	}()
	return p
}

// PollLatest drains every queued screen event and returns the last key.
func (p *ScreenPoller) PollLatest() (Event, bool) {
	var (
		last  Event
		found bool
		n     int
	)
	for {
		select {
		case ev, open := <-p.events:
			if !open {
				p.metrics.InputsPolled(n)
				return last, found
			}
			if k, ok := ev.(*tcell.EventKey); ok {
				last, found = translate(k), true
				n++
			}
		default:
			p.metrics.InputsPolled(n)
			return last, found
		}
	}
}

func translate(k *tcell.EventKey) Event {
	switch k.Key() {
	case tcell.KeyUp:
		return Event{Key: KeyUp}
	case tcell.KeyDown:
		return Event{Key: KeyDown}
	case tcell.KeyLeft:
		return Event{Key: KeyLeft}
	case tcell.KeyRight:
		return Event{Key: KeyRight}
	case tcell.KeyEnter:
		return Event{Key: KeyEnter}
	case tcell.KeyEscape:
		return Event{Key: KeyEscape}
	case tcell.KeyCtrlC:
		return Event{Key: KeyCtrlC}
	case tcell.KeyRune:
		return Event{Key: KeyRune, Rune: k.Rune()}
	}
	return Event{Key: KeyOther}
}
