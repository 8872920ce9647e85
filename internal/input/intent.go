package input

import (
	"gosnake/internal/game"
	"gosnake/internal/session"
)

// ForceStart polls once and reports whether the player pressed Enter to
// ask for an early start.  Any other key, or none, is a "no" vote.
func ForceStart(p Poller) bool {
	ev, ok := p.PollLatest()
	return ok && ev.Key == KeyEnter
}

// Steering maps play-mode keys onto the session.
type Steering struct {
	// QuitKeys end the game when typed.  Ctrl-C always quits.
	QuitKeys []rune
}

// DefaultSteering quits on 'q'.
var DefaultSteering = Steering{QuitKeys: []rune{'q'}}

// Steer polls once and applies the result to s: an arrow key sets the
// direction, a quit key sets Killed, anything else is ignored.  It
// reports whether s changed.
func (st Steering) Steer(p Poller, s *session.Session) bool {
	ev, ok := p.PollLatest()
	if !ok {
		return false
	}

	switch ev.Key {
	case KeyUp:
		return setDirection(s, game.Up)
	case KeyDown:
		return setDirection(s, game.Down)
	case KeyLeft:
		return setDirection(s, game.Left)
	case KeyRight:
		return setDirection(s, game.Right)
	case KeyCtrlC:
		s.Killed = true
		return true
	case KeyRune:
		for _, q := range st.QuitKeys {
			if ev.Rune == q {
				s.Killed = true
				return true
			}
		}
	}
	return false
}

func setDirection(s *session.Session, d game.Direction) bool {
	if s.Direction == d {
		return false
	}
	s.Direction = d
	return true
}
