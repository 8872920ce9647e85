// Package session holds the mutable state of one game as seen by this
// client: which snake is ours, where we want to go, where the food is
// and where every snake is.
//
// A Session is owned by the turn synchronizer and mutated only at its
// transition points: once by the configuration message, then every turn
// by local input before the direction is sent and by the server's turn
// data after it is received.
package session

import "gosnake/internal/game"

// Session is the client-side game aggregate.
type Session struct {
	ID        int
	Direction game.Direction
	Food      game.Point
	Snakes    game.SnakeSet
	Killed    bool
}

// New returns an empty session heading right, as before any server
// contact.
func New() *Session {
	return &Session{Direction: game.Right}
}

// Configure applies the one-time initial configuration.
func (s *Session) Configure(id int, food game.Point, snakes game.SnakeSet) {
	s.ID = id
	s.Food = food
	s.Snakes = snakes
}

// Apply replaces id, food and snakes with the server's turn data and
// returns the snakes and food of the previous turn so the caller can
// erase them.
func (s *Session) Apply(id int, food game.Point, snakes game.SnakeSet) (game.SnakeSet, game.Point) {
	prevSnakes, prevFood := s.Snakes, s.Food
	s.ID = id
	s.Food = food
	s.Snakes = snakes
	return prevSnakes, prevFood
}

// Self returns this client's snake, or nil when the id no longer indexes
// a snake.
func (s *Session) Self() game.Snake {
	if !s.Snakes.Valid(s.ID) {
		return nil
	}
	return s.Snakes[s.ID]
}
