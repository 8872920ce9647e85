// Package protocol defines the messages exchanged with the game server
// and the newline-delimited JSON framing they travel in.
//
// Every discriminant is a closed enum: decoding a value outside the set
// yields a ProtocolError, never a silently ignored message.  Inbound
// messages also check that their required fields were present, since
// encoding/json fills absent keys with zero values.
package protocol

import (
	"fmt"

	"gosnake/internal/game"
)

// Event is the discriminant of lobby and turn events.
type Event int

const (
	EventWaitInLobby Event = iota + 1
	EventStart
	EventNewTurn
)

var eventNames = map[Event]string{
	EventWaitInLobby: "WaitInLobby",
	EventStart:       "Start",
	EventNewTurn:     "NewTurn",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// MarshalText encodes the wire name.
func (e Event) MarshalText() ([]byte, error) {
	name, ok := eventNames[e]
	if !ok {
		return nil, fmt.Errorf("invalid event %d", int(e))
	}
	return []byte(name), nil
}

// UnmarshalText decodes the wire name.
func (e *Event) UnmarshalText(text []byte) error {
	for ev, name := range eventNames {
		if name == string(text) {
			*e = ev
			return nil
		}
	}
	return &game.UnknownTagError{Kind: "event", Value: string(text)}
}

// EventMessage carries a lobby or turn event.
type EventMessage struct {
	Event Event `json:"event"`
}

// ForceStartMessage is the lobby vote sent in reply to every
// WaitInLobby.
type ForceStartMessage struct {
	ForceStart bool `json:"force_start"`
}

// ConfigMessage is the one-time game configuration sent after Start.
type ConfigMessage struct {
	ID     int           `json:"id"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Snakes game.SnakeSet `json:"snakes"`
	Food   game.Point    `json:"food"`
}

// DirectionMessage reports the chosen direction, once per turn.
type DirectionMessage struct {
	Direction game.Direction `json:"direction"`
}

// TurnMessage is the authoritative state after a turn.
type TurnMessage struct {
	ID     int           `json:"id"`
	Food   game.Point    `json:"food"`
	Snakes game.SnakeSet `json:"snakes"`
}

// StateMessage reports whether the player is still in the game.
type StateMessage struct {
	State game.State `json:"state"`
}

func missing(field string) error { return fmt.Errorf("missing %q", field) }

// Validate reports an absent event.
func (m EventMessage) Validate() error {
	if m.Event == 0 {
		return missing("event")
	}
	return nil
}

// Validate reports absent snakes or food and an id that indexes no
// snake.  Field dimensions are checked when the field is built.
func (m ConfigMessage) Validate() error {
	switch {
	case m.Snakes == nil:
		return missing("snakes")
	case m.Food == (game.Point{}):
		return missing("food")
	case !m.Snakes.Valid(m.ID):
		return fmt.Errorf("id %d for %d snakes", m.ID, len(m.Snakes))
	}
	return nil
}

// Validate reports absent snakes or food.
func (m TurnMessage) Validate() error {
	switch {
	case m.Snakes == nil:
		return missing("snakes")
	case m.Food == (game.Point{}):
		return missing("food")
	}
	return nil
}

// Validate reports an absent state.
func (m StateMessage) Validate() error {
	if m.State == 0 {
		return missing("state")
	}
	return nil
}
