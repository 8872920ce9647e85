package game

import "fmt"

// Direction is the heading a player asks the server to apply on the
// next turn.
type Direction int

const (
	Unknown Direction = iota
	Up
	Down
	Left
	Right
)

// String is the upper-case form used in logs.
func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

var directionNames = map[Direction]string{
	Unknown: "Unknown",
	Up:      "Up",
	Down:    "Down",
	Left:    "Left",
	Right:   "Right",
}

// MarshalText encodes the wire name ("Up", "Down", ...).
func (d Direction) MarshalText() ([]byte, error) {
	name, ok := directionNames[d]
	if !ok {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a wire name.
func (d *Direction) UnmarshalText(text []byte) error {
	for dir, name := range directionNames {
		if name == string(text) {
			*d = dir
			return nil
		}
	}
	return &UnknownTagError{Kind: "direction", Value: string(text)}
}

// UnknownTagError is returned when a wire discriminant is outside its
// closed set of values.
type UnknownTagError struct {
	Kind  string
	Value string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
}
