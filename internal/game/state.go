package game

// State is the per-player game state reported by the server after every
// turn.  The client never computes transitions, it only observes them.
// The zero value is not a state; it is what a message without a state
// decodes to.
type State int

const (
	Ready State = iota + 1
	Playing
	Lost
)

func (s State) String() string {
	switch s {
	case Ready:
		return "Ready"
	case Playing:
		return "Playing"
	case Lost:
		return "Lost"
	default:
		return "Invalid"
	}
}

// UnmarshalText decodes "Ready", "Playing" or "Lost".
func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Ready":
		*s = Ready
	case "Playing":
		*s = Playing
	case "Lost":
		*s = Lost
	default:
		return &UnknownTagError{Kind: "state", Value: string(text)}
	}
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
