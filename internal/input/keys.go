// Package input turns raw keyboard bytes into key events and collapses
// everything typed between two polls into the single most recent event.
package input

import "unicode/utf8"

// Key identifies a parsed key.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
	KeyOther
)

func (k Key) String() string {
	switch k {
	case KeyRune:
		return "Rune"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyCtrlC:
		return "Ctrl-C"
	case KeyOther:
		return "Other"
	default:
		return "None"
	}
}

// Event is one key press.  Rune is set only for KeyRune.
type Event struct {
	Key  Key
	Rune rune
}

// Parse decodes every complete key in data.  Unknown escape sequences,
// truncated sequences and invalid UTF-8 are skipped; they produce no
// event and are not carried over to the next call.
func Parse(data []byte) []Event {
	var events []Event
	for i := 0; i < len(data); {
		b := data[i]
		switch {
		case b == 0x1b:
			n, ev, ok := parseEscape(data[i:])
			if ok {
				events = append(events, ev)
			}
			i += n

		case b == '\r' || b == '\n':
			events = append(events, Event{Key: KeyEnter})
			i++

		case b == 0x03:
			events = append(events, Event{Key: KeyCtrlC})
			i++

		case b < 0x20 || b == 0x7f:
			events = append(events, Event{Key: KeyOther})
			i++

		case b < utf8.RuneSelf:
			events = append(events, Event{Key: KeyRune, Rune: rune(b)})
			i++

		default:
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError {
				events = append(events, Event{Key: KeyRune, Rune: r})
			}
			i += size
		}
	}
	return events
}

// parseEscape handles data starting with ESC and returns how many bytes
// it consumed.  ok is false for sequences that are skipped.
func parseEscape(data []byte) (n int, ev Event, ok bool) {
	if len(data) == 1 {
		return 1, Event{Key: KeyEscape}, true
	}
	switch data[1] {
	case '[':
		return parseCSI(data)
	case 'O':
		// SS3: ESC O <final>, sent by terminals in application cursor mode
		if len(data) < 3 {
			return len(data), Event{}, false
		}
		if k, found := cursorKey(data[2]); found {
			return 3, Event{Key: k}, true
		}
		return 3, Event{}, false
	case 0x1b:
		// ESC ESC: first one stands alone
		return 1, Event{Key: KeyEscape}, true
	default:
		// Alt+key, reported as the key itself is not wanted here
		return 2, Event{Key: KeyOther}, true
	}
}

// parseCSI handles ESC [ params final.
func parseCSI(data []byte) (int, Event, bool) {
	for end := 2; end < len(data); end++ {
		b := data[end]
		if b >= 0x40 && b <= 0x7e {
			if end == 2 || onlyParams(data[2:end]) {
				if k, found := cursorKey(b); found {
					return end + 1, Event{Key: k}, true
				}
			}
			return end + 1, Event{}, false
		}
		if b < 0x20 || b > 0x3f {
			// not a CSI parameter/intermediate byte: malformed, drop
			// what we have and resume at this byte
			return end, Event{}, false
		}
	}
	// truncated
	return len(data), Event{}, false
}

func onlyParams(p []byte) bool {
	for _, b := range p {
		if (b < '0' || b > '9') && b != ';' {
			return false
		}
	}
	return true
}

func cursorKey(final byte) (Key, bool) {
	switch final {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	}
	return KeyNone, false
}
