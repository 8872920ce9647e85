// Package display abstracts the character terminal the game is drawn on.
//
// A Sink is a cursor-addressed character surface: callers move the
// cursor, pick a colour, write runes and flush.  Coordinates are 1-based
// like terminal cursor addressing.  Writes are buffered until Flush;
// write errors are sticky and reported by Flush.
//
// Three sinks are provided: ANSI (raw escape sequences into an
// io.Writer, for a real terminal in raw mode), Screen (a tcell screen)
// and Grid (an in-memory cell grid, for tests and headless use).
package display

// Color is a foreground colour.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlue
	ColorRed
	ColorYellow
)

func (c Color) String() string {
	switch c {
	case ColorBlue:
		return "blue"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	default:
		return "default"
	}
}

// Sink is the display capability the renderer draws on.
type Sink interface {
	// Clear blanks the whole surface.  The cursor position is undefined
	// afterwards; callers MoveTo before writing.
	Clear()
	// MoveTo places the cursor at column x, row y (1-based).  Column 0
	// is treated as column 1.
	MoveTo(x, y int)
	// SetColor selects the foreground colour for subsequent writes.
	SetColor(c Color)
	// ResetColor restores the default foreground colour.
	ResetColor()
	// WriteRune draws r at the cursor and advances it one column.
	WriteRune(r rune)
	// Flush makes every buffered write visible and returns the first
	// error seen since the previous Flush.
	Flush() error
}
