// Package render draws the game onto a display.Sink.
//
// Only the static field is drawn in full; food and snakes are overlays
// drawn on top of it and erased by drawing the blank glyph over them.
// There is no off-screen frame, so callers must erase old overlays
// before drawing new ones for the same turn.
//
// Every operation flushes before returning and leaves the cursor at the
// parking position (column 1, one row below the field), so raw writes
// that follow never land on top of game art.
package render

import (
	"gosnake/internal/display"
	"gosnake/internal/errors"
	"gosnake/internal/game"
)

// Palette selects the colour of each element.
type Palette struct {
	Field    display.Color
	Food     display.Color
	Self     display.Color
	Opponent display.Color
}

// DefaultPalette is blue borders, red food, red for our snake and yellow
// for everyone else.
var DefaultPalette = Palette{
	Field:    display.ColorBlue,
	Food:     display.ColorRed,
	Self:     display.ColorRed,
	Opponent: display.ColorYellow,
}

// Renderer draws on a single sink.  It remembers the field height only
// to compute the parking row.
type Renderer struct {
	sink    display.Sink
	palette Palette
	height  int
}

// New returns a Renderer using DefaultPalette.
func New(sink display.Sink) *Renderer {
	return &Renderer{sink: sink, palette: DefaultPalette}
}

// ParkRow is the row the cursor rests on between draws.
func (r *Renderer) ParkRow() int { return r.height + 1 }

// DrawField clears the surface and draws every cell of f.
func (r *Renderer) DrawField(f game.Field) error {
	r.height = f.Height()

	r.sink.Clear()
	r.sink.MoveTo(1, 1)
	r.sink.SetColor(r.palette.Field)
	for y, row := range f.Rows() {
		for _, c := range row {
			r.sink.WriteRune(c.Glyph())
		}
		// explicit reposition, a bare newline would leave the column
		// wherever raw mode puts it
		r.sink.MoveTo(1, y+2)
	}
	r.sink.ResetColor()
	r.park()
	return r.flush("draw field")
}

// DrawFood draws the food glyph at p.
func (r *Renderer) DrawFood(p game.Point) error {
	r.sink.MoveTo(p.X, p.Y)
	r.sink.SetColor(r.palette.Food)
	r.sink.WriteRune(game.FoodGlyph)
	r.sink.ResetColor()
	r.park()
	return r.flush("draw food")
}

// EraseFood blanks the food cell at p.
func (r *Renderer) EraseFood(p game.Point) error {
	r.sink.MoveTo(p.X, p.Y)
	r.sink.WriteRune(game.EmptyGlyph)
	r.park()
	return r.flush("erase food")
}

// DrawSnake writes glyph at every segment of body.  Passing
// game.EmptyGlyph erases the snake.
func (r *Renderer) DrawSnake(body game.Snake, self bool, glyph rune) error {
	if self {
		r.sink.SetColor(r.palette.Self)
	} else {
		r.sink.SetColor(r.palette.Opponent)
	}
	for _, p := range body {
		r.sink.MoveTo(p.X, p.Y)
		r.sink.WriteRune(glyph)
	}
	r.park()
	r.sink.ResetColor()
	return r.flush("draw snake")
}

// DrawAllSnakes draws every snake; the one at selfID in the self colour.
func (r *Renderer) DrawAllSnakes(snakes game.SnakeSet, selfID int, glyph rune) error {
	for id, s := range snakes {
		if err := r.DrawSnake(s, id == selfID, glyph); err != nil {
			return err
		}
	}
	return nil
}

// ClearAllSnakes erases every snake in snakes.
func (r *Renderer) ClearAllSnakes(snakes game.SnakeSet) error {
	return r.DrawAllSnakes(snakes, -1, game.EmptyGlyph)
}

// Prompt clears the surface and writes msg on the first row.
func (r *Renderer) Prompt(msg string) error {
	r.sink.Clear()
	r.sink.MoveTo(1, 1)
	r.writeString(msg)
	r.sink.MoveTo(1, 2)
	return r.flush("prompt")
}

// Status writes msg on the parking row and moves the cursor below it.
func (r *Renderer) Status(msg string) error {
	r.park()
	r.writeString(msg)
	r.sink.MoveTo(1, r.ParkRow()+1)
	return r.flush("status")
}

func (r *Renderer) writeString(s string) {
	for _, c := range s {
		r.sink.WriteRune(c)
	}
}

func (r *Renderer) park() { r.sink.MoveTo(1, r.ParkRow()) }

func (r *Renderer) flush(op string) error {
	if err := r.sink.Flush(); err != nil {
		return &errors.RenderError{Op: op, Err: err}
	}
	return nil
}
