package game

import "errors"

// Glyphs drawn for each kind of field element.
const (
	BorderGlyph = '#'
	EmptyGlyph  = ' '
	FoodGlyph   = 'Ծ'
	SnakeGlyph  = 'o'
)

// MinFieldSize is the smallest width or height that still has a border
// on every side.
const MinFieldSize = 2

// ErrFieldTooSmall is returned by NewField for dimensions below
// MinFieldSize.
var ErrFieldTooSmall = errors.New("field must be at least 2x2")

// Cell is one cell of the static field layer.
type Cell uint8

const (
	Empty Cell = iota
	Border
)

// Glyph returns the rune a cell is drawn with.
func (c Cell) Glyph() rune {
	if c == Border {
		return BorderGlyph
	}
	return EmptyGlyph
}

// Field is the static border/empty layer of the play area.  Food and
// snakes are overlays and are never stored here.
type Field struct {
	rows [][]Cell
}

// NewField builds a width×height grid whose outer ring is Border and
// whose interior is Empty.
func NewField(width, height int) (Field, error) {
	if width < MinFieldSize || height < MinFieldSize {
		return Field{}, ErrFieldTooSmall
	}

	border := make([]Cell, width)
	for i := range border {
		border[i] = Border
	}
	inner := make([]Cell, width)
	inner[0], inner[width-1] = Border, Border

	rows := make([][]Cell, height)
	for y := range rows {
		row := inner
		if y == 0 || y == height-1 {
			row = border
		}
		rows[y] = append([]Cell(nil), row...)
	}
	return Field{rows: rows}, nil
}

// Width is the number of columns.
func (f Field) Width() int {
	if len(f.rows) == 0 {
		return 0
	}
	return len(f.rows[0])
}

// Height is the number of rows.
func (f Field) Height() int { return len(f.rows) }

// At returns the cell at 0-based column x, row y.
func (f Field) At(x, y int) Cell { return f.rows[y][x] }

// Rows exposes the grid row by row, top to bottom.  Callers must not
// modify the returned slices.
func (f Field) Rows() [][]Cell { return f.rows }

// Inside reports whether the 1-based point p lies within the field.
func (f Field) Inside(p Point) bool {
	return p.X >= 1 && p.Y >= 1 && p.X <= f.Width() && p.Y <= f.Height()
}
