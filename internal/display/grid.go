package display

import "strings"

// GridCell is one character cell of a Grid.
type GridCell struct {
	Rune  rune
	Color Color
}

// Grid is an in-memory Sink.  Writes outside its bounds are dropped but
// still advance the cursor, like a terminal with auto-wrap off.
type Grid struct {
	width, height int
	cells         []GridCell
	curX, curY    int
	color         Color
	flushes       int
}

// NewGrid returns a blank width×height grid.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height, cells: make([]GridCell, width*height)}
	g.Clear()
	g.curX, g.curY = 1, 1
	return g
}

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = GridCell{Rune: ' '}
	}
}

func (g *Grid) MoveTo(x, y int) {
	if x < 1 {
		x = 1
	}
	if y < 1 {
		y = 1
	}
	g.curX, g.curY = x, y
}

func (g *Grid) SetColor(c Color) { g.color = c }

func (g *Grid) ResetColor() { g.color = ColorDefault }

func (g *Grid) WriteRune(r rune) {
	if g.curX <= g.width && g.curY <= g.height {
		g.cells[(g.curY-1)*g.width+g.curX-1] = GridCell{Rune: r, Color: g.color}
	}
	g.curX++
}

func (g *Grid) Flush() error {
	g.flushes++
	return nil
}

// At returns the cell at 1-based (x, y).
func (g *Grid) At(x, y int) GridCell {
	if x < 1 || y < 1 || x > g.width || y > g.height {
		return GridCell{}
	}
	return g.cells[(y-1)*g.width+x-1]
}

// Cursor returns the current cursor position.
func (g *Grid) Cursor() (x, y int) { return g.curX, g.curY }

// Color returns the colour currently selected for writes.
func (g *Grid) Color() Color { return g.color }

// Flushes counts Flush calls.
func (g *Grid) Flushes() int { return g.flushes }

// Line returns row y as a string, trailing blanks included.
func (g *Grid) Line(y int) string {
	var sb strings.Builder
	for x := 1; x <= g.width; x++ {
		sb.WriteRune(g.At(x, y).Rune)
	}
	return sb.String()
}

// String renders the whole grid, one line per row.
func (g *Grid) String() string {
	lines := make([]string, g.height)
	for y := 1; y <= g.height; y++ {
		lines[y-1] = g.Line(y)
	}
	return strings.Join(lines, "\n")
}
