package display

import "github.com/gdamore/tcell/v2"

var tcellFg = map[Color]tcell.Color{
	ColorBlue:   tcell.ColorBlue,
	ColorRed:    tcell.ColorRed,
	ColorYellow: tcell.ColorYellow,
}

// Screen draws on a tcell screen.  tcell has no write cursor, so Screen
// keeps one and parks the visible cursor there on every Flush.
type Screen struct {
	screen     tcell.Screen
	curX, curY int
	style      tcell.Style
}

// NewScreen wraps an initialised tcell screen.
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s, curX: 1, curY: 1, style: tcell.StyleDefault}
}

// StyleFor returns the tcell style used for c.
func StyleFor(c Color) tcell.Style {
	fg, ok := tcellFg[c]
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(fg)
}

func (s *Screen) Clear() { s.screen.Clear() }

func (s *Screen) MoveTo(x, y int) {
	if x < 1 {
		x = 1
	}
	if y < 1 {
		y = 1
	}
	s.curX, s.curY = x, y
}

func (s *Screen) SetColor(c Color) { s.style = StyleFor(c) }

func (s *Screen) ResetColor() { s.style = tcell.StyleDefault }

func (s *Screen) WriteRune(r rune) {
	s.screen.SetContent(s.curX-1, s.curY-1, r, nil, s.style)
	s.curX++
}

func (s *Screen) Flush() error {
	s.screen.ShowCursor(s.curX-1, s.curY-1)
	s.screen.Show()
	return nil
}
