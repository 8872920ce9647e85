package display

import (
	"bufio"
	"io"
	"strconv"
)

// Pre-built CSI fragments.
var (
	csiClear      = []byte("\x1b[2J")
	csiDefaultFg  = []byte("\x1b[39m")
	csiCursorShow = []byte("\x1b[?25h")
	csiSGR0       = []byte("\x1b[0m")
)

var ansiFg = map[Color]string{
	ColorBlue:   "\x1b[34m",
	ColorRed:    "\x1b[31m",
	ColorYellow: "\x1b[33m",
}

// ANSI writes xterm escape sequences to an underlying writer.  The
// writer is expected to be a terminal already in raw mode.
type ANSI struct {
	w   *bufio.Writer
	err error
}

// NewANSI wraps w.
func NewANSI(w io.Writer) *ANSI {
	return &ANSI{w: bufio.NewWriterSize(w, 8192)}
}

func (a *ANSI) Clear() { a.write(csiClear) }

func (a *ANSI) MoveTo(x, y int) {
	if x < 1 {
		x = 1
	}
	if y < 1 {
		y = 1
	}
	buf := make([]byte, 0, 16)
	buf = append(buf, "\x1b["...)
	buf = strconv.AppendInt(buf, int64(y), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(x), 10)
	buf = append(buf, 'H')
	a.write(buf)
}

func (a *ANSI) SetColor(c Color) {
	seq, ok := ansiFg[c]
	if !ok {
		a.ResetColor()
		return
	}
	a.write([]byte(seq))
}

func (a *ANSI) ResetColor() { a.write(csiDefaultFg) }

func (a *ANSI) WriteRune(r rune) {
	if a.err != nil {
		return
	}
	_, a.err = a.w.WriteRune(r)
}

func (a *ANSI) Flush() error {
	if a.err == nil {
		a.err = a.w.Flush()
	}
	err := a.err
	a.err = nil
	return err
}

// Reset emits the attribute reset and makes the cursor visible, for use
// before handing the terminal back to the shell.
func (a *ANSI) Reset() error {
	a.write(csiSGR0)
	a.write(csiCursorShow)
	return a.Flush()
}

func (a *ANSI) write(p []byte) {
	if a.err != nil {
		return
	}
	_, a.err = a.w.Write(p)
}
