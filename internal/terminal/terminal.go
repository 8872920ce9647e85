// Package terminal acquires the controlling terminal for the game: raw
// mode on stdin so keys arrive unbuffered and unechoed, a non-blocking
// way to read what has been typed, and restoration of the previous mode
// on Close.
package terminal

import (
	"io"
	"os"
)

// Terminal is a terminal in raw mode.  Close must be called on every
// exit path; it is safe to call more than once.
type Terminal struct {
	in    *os.File
	out   *os.File
	inFd  int
	state restorer
}

type restorer interface {
	restore() error
}

// Out returns the writer the display should draw on.
func (t *Terminal) Out() io.Writer { return t.out }

// Close restores the terminal mode saved by Open.
func (t *Terminal) Close() error {
	if t.state == nil {
		return nil
	}
	err := t.state.restore()
	t.state = nil
	return err
}
