//go:build unix

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"gosnake/internal/errors"
)

// readChunk is the size of a single read from stdin.
const readChunk = 256

type termState struct {
	fd  int
	old *term.State
}

func (s *termState) restore() error { return term.Restore(s.fd, s.old) }

// Open puts stdin into raw mode.  Output goes to stdout.
func Open() (*Terminal, error) {
	return OpenFiles(os.Stdin, os.Stdout)
}

// OpenFiles puts in into raw mode and draws on out.
func OpenFiles(in, out *os.File) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.ErrNotATerminal
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &Terminal{
		in:    in,
		out:   out,
		inFd:  fd,
		state: &termState{fd: fd, old: old},
	}, nil
}

// Size returns the terminal's columns and rows.
func (t *Terminal) Size() (width, height int) {
	ws, err := unix.IoctlGetWinsize(int(t.out.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// ReadAvailable returns every byte already waiting on stdin.  It polls
// with a zero timeout, so it returns immediately when nothing is
// pending.
func (t *Terminal) ReadAvailable() ([]byte, error) {
	return readAvailable(t.inFd)
}

func readAvailable(fd int) ([]byte, error) {
	var (
		out []byte
		buf [readChunk]byte
	)
	for {
		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, 0)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return out, err
		}
		if n == 0 || fds[0].Revents&unix.POLLIN == 0 {
			return out, nil
		}

		rn, err := unix.Read(fd, buf[:])
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return out, err
		}
		if rn == 0 {
			// EOF
			return out, nil
		}
		out = append(out, buf[:rn]...)
	}
}
