//go:build !unix

package terminal

import (
	"os"

	"gosnake/internal/errors"
)

var errUnsupported = errors.New("raw terminal input is only supported on unix; use --display tcell")

// Open is not available on this platform.
func Open() (*Terminal, error) { return nil, errUnsupported }

// OpenFiles is not available on this platform.
func OpenFiles(in, out *os.File) (*Terminal, error) { return nil, errUnsupported }

// Size returns a conventional default.
func (t *Terminal) Size() (width, height int) { return 80, 24 }

// ReadAvailable is not available on this platform.
func (t *Terminal) ReadAvailable() ([]byte, error) { return nil, errUnsupported }
