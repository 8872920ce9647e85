// Package transport opens the byte stream to the game server.  The
// protocol layer only needs a net.Conn; how it is carried, a raw TCP
// socket or a websocket upgraded over HTTP, is decided here.
package transport

import (
	"context"
	"fmt"
	"net"
	"time"
)

// Transport names accepted by New.
const (
	KindTCP       = "tcp"
	KindWebSocket = "ws"
)

// Dialer opens outbound connections to the game server.
type Dialer interface {
	// Dial establishes a connection to address ("host:port").
	Dial(ctx context.Context, address string) (net.Conn, error)

	// Close releases any long-lived resources held by the dialer.
	// Stateless dialers return nil.
	Close() error
}

// New returns the dialer for kind.  path is only used by websocket
// dialers.
func New(kind string, timeout time.Duration, path string) (Dialer, error) {
	switch kind {
	case KindTCP, "":
		return &TCPDialer{Timeout: timeout}, nil
	case KindWebSocket:
		return &WSDialer{Timeout: timeout, Path: path}, nil
	default:
		return nil, fmt.Errorf("unknown transport %q", kind)
	}
}
