package transport

import (
	"context"
	"fmt"
	"net"
	"time"

	"nhooyr.io/websocket"

	"gosnake/internal/protocol"
	"gosnake/util"
)

// DefaultWSPath is the endpoint game servers usually expose.
const DefaultWSPath = "/play"

// WSDialer carries the line protocol over a websocket.  Each outbound
// write becomes one text message; inbound text messages are read back
// to back as a single stream, so a line may span messages.
type WSDialer struct {
	Timeout time.Duration
	Path    string
}

// Dial performs the HTTP upgrade against ws://address/Path.
func (d *WSDialer) Dial(ctx context.Context, address string) (net.Conn, error) {
	path := d.Path
	if path == "" {
		path = DefaultWSPath
	}
	if d.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}

	u := util.WebSocketURL(address, path)
	c, _, err := websocket.Dial(ctx, u, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket dial %s: %w", u, err)
	}
	c.SetReadLimit(protocol.MaxMessageSize)

	// The stream must outlive the dial context.
	return websocket.NetConn(context.Background(), c, websocket.MessageText), nil
}

// Close is a no-op; each connection owns its websocket.
func (d *WSDialer) Close() error { return nil }
