package protocol

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"net"
	"time"

	"gosnake/internal/errors"
	"gosnake/internal/game"
	"gosnake/internal/metrics"
)

// MaxMessageSize bounds a single inbound line.
const MaxMessageSize = 1 << 20

// Conn frames JSON messages one per line over a stream.
type Conn struct {
	rw      io.ReadWriter
	r       *bufio.Reader
	w       *bufio.Writer
	addr    string
	timeout time.Duration
	metrics *metrics.Collector

	last []byte
}

// NewConn wraps rw.  addr only labels errors.
func NewConn(rw io.ReadWriter, addr string) *Conn {
	return &Conn{
		rw:   rw,
		r:    bufio.NewReaderSize(rw, 4096),
		w:    bufio.NewWriter(rw),
		addr: addr,
	}
}

// SetMetrics records traffic into m.
func (c *Conn) SetMetrics(m *metrics.Collector) { c.metrics = m }

// SetReadTimeout sets a per-message read deadline when the underlying
// stream is a net.Conn.  Zero waits forever.
func (c *Conn) SetReadTimeout(d time.Duration) { c.timeout = d }

// Last returns the raw text of the most recently received message,
// without its newline.
func (c *Conn) Last() string { return string(c.last) }

// Send encodes v as one JSON line and flushes it.
func (c *Conn) Send(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap("encode", c.addr, err)
	}
	data = append(data, '\n')
	if _, err := c.w.Write(data); err != nil {
		return errors.Wrap("write", c.addr, err)
	}
	if err := c.w.Flush(); err != nil {
		return errors.Wrap("write", c.addr, err)
	}
	c.metrics.BytesSent(int64(len(data)))
	return nil
}

// validator is implemented by inbound messages with required fields.
type validator interface {
	Validate() error
}

// Receive blocks for the next line and decodes it into v.  An unknown
// discriminant or a missing required field is reported as a
// *errors.ProtocolError for stage; any other failure is a
// *errors.NetworkError.
func (c *Conn) Receive(stage string, v interface{}) error {
	if nc, ok := c.rw.(net.Conn); ok && c.timeout > 0 {
		nc.SetReadDeadline(time.Now().Add(c.timeout)) //nolint:errcheck
	}

	line, err := c.readLine()
	if err != nil {
		return err
	}
	c.metrics.BytesReceived(int64(len(line)))
	c.last = bytes.TrimRight(line, "\r\n")

	if err := json.Unmarshal(c.last, v); err != nil {
		var tag *game.UnknownTagError
		if errors.As(err, &tag) {
			return errors.Unexpected(stage, tag.Kind+" "+`"`+tag.Value+`"`, err)
		}
		return errors.Wrap("decode", c.addr, err)
	}
	if m, ok := v.(validator); ok {
		if err := m.Validate(); err != nil {
			return errors.Unexpected(stage, "message "+string(c.last), err)
		}
	}
	return nil
}

func (c *Conn) readLine() ([]byte, error) {
	var line []byte
	for {
		chunk, err := c.r.ReadSlice('\n')
		line = append(line, chunk...)
		if len(line) > MaxMessageSize {
			return nil, errors.Wrap("read", c.addr, errors.ErrMessageTooLong)
		}
		switch {
		case err == nil:
			return line, nil
		case err == bufio.ErrBufferFull:
			continue
		case err == io.EOF && len(bytes.TrimSpace(line)) > 0:
			// last message without a trailing newline
			return line, nil
		default:
			return nil, errors.Wrap("read", c.addr, err)
		}
	}
}
