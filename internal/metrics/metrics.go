// Package metrics provides lightweight, lock-free counters for a game
// session.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks runtime metrics for one game session.
type Collector struct {
	turns       atomic.Int64
	votes       atomic.Int64
	directions  atomic.Int64
	inputsSeen  atomic.Int64
	inputsDrop  atomic.Int64
	bytesIn     atomic.Int64
	bytesOut    atomic.Int64
	errorsTotal atomic.Int64

	mu           sync.RWMutex
	startTime    time.Time
	playingSince time.Time
	lastError    time.Time
	lastErrorMsg string
}

// New creates a collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Game metrics ─────────────────────────────────────────────────────

// GameStarted records the lobby → playing transition.
func (c *Collector) GameStarted() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.playingSince = time.Now()
	c.mu.Unlock()
}

// TurnPlayed counts a completed turn cycle.
func (c *Collector) TurnPlayed() {
	if c == nil {
		return
	}
	c.turns.Add(1)
}

// Turns returns the number of completed turns.
func (c *Collector) Turns() int64 {
	if c == nil {
		return 0
	}
	return c.turns.Load()
}

// VoteSent counts a force-start vote.
func (c *Collector) VoteSent() {
	if c == nil {
		return
	}
	c.votes.Add(1)
}

// Votes returns the number of force-start votes sent.
func (c *Collector) Votes() int64 {
	if c == nil {
		return 0
	}
	return c.votes.Load()
}

// DirectionSent counts a direction report.
func (c *Collector) DirectionSent() {
	if c == nil {
		return
	}
	c.directions.Add(1)
}

// Directions returns the number of direction reports sent.
func (c *Collector) Directions() int64 {
	if c == nil {
		return 0
	}
	return c.directions.Load()
}

// InputsPolled records one drain that parsed n key events, all but the
// last of which are discarded.
func (c *Collector) InputsPolled(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.inputsSeen.Add(int64(n))
	c.inputsDrop.Add(int64(n - 1))
}

// InputsDiscarded returns how many key events were collapsed away.
func (c *Collector) InputsDiscarded() int64 {
	if c == nil {
		return 0
	}
	return c.inputsDrop.Load()
}

// ── I/O metrics ──────────────────────────────────────────────────────

// BytesReceived records n bytes read from the server.
func (c *Collector) BytesReceived(n int64) {
	if c == nil {
		return
	}
	c.bytesIn.Add(n)
}

// BytesSent records n bytes written to the server.
func (c *Collector) BytesSent(n int64) {
	if c == nil {
		return
	}
	c.bytesOut.Add(n)
}

// TotalBytesIn returns total bytes received.
func (c *Collector) TotalBytesIn() int64 {
	if c == nil {
		return 0
	}
	return c.bytesIn.Load()
}

// TotalBytesOut returns total bytes sent.
func (c *Collector) TotalBytesOut() int64 {
	if c == nil {
		return 0
	}
	return c.bytesOut.Load()
}

// ── Error metrics ────────────────────────────────────────────────────

// RecordError increments the error counter and stores the message.
func (c *Collector) RecordError(msg string) {
	if c == nil {
		return
	}
	c.errorsTotal.Add(1)
	c.mu.Lock()
	c.lastError = time.Now()
	c.lastErrorMsg = msg
	c.mu.Unlock()
}

// TotalErrors returns the lifetime error count.
func (c *Collector) TotalErrors() int64 {
	if c == nil {
		return 0
	}
	return c.errorsTotal.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Uptime           string `json:"uptime"`
	PlayTime         string `json:"play_time,omitempty"`
	Turns            int64  `json:"turns"`
	Votes            int64  `json:"force_start_votes"`
	Directions       int64  `json:"direction_reports"`
	InputsSeen       int64  `json:"inputs_seen"`
	InputsDiscarded  int64  `json:"inputs_discarded"`
	BytesIn          int64  `json:"bytes_in"`
	BytesOut         int64  `json:"bytes_out"`
	ErrorsTotal      int64  `json:"errors_total"`
	LastError        string `json:"last_error,omitempty"`
	LastErrorMessage string `json:"last_error_message,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Uptime:          time.Since(c.startTime).Truncate(time.Second).String(),
		Turns:           c.turns.Load(),
		Votes:           c.votes.Load(),
		Directions:      c.directions.Load(),
		InputsSeen:      c.inputsSeen.Load(),
		InputsDiscarded: c.inputsDrop.Load(),
		BytesIn:         c.bytesIn.Load(),
		BytesOut:        c.bytesOut.Load(),
		ErrorsTotal:     c.errorsTotal.Load(),
	}
	if !c.playingSince.IsZero() {
		s.PlayTime = time.Since(c.playingSince).Truncate(time.Second).String()
	}
	if !c.lastError.IsZero() {
		s.LastError = c.lastError.Format(time.RFC3339)
		s.LastErrorMessage = c.lastErrorMsg
	}
	return s
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}
