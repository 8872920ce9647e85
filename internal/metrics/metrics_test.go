package metrics

import (
	"encoding/json"
	"testing"
)

func TestCollector_GameCounters(t *testing.T) {
	c := New()

	c.VoteSent()
	c.VoteSent()
	c.GameStarted()
	c.DirectionSent()
	c.TurnPlayed()

	if c.Votes() != 2 {
		t.Errorf("votes = %d, want 2", c.Votes())
	}
	if c.Directions() != 1 || c.Turns() != 1 {
		t.Errorf("directions = %d, turns = %d", c.Directions(), c.Turns())
	}
	if c.Snapshot().PlayTime == "" {
		t.Error("play time should be set after GameStarted")
	}
}

func TestCollector_InputsPolled(t *testing.T) {
	c := New()

	c.InputsPolled(0) // nothing pending, nothing recorded
	c.InputsPolled(1)
	c.InputsPolled(4)

	if got := c.InputsDiscarded(); got != 3 {
		t.Errorf("discarded = %d, want 3", got)
	}
	if got := c.Snapshot().InputsSeen; got != 5 {
		t.Errorf("seen = %d, want 5", got)
	}
}

func TestCollector_Bytes(t *testing.T) {
	c := New()

	c.BytesReceived(1024)
	c.BytesSent(512)
	c.BytesReceived(100)

	if c.TotalBytesIn() != 1124 {
		t.Errorf("bytes in = %d, want 1124", c.TotalBytesIn())
	}
	if c.TotalBytesOut() != 512 {
		t.Errorf("bytes out = %d, want 512", c.TotalBytesOut())
	}
}

func TestCollector_Snapshot(t *testing.T) {
	c := New()
	c.TurnPlayed()
	c.BytesReceived(100)
	c.BytesSent(50)
	c.RecordError("test")

	snap := c.Snapshot()
	if snap.Turns != 1 {
		t.Errorf("snap turns = %d", snap.Turns)
	}
	if snap.BytesIn != 100 {
		t.Errorf("snap bytes in = %d", snap.BytesIn)
	}
	if snap.ErrorsTotal != 1 || c.TotalErrors() != 1 {
		t.Errorf("snap errors = %d", snap.ErrorsTotal)
	}
	if snap.LastErrorMessage != "test" {
		t.Errorf("snap error msg = %q", snap.LastErrorMessage)
	}
}

func TestCollector_JSON(t *testing.T) {
	c := New()
	c.DirectionSent()
	c.BytesSent(42)

	raw := c.JSON()
	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		t.Fatalf("JSON parse error: %v", err)
	}
	if snap.Directions != 1 {
		t.Errorf("JSON directions = %d", snap.Directions)
	}
	if snap.BytesOut != 42 {
		t.Errorf("JSON bytes out = %d", snap.BytesOut)
	}
}

func TestNilCollector_NoOps(t *testing.T) {
	var c *Collector

	// None of these should panic.
	c.GameStarted()
	c.TurnPlayed()
	c.VoteSent()
	c.DirectionSent()
	c.InputsPolled(3)
	c.BytesReceived(100)
	c.BytesSent(100)
	c.RecordError("test")

	if c.Turns() != 0 || c.TotalBytesIn() != 0 || c.TotalErrors() != 0 {
		t.Error("nil collector should return 0")
	}
	if c.Snapshot().Turns != 0 {
		t.Error("nil snapshot should be zero")
	}
	if c.JSON() == "" {
		t.Error("nil JSON should return valid JSON")
	}
}
