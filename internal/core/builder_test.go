package core

import (
	"testing"

	"gosnake/config"
	"gosnake/internal/transport"
	"gosnake/util"
)

// TestBuild_Defaults verifies that Build produces a TCP PlayMode for the
// default configuration.
func TestBuild_Defaults(t *testing.T) {
	mode, err := Build(config.Default(), util.NewLogger(0))
	if err != nil {
		t.Fatal(err)
	}
	pm, ok := mode.(*PlayMode)
	if !ok {
		t.Fatalf("expected *PlayMode, got %T", mode)
	}
	if _, ok := pm.Dialer.(*transport.TCPDialer); !ok {
		t.Errorf("dialer = %T, want *TCPDialer", pm.Dialer)
	}
	if pm.Address != "127.0.0.1:8080" || pm.Attempts != 1 {
		t.Errorf("address %q attempts %d", pm.Address, pm.Attempts)
	}
	if len(pm.QuitKeys) != 1 || pm.QuitKeys[0] != 'q' {
		t.Errorf("quit keys = %q", pm.QuitKeys)
	}
	if pm.Surface == nil || pm.Metrics == nil {
		t.Error("surface and metrics must be set")
	}
}

// TestBuild_WebSocket verifies that ws selects the websocket dialer with
// the configured path.
func TestBuild_WebSocket(t *testing.T) {
	cfg := config.Default()
	cfg.Transport = "ws"
	cfg.WSPath = "/game"
	cfg.Display = "tcell"

	mode, err := Build(cfg, util.NewLogger(0))
	if err != nil {
		t.Fatal(err)
	}
	d, ok := mode.(*PlayMode).Dialer.(*transport.WSDialer)
	if !ok {
		t.Fatalf("dialer = %T", mode.(*PlayMode).Dialer)
	}
	if d.Path != "/game" {
		t.Errorf("path = %q", d.Path)
	}
}

func TestBuild_UnknownTransport(t *testing.T) {
	cfg := config.Default()
	cfg.Transport = "carrier-pigeon"
	if _, err := Build(cfg, util.NewLogger(0)); err == nil {
		t.Fatal("expected an error for an unknown transport")
	}
}
