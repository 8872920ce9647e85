package util

import (
	"testing"
)

func TestFormatAddr(t *testing.T) {
	if got := FormatAddr("127.0.0.1", 8080); got != "127.0.0.1:8080" {
		t.Errorf("got %q, want %q", got, "127.0.0.1:8080")
	}
	if got := FormatAddr("::1", 8080); got != "[::1]:8080" {
		t.Errorf("got %q", got)
	}
}

func TestParsePort(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"8080", 8080, false},
		{" 1 ", 1, false},
		{"65535", 65535, false},
		{"0", 0, true},
		{"65536", 0, true},
		{"http", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParsePort(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePort(%q) err=%v wantErr=%v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePort(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWebSocketURL(t *testing.T) {
	tests := []struct{ addr, path, want string }{
		{"127.0.0.1:8080", "/play", "ws://127.0.0.1:8080/play"},
		{"127.0.0.1:8080", "play", "ws://127.0.0.1:8080/play"},
		{"[::1]:9000", "/", "ws://[::1]:9000/"},
	}
	for _, tt := range tests {
		if got := WebSocketURL(tt.addr, tt.path); got != tt.want {
			t.Errorf("WebSocketURL(%q, %q) = %q, want %q", tt.addr, tt.path, got, tt.want)
		}
	}
}
