package config

import (
	"testing"
	"time"
)

func TestLoadFromEnv_Connection(t *testing.T) {
	t.Setenv("GOSNAKE_HOST", "snake.example.com")
	t.Setenv("GOSNAKE_PORT", "9000")
	t.Setenv("GOSNAKE_TRANSPORT", "WS")
	t.Setenv("GOSNAKE_WS_PATH", "/game")
	t.Setenv("GOSNAKE_RETRIES", "4")
	t.Setenv("GOSNAKE_TIMEOUT", "3")
	t.Setenv("GOSNAKE_TURN_TIMEOUT", "20")

	cfg := Default()
	LoadFromEnv(cfg)

	if cfg.Host != "snake.example.com" || cfg.Port != 9000 {
		t.Errorf("address = %s", cfg.Address())
	}
	if cfg.Transport != "ws" || cfg.WSPath != "/game" {
		t.Errorf("transport = %q %q", cfg.Transport, cfg.WSPath)
	}
	if cfg.ConnectAttempts != 4 {
		t.Errorf("ConnectAttempts = %d", cfg.ConnectAttempts)
	}
	if cfg.Timeout != 3*time.Second || cfg.TurnTimeout != 20*time.Second {
		t.Errorf("timeouts = %v %v", cfg.Timeout, cfg.TurnTimeout)
	}
}

func TestLoadFromEnv_Terminal(t *testing.T) {
	t.Setenv("GOSNAKE_DISPLAY", "tcell")
	t.Setenv("GOSNAKE_QUIT_KEY", "x")
	t.Setenv("GOSNAKE_SOUND", "yes")

	cfg := Default()
	LoadFromEnv(cfg)

	if cfg.Display != "tcell" || cfg.QuitKey != 'x' || !cfg.Sound {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadFromEnv_BadQuitKeyIgnored(t *testing.T) {
	t.Setenv("GOSNAKE_QUIT_KEY", "quit")
	cfg := Default()
	LoadFromEnv(cfg)
	if cfg.QuitKey != DefaultQuitKey {
		t.Errorf("QuitKey = %q, want default", cfg.QuitKey)
	}
}

func TestLoadFromEnv_EmptyLogFileDisables(t *testing.T) {
	t.Setenv("GOSNAKE_LOG_FILE", "")
	cfg := Default()
	LoadFromEnv(cfg)
	if cfg.LogFile != "" {
		t.Errorf("LogFile = %q, want empty", cfg.LogFile)
	}
}

func TestLoadFromEnv_Booleans(t *testing.T) {
	for _, v := range []string{"1", "true", "yes", "TRUE", "Yes"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("GOSNAKE_SOUND", v)
			cfg := Default()
			LoadFromEnv(cfg)
			if !cfg.Sound {
				t.Error("Sound should be true")
			}
		})
	}
	t.Run("no", func(t *testing.T) {
		t.Setenv("GOSNAKE_SOUND", "no")
		cfg := Default()
		LoadFromEnv(cfg)
		if cfg.Sound {
			t.Error("Sound should stay false")
		}
	})
}

func TestLoadFromEnv_InvalidIntIgnored(t *testing.T) {
	t.Setenv("GOSNAKE_PORT", "eighty")
	t.Setenv("GOSNAKE_VERBOSE", "-1")
	cfg := Default()
	LoadFromEnv(cfg)
	if cfg.Port != DefaultPort || cfg.Verbose != 1 {
		t.Errorf("Port = %d, Verbose = %d", cfg.Port, cfg.Verbose)
	}
}

func TestLoadFromEnv_Unset(t *testing.T) {
	cfg := Default()
	LoadFromEnv(cfg)
	if *cfg != *Default() {
		t.Errorf("unset env changed config: %+v", cfg)
	}
}
