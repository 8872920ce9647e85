package config

import "time"

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags and environment variable loading.

const (
	// DefaultHost is the game server address.
	DefaultHost = "127.0.0.1"

	// DefaultPort is the game server port.
	DefaultPort = 8080

	// DefaultTransport carries the protocol over plain TCP.
	DefaultTransport = "tcp"

	// DefaultWSPath is the websocket endpoint on the server.
	DefaultWSPath = "/play"

	// DefaultDisplay writes ANSI sequences straight to the terminal.
	DefaultDisplay = "ansi"

	// DefaultLogFile is truncated at startup and receives the session log.
	DefaultLogFile = "log"

	// DefaultQuitKey ends the game from the keyboard.
	DefaultQuitKey = 'q'

	// DefaultConnectAttempts is how many times the initial dial is tried.
	DefaultConnectAttempts = 1

	// DefaultConnTimeout bounds a single dial attempt.
	DefaultConnTimeout = 10 * time.Second

	// DefaultTurnTimeout is the per-message read deadline; zero waits
	// forever, which is what a lobby needs.
	DefaultTurnTimeout = time.Duration(0)

	// DefaultLostCueWait bounds how long the loss tone may delay exit.
	DefaultLostCueWait = time.Second
)
