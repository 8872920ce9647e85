// Package core is the orchestration layer.  It composes the transport,
// the terminal surface and the turn synchronizer into a runnable game
// and provides a builder that assembles it from a Config.
//
// Architecture layers (bottom → top):
//
//	game  →  protocol / display / input  →  render  →  turn  →  core  →  cmd (CLI)
package core

import "context"

// Mode is a complete run of the client.  It owns its full lifecycle
// from connection establishment to teardown.
type Mode interface {
	Run(ctx context.Context) error
}
