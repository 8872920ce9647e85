package core

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"gosnake/internal/errors"
	"gosnake/internal/input"
	"gosnake/internal/metrics"
	"gosnake/internal/protocol"
	"gosnake/internal/render"
	"gosnake/internal/retry"
	"gosnake/internal/sound"
	"gosnake/internal/transport"
	"gosnake/internal/turn"
	"gosnake/util"
)

// PlayMode connects to a game server and plays one game.
type PlayMode struct {
	Dialer      transport.Dialer
	Address     string
	Attempts    int
	TurnTimeout time.Duration
	Surface     SurfaceFunc
	QuitKeys    []rune
	Sound       bool
	LostWait    time.Duration
	Stats       bool
	Logger      *util.Logger
	Metrics     *metrics.Collector

	// Stdout receives the --stats report and, when the screen does not
	// outlive the game, the loss message.  Defaults to os.Stdout.
	Stdout io.Writer
}

func (m *PlayMode) stdout() io.Writer {
	if m.Stdout != nil {
		return m.Stdout
	}
	return os.Stdout
}

// Run dials the server, takes over the terminal and plays until the
// game ends.  The terminal is given back before Run returns, on every
// path, so the caller can print errors normally.
func (m *PlayMode) Run(ctx context.Context) error {
	defer m.Dialer.Close()

	conn, err := m.dial(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	m.Logger.Info("Connection initialized successfully")

	// A blocked Receive only returns when the connection does.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	out, err := m.play(ctx, conn)
	if err != nil {
		return err
	}

	m.Logger.Verbose("session metrics: %s", m.Metrics.JSON())
	if m.Stats {
		fmt.Fprintln(m.stdout(), m.Metrics.JSON())
	}

	m.Logger.Info("Game over: %s", out.Reason)
	if out.Reason.Failed() {
		return out.Err
	}
	return nil
}

func (m *PlayMode) dial(ctx context.Context) (net.Conn, error) {
	m.Logger.Verbose("connecting to %s", m.Address)

	b := retry.DialBackoff(m.Attempts)
	b.Retryable = errors.IsRetryable
	b.OnRetry = func(attempt int, err error, wait time.Duration) {
		m.Logger.Warn("connect attempt %d failed: %v (retrying in %s)", attempt, err, wait.Round(time.Millisecond))
	}

	var conn net.Conn
	err := b.Do(ctx, func(int) error {
		c, err := m.Dialer.Dial(ctx, m.Address)
		if err != nil {
			m.Metrics.RecordError(err.Error())
			return errors.Wrap("dial", m.Address, err)
		}
		conn = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", m.Address, err)
	}
	return conn, nil
}

// play owns the terminal for the duration of the game.
func (m *PlayMode) play(ctx context.Context, conn net.Conn) (out turn.Outcome, err error) {
	surface, err := m.Surface(m.Metrics)
	if err != nil {
		return turn.Outcome{}, fmt.Errorf("terminal: %w", err)
	}
	defer func() {
		if err := surface.Release(); err != nil {
			m.Logger.Warn("restoring terminal: %v", err)
		}
		if surface.Transient && out.Reason == turn.ReasonLost {
			fmt.Fprintln(m.stdout(), turn.LostMessage)
		}
	}()

	var player *sound.Player
	if m.Sound {
		player, err = sound.Open()
		if err != nil {
			m.Logger.Warn("sound disabled: %v", err)
		}
		defer player.Close()
	}

	pc := protocol.NewConn(conn, m.Address)
	pc.SetMetrics(m.Metrics)
	pc.SetReadTimeout(m.TurnTimeout)

	steering := input.Steering{QuitKeys: m.QuitKeys}
	sync := turn.New(pc, render.New(surface.Sink), surface.Poller, turn.Options{
		Logger:   m.Logger,
		Metrics:  m.Metrics,
		Sound:    player,
		Steering: &steering,
		LostWait: m.LostWait,
	})
	return sync.Run(ctx), nil
}
