// Package turn drives one game from the lobby to termination, keeping
// the client in lock-step with the server.
//
// The synchronizer owns the session and is the only code that touches
// the connection once the game is set up.  Every step blocks on the
// server; keyboard input is sampled once per step and never waited for.
package turn

import (
	"context"
	"fmt"
	"time"

	"gosnake/internal/errors"
	"gosnake/internal/game"
	"gosnake/internal/input"
	"gosnake/internal/metrics"
	"gosnake/internal/protocol"
	"gosnake/internal/render"
	"gosnake/internal/session"
	"gosnake/internal/sound"
	"gosnake/util"
)

// LobbyPrompt is shown while waiting for the game to start.
const LobbyPrompt = "Press ENTER to start game with less than 4 players"

// LostMessage is shown when the server reports that we lost.
const LostMessage = "You lose"

// Phase is the synchronizer's position in the game.
type Phase int

const (
	PhaseLobby Phase = iota
	PhasePlaying
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseLobby:
		return "lobby"
	case PhasePlaying:
		return "playing"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Reason says why the game terminated.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonQuit
	ReasonLost
	ReasonProtocolError
	ReasonTransportError
	ReasonRenderError
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonQuit:
		return "quit"
	case ReasonLost:
		return "lost"
	case ReasonProtocolError:
		return "protocol error"
	case ReasonTransportError:
		return "transport error"
	case ReasonRenderError:
		return "render error"
	default:
		return "unknown"
	}
}

// Failed reports whether r ends the program with an error.
func (r Reason) Failed() bool {
	return r == ReasonProtocolError || r == ReasonTransportError || r == ReasonRenderError
}

// Conn is the message channel to the server.  *protocol.Conn satisfies
// it.
type Conn interface {
	Send(v interface{}) error
	Receive(stage string, v interface{}) error
}

// lastPayload is implemented by connections that can report the raw text
// of the last received message for logging.
type lastPayload interface {
	Last() string
}

// Outcome is the final result of a game.
type Outcome struct {
	Reason Reason
	Err    error
}

// Options carries the optional collaborators of a Synchronizer.
type Options struct {
	Logger   *util.Logger
	Metrics  *metrics.Collector
	Sound    *sound.Player
	Steering *input.Steering
	// LostWait bounds how long the loss cue may delay termination.
	LostWait time.Duration
}

// Synchronizer is the lobby/turn state machine.
type Synchronizer struct {
	conn     Conn
	renderer *render.Renderer
	poller   input.Poller
	steering input.Steering
	logger   *util.Logger
	metrics  *metrics.Collector
	sound    *sound.Player
	lostWait time.Duration

	session  *session.Session
	field    game.Field
	phase    Phase
	reason   Reason
	err      error
	prompted bool
}

// New returns a synchronizer in the lobby.
func New(conn Conn, r *render.Renderer, p input.Poller, opts Options) *Synchronizer {
	s := &Synchronizer{
		conn:     conn,
		renderer: r,
		poller:   p,
		steering: input.DefaultSteering,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		sound:    opts.Sound,
		lostWait: opts.LostWait,
		session:  session.New(),
	}
	if opts.Steering != nil {
		s.steering = *opts.Steering
	}
	if s.logger == nil {
		s.logger = util.NewLogger(int(util.LogQuiet))
		s.logger.SetOutput(nopWriter{})
	}
	if s.lostWait <= 0 {
		s.lostWait = time.Second
	}
	return s
}

// Phase returns the current phase.
func (s *Synchronizer) Phase() Phase { return s.phase }

// Outcome returns the termination reason and error.  Reason is
// ReasonNone until the synchronizer terminates.
func (s *Synchronizer) Outcome() Outcome { return Outcome{Reason: s.reason, Err: s.err} }

// Session exposes the game state for inspection.
func (s *Synchronizer) Session() *session.Session { return s.session }

// Run steps until the game terminates or ctx is cancelled.  Cancellation
// only takes effect between steps; the caller is expected to close the
// connection to interrupt a blocked read, and the closed-connection error
// that follows is reported as a quit rather than a transport failure.
func (s *Synchronizer) Run(ctx context.Context) Outcome {
	for s.phase != PhaseTerminated {
		if ctx.Err() != nil {
			s.terminate(ReasonQuit, nil)
			break
		}
		s.Step()
		if s.reason == ReasonTransportError && ctx.Err() != nil && errors.IsClosed(s.err) {
			s.logger.Info("Interrupted")
			s.reason, s.err = ReasonQuit, nil
		}
	}
	return s.Outcome()
}

// Step performs one lobby event or one full turn.  It is a no-op once
// the synchronizer has terminated.
func (s *Synchronizer) Step() {
	switch s.phase {
	case PhaseLobby:
		s.lobbyStep()
	case PhasePlaying:
		s.turnStep()
	}
}

// ── Lobby ────────────────────────────────────────────────────────────

func (s *Synchronizer) lobbyStep() {
	if !s.prompted {
		s.prompted = true
		s.logger.Info("Entering Lobby")
		if !s.check(s.renderer.Prompt(LobbyPrompt)) {
			return
		}
	}

	var ev protocol.EventMessage
	if !s.check(s.conn.Receive("lobby", &ev)) {
		return
	}

	switch ev.Event {
	case protocol.EventWaitInLobby:
		vote := input.ForceStart(s.poller)
		if !s.check(s.conn.Send(protocol.ForceStartMessage{ForceStart: vote})) {
			return
		}
		s.metrics.VoteSent()
		s.logger.Verbose("Lobby vote force_start=%v", vote)
	case protocol.EventStart:
		s.logger.Info("Starting game")
		s.start()
	default:
		s.check(errors.Unexpected("lobby", "event "+ev.Event.String(), nil))
	}
}

func (s *Synchronizer) start() {
	var cfg protocol.ConfigMessage
	if !s.check(s.conn.Receive("configuration", &cfg)) {
		return
	}
	s.logger.Info("Received game configuration: %s", s.last())

	field, err := game.NewField(cfg.Width, cfg.Height)
	if err != nil {
		s.check(errors.Unexpected("configuration", fmt.Sprintf("field %dx%d", cfg.Width, cfg.Height), err))
		return
	}
	s.field = field
	if !s.placed("configuration", cfg.Food, cfg.Snakes) {
		return
	}

	s.logger.Info("Initializing game")
	s.session.Configure(cfg.ID, cfg.Food, cfg.Snakes)

	if !s.check(s.renderer.DrawField(field)) ||
		!s.check(s.renderer.DrawFood(cfg.Food)) ||
		!s.check(s.renderer.DrawAllSnakes(cfg.Snakes, cfg.ID, game.SnakeGlyph)) {
		return
	}

	s.phase = PhasePlaying
	s.metrics.GameStarted()
	s.sound.Play(sound.CueStart)
}

// ── Turn ─────────────────────────────────────────────────────────────

func (s *Synchronizer) turnStep() {
	var ev protocol.EventMessage
	if !s.check(s.conn.Receive("turn", &ev)) {
		return
	}
	if ev.Event != protocol.EventNewTurn {
		s.check(errors.Unexpected("turn", "event "+ev.Event.String(), nil))
		return
	}

	s.steering.Steer(s.poller, s.session)
	if s.session.Killed {
		s.logger.Info("Game quit by player")
		s.terminate(ReasonQuit, nil)
		return
	}

	s.logger.Verbose("Current direction: %s", s.session.Direction)
	if !s.check(s.conn.Send(protocol.DirectionMessage{Direction: s.session.Direction})) {
		return
	}
	s.metrics.DirectionSent()

	var update protocol.TurnMessage
	if !s.check(s.conn.Receive("turn update", &update)) {
		return
	}
	s.logger.Verbose("Received next turn data: %s", s.last())
	if !s.placed("turn update", update.Food, update.Snakes) {
		return
	}

	prevLen := len(s.session.Self())
	prevSnakes, prevFood := s.session.Apply(update.ID, update.Food, update.Snakes)

	if !s.check(s.renderer.ClearAllSnakes(prevSnakes)) {
		return
	}
	if prevFood != update.Food && !s.check(s.renderer.EraseFood(prevFood)) {
		return
	}
	if !s.check(s.renderer.DrawFood(update.Food)) ||
		!s.check(s.renderer.DrawAllSnakes(update.Snakes, update.ID, game.SnakeGlyph)) {
		return
	}
	if prevLen > 0 && len(s.session.Self()) > prevLen {
		s.sound.Play(sound.CueFood)
	}

	var st protocol.StateMessage
	if !s.check(s.conn.Receive("state", &st)) {
		return
	}
	s.logger.Verbose("Received game state: %s", s.last())
	s.metrics.TurnPlayed()

	if st.State == game.Lost {
		if err := s.renderer.Status(LostMessage); err != nil {
			s.logger.Warn("showing loss: %v", err)
		}
		s.logger.Info(LostMessage)
		s.sound.PlayAndWait(sound.CueLost, s.lostWait)
		s.terminate(ReasonLost, nil)
	}
}

// placed checks that food and every snake segment lie on the field, so a
// desynchronised server can never make us draw outside it.
func (s *Synchronizer) placed(stage string, food game.Point, snakes game.SnakeSet) bool {
	if !s.field.Inside(food) {
		return s.check(errors.Unexpected(stage, "food at "+food.String()+" outside the field", nil))
	}
	for id, snake := range snakes {
		for _, p := range snake {
			if !s.field.Inside(p) {
				return s.check(errors.Unexpected(stage, fmt.Sprintf("snake %d at %s outside the field", id, p), nil))
			}
		}
	}
	return true
}

// ── Termination ──────────────────────────────────────────────────────

// check terminates the synchronizer if err is non-nil, classifying it by
// type, and reports whether the caller may continue.
func (s *Synchronizer) check(err error) bool {
	if err == nil {
		return true
	}
	switch {
	case errors.IsProtocol(err):
		s.terminate(ReasonProtocolError, err)
	case errors.IsRender(err):
		s.terminate(ReasonRenderError, err)
	default:
		s.terminate(ReasonTransportError, err)
	}
	return false
}

func (s *Synchronizer) terminate(r Reason, err error) {
	s.phase = PhaseTerminated
	s.reason = r
	s.err = err
	if err != nil {
		s.metrics.RecordError(err.Error())
		s.logger.Error("%s: %v", r, err)
	}
}

func (s *Synchronizer) last() string {
	if lp, ok := s.conn.(lastPayload); ok {
		return lp.Last()
	}
	return ""
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
