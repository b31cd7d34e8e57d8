// Package session implements the Session State Machine (spec.md §4.5):
// gateway discovery, WebSocket handshake, Identify/Resume, heartbeating,
// reconnection and invalid-session recovery. It is the single
// cooperatively-scheduled task (§5) that owns the outbound send channel,
// applies dispatches through the Event Registry and Cache Builder, and
// publishes API Messages on the Bus.
package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/finchwire/gatecore/busmsg"
	"github.com/finchwire/gatecore/cache"
	"github.com/finchwire/gatecore/discord"
	"github.com/finchwire/gatecore/gateway"
	"github.com/finchwire/gatecore/gatewaylog"
)

const outboundCapacity = 64

// Session drives one gateway connection end to end. It is not safe for
// concurrent use except where a method's doc says otherwise (RequestGuildMembers,
// Snapshot, Messages, Shutdown are all safe to call from other goroutines
// while Run is in progress; everything else belongs to Run's caller).
type Session struct {
	cfg        Config
	gatewayURL GatewayURLFunc
	dial       func() Conn

	bus *busmsg.Bus
	// snapshot is published via an atomically-swappable handle, per
	// DESIGN NOTES §9 ("producer/consumer over an atomically-swappable
	// handle to the latest immutable snapshot") and grounded on arikawa's
	// use of go.uber.org/atomic throughout internal/moreatomic and
	// gateway.go's sequence counter.
	snapshot atomic.Value

	outbound chan []byte
	shutdown chan struct{}

	phase   Phase
	resume  *ResumeData
	attempt int
	backoff backoff

	conn Conn
}

// New constructs a Session ready to Run. gatewayURL resolves the gateway
// URL on each connect attempt (NewRESTGatewayURLFunc in production, a stub
// in tests); snap seeds the initial cache state (cache.Empty() for a fresh
// bot).
func New(cfg Config, gatewayURL GatewayURLFunc, snap *cache.Snapshot) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if snap == nil {
		snap = cache.Empty()
	}

	s := &Session{
		cfg:        cfg,
		gatewayURL: gatewayURL,
		dial:       func() Conn { return newGorillaConn() },
		bus:        busmsg.NewBus(busmsg.DefaultCapacity),
		outbound:   make(chan []byte, outboundCapacity),
		shutdown:   make(chan struct{}),
		backoff:    newBackoff(time.Second, time.Minute),
	}
	s.snapshot.Store(snap)
	return s, nil
}

// Messages returns the API Message Bus's subscriber channel.
func (s *Session) Messages() <-chan busmsg.Message { return s.bus.Messages() }

// Snapshot returns the most recently published cache snapshot. Safe to call
// from any goroutine; the returned value is immutable.
func (s *Session) Snapshot() *cache.Snapshot {
	return s.snapshot.Load().(*cache.Snapshot)
}

func (s *Session) setSnapshot(snap *cache.Snapshot) {
	s.snapshot.Store(snap)
}

// Phase reports the state machine's current phase. Primarily for tests and
// diagnostics; application code should prefer Messages/Snapshot.
func (s *Session) Phase() Phase { return s.phase }

// Shutdown requests termination: the shutdown flag is observed at every
// state transition and every suspension resumption (§5), and always wins.
// Safe to call more than once or concurrently with Run.
func (s *Session) Shutdown() {
	select {
	case <-s.shutdown:
	default:
		close(s.shutdown)
	}
}

func (s *Session) shuttingDown() bool {
	select {
	case <-s.shutdown:
		return true
	default:
		return false
	}
}

// RequestGuildMembers enqueues an outbound Op 8 request (§4.5's "Active on
// outbound RequestGuildMembers from application"). It returns errOutboundFull
// if the outbound channel is full (§5: overflow is a fatal connection
// error, surfaced here to the caller instead of killing the connection out
// from under them) and ErrClosed once Shutdown has been requested.
func (s *Session) RequestGuildMembers(guildID discord.GuildID, query string, limit int) error {
	if s.shuttingDown() {
		return ErrClosed
	}

	data, err := gateway.EncodeCommand(gateway.RequestGuildMembersOp, gateway.RequestGuildMembersCommand{
		GuildID: guildID,
		Query:   query,
		Limit:   limit,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode request-guild-members command")
	}

	return s.enqueue(data)
}

// enqueue writes data to the outbound FIFO and never blocks the caller to
// make room. When drive or handleFrame gets errOutboundFull the connection
// is torn down (§5's "fatal connection error"); RequestGuildMembers instead
// returns it to its caller and the connection stays up.
func (s *Session) enqueue(data []byte) error {
	select {
	case s.outbound <- data:
		return nil
	default:
		return errOutboundFull
	}
}

// Run drives the state machine until ctx is cancelled, Shutdown is called,
// or reconnect attempts are exhausted (§7 kind 6). It is safe to call only
// once per Session.
func (s *Session) Run(ctx context.Context) error {
	defer s.bus.Close()
	for {
		if s.shuttingDown() || ctx.Err() != nil {
			s.phase = PhaseShutdown
			return nil
		}

		s.phase = PhaseIdle
		err := s.runIdle(ctx)
		if err == nil {
			// runIdle returns nil once drive has brought the state machine
			// back to Idle on Reconnect or InvalidSession, after a failed
			// discovery or dial has been backed off, or when Shutdown/ctx
			// cancellation was observed directly; in every case the loop
			// reassesses the shutdown/attempts ceiling next pass.
			continue
		}
		if errors.Is(err, ErrExhaustedReconnects) {
			s.phase = PhaseShutdown
			return err
		}
		// Every other error (missed heartbeat ack, read/send failure, full
		// outbound channel) is transient per §5: log it and let
		// the next loop iteration re-enter Idle and retry, backing off as
		// runIdle/sleepBackoff already arranged.
		gatewaylog.Error("session: connection attempt failed, retrying", err)
	}
}

// runIdle implements §4.5's Idle transitions: TryConnect (gated on the
// attempts ceiling) followed by GatewayReceived (dial + upgrade).
func (s *Session) runIdle(ctx context.Context) error {
	if s.attempt >= s.cfg.MaxReconnectAttempts {
		return ErrExhaustedReconnects
	}
	s.phase = PhaseConnecting
	s.attempt++

	url, err := s.gatewayURL(ctx)
	if err != nil {
		gatewaylog.Error("session: gateway discovery failed", err)
		return s.sleepBackoff(ctx)
	}

	// §4.5: "reset attempts" once a gateway URL is successfully retrieved.
	s.attempt = 0
	s.backoff.reset()

	conn := s.dial()
	events, err := conn.Dial(ctx, dialURL(url))
	if err != nil {
		gatewaylog.Error("session: failed to upgrade websocket", err)
		return s.sleepBackoff(ctx)
	}

	s.conn = conn
	s.phase = PhaseUpgraded
	gatewaylog.Debug("session: upgraded, awaiting hello")

	return s.drive(ctx, events)
}

func (s *Session) sleepBackoff(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return nil
	case <-s.shutdown:
		return nil
	case <-time.After(s.backoff.next()):
		return nil
	}
}

// drive is the Active-phase event loop: it owns the socket's read channel,
// the heartbeat pacemaker (once Hello arrives) and the outbound FIFO, all
// on one goroutine per §5.
func (s *Session) drive(ctx context.Context, events <-chan wsEvent) error {
	var pace *pacemaker
	defer func() {
		if pace != nil {
			pace.stop()
		}
		s.conn.Close()
		s.conn = nil
	}()

	var lastSeq *int64
	if s.resume != nil {
		seq := s.resume.LastSeq
		lastSeq = &seq
	}

	for {
		var tick <-chan time.Time
		if pace != nil {
			tick = pace.tick()
		}

		select {
		case <-ctx.Done():
			s.phase = PhaseIdle
			return nil

		case <-s.shutdown:
			s.phase = PhaseShutdown
			return nil

		case data, ok := <-s.outbound:
			if !ok {
				continue
			}
			if err := s.conn.Send(ctx, data); err != nil {
				s.phase = PhaseIdle
				return errors.Wrap(err, "failed to send outbound frame")
			}

		case <-tick:
			if pace.dead() {
				gatewaylog.Error("session: missed heartbeat ack", ErrDead)
				s.phase = PhaseIdle
				return ErrDead
			}
			hb, err := gateway.EncodeHeartbeat(lastSeq)
			if err != nil {
				return errors.Wrap(err, "failed to encode heartbeat")
			}
			if err := s.enqueue(hb); err != nil {
				s.phase = PhaseIdle
				return err
			}
			pace.beat()

		case ev, ok := <-events:
			if !ok {
				s.phase = PhaseIdle
				return errors.New("session: connection closed")
			}
			if ev.Err != nil {
				s.phase = PhaseIdle
				return errors.Wrap(ev.Err, "session: read error")
			}

			frame, err := gateway.DecodeFrame(ev.Data)
			if err != nil {
				gatewaylog.Debug("session: dropping malformed frame", err)
				continue
			}

			done, err := s.handleFrame(frame, &pace, &lastSeq)
			if err != nil {
				return err
			}
			if done {
				s.phase = PhaseIdle
				return nil
			}
		}
	}
}

// handleFrame applies one non-Dispatch opcode's transition, or routes a
// Dispatch through the Event Registry. It returns done=true when the
// connection must be torn down and the state machine re-enter Idle (a
// Reconnect, InvalidSession, or — pace permitting — nothing; only those two
// opcodes return done directly, everything else either mutates state or is
// handled via drive's own error returns for heartbeat-ack-missed).
func (s *Session) handleFrame(
	frame *gateway.Frame,
	pace **pacemaker,
	lastSeq **int64,
) (done bool, err error) {
	switch frame.Op {
	case gateway.HelloOp:
		var hello gateway.HelloPayload
		if err := json.Unmarshal(frame.Data, &hello); err != nil {
			return false, errors.Wrap(err, "failed to decode hello")
		}
		if err := s.sendIdentifyOrResume(); err != nil {
			return false, err
		}
		*pace = newPacemaker(time.Duration(hello.HeartbeatIntervalMs) * time.Millisecond)
		s.phase = PhaseActive
		return false, nil

	case gateway.HeartbeatAckOp:
		if *pace != nil {
			(*pace).ack()
		}
		return false, nil

	case gateway.HeartbeatOp:
		// Discord may itself request an immediate heartbeat; honor it the
		// same as a pacemaker tick would.
		hb, err := gateway.EncodeHeartbeat(*lastSeq)
		if err != nil {
			return false, errors.Wrap(err, "failed to encode heartbeat")
		}
		return false, s.enqueue(hb)

	case gateway.ReconnectOp:
		gatewaylog.Debug("session: gateway requested reconnect")
		return true, nil

	case gateway.InvalidSessionOp:
		gatewaylog.Debug("session: invalid session, clearing resume data")
		s.resume = nil
		return true, nil

	case gateway.DispatchOp:
		// §5: sequence numbers advance monotonically within a session; a
		// non-monotone sequence is logged but still applied, the server
		// being the source of truth.
		if *lastSeq != nil && frame.Sequence <= **lastSeq {
			gatewaylog.Warn("session: non-monotone sequence", frame.Sequence)
		}
		s.applyDispatch(frame)
		seq := frame.Sequence
		*lastSeq = &seq
		return false, nil

	default:
		gatewaylog.Debug("session: unhandled opcode on active connection", frame.Op)
		return false, nil
	}
}

// sendIdentifyOrResume implements §4.5's Active-on-Hello branch: Resume if
// resume data survived a prior connection, otherwise Identify.
func (s *Session) sendIdentifyOrResume() error {
	if s.resume != nil {
		cmd := gateway.ResumeCommand{
			Token:     s.resume.Token,
			SessionID: s.resume.SessionID,
			Sequence:  s.resume.LastSeq,
		}
		data, err := gateway.EncodeCommand(gateway.ResumeOp, cmd)
		if err != nil {
			return errors.Wrap(err, "failed to encode resume")
		}
		return s.enqueue(data)
	}

	cmd := gateway.NewIdentifyCommand(s.cfg.Token, s.cfg.LargeThreshold, s.cfg.ShardNum, s.cfg.ShardTotal)
	data, err := gateway.EncodeCommand(gateway.IdentifyOp, cmd)
	if err != nil {
		return errors.Wrap(err, "failed to encode identify")
	}
	return s.enqueue(data)
}

// applyDispatch is §4.5's "Active on Dispatch": look the event name up in
// the Event Registry, decode its payload, mutate a fresh Builder, finalize
// it into the next Snapshot, update resume data, and publish the resulting
// API Message (§4.4's per-handler factory invocation).
func (s *Session) applyDispatch(frame *gateway.Frame) {
	payload, err := gateway.DecodePayload(frame.EventName, frame.Data)
	if err != nil {
		gatewaylog.Warn("session: dropping dispatch", frame.EventName, err)
		return
	}

	entry, ok := gateway.Lookup(frame.EventName)
	if !ok {
		// Not-yet-implemented events still decode successfully above but
		// have no registry entry only if cache/handlers was never linked
		// in; treat as §4.2's Not-yet-implemented disposition.
		gatewaylog.Warn("session: no registry entry for dispatch", frame.EventName)
		return
	}

	prev := s.Snapshot()
	builder := cache.From(prev)
	if entry.Handle != nil {
		entry.Handle(builder, payload)
	}
	curr := builder.Finalize()
	s.setSnapshot(curr)

	if frame.EventName == gateway.ReadyEventName {
		ready := payload.(*gateway.ReadyPayload)
		s.resume = &ResumeData{
			Token:     s.cfg.Token,
			SessionID: ready.SessionID,
			LastSeq:   frame.Sequence,
		}
	} else if s.resume != nil {
		s.resume.LastSeq = frame.Sequence
	}

	if entry.Factory == nil {
		return
	}
	if msg, ok := entry.Factory(payload, prev, curr); ok {
		if m, ok := msg.(busmsg.Message); ok {
			s.bus.Publish(m)
		}
	}
}
