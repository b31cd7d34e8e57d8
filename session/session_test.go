package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/finchwire/gatecore/busmsg"
	"github.com/finchwire/gatecore/gateway"

	_ "github.com/finchwire/gatecore/cache/handlers" // wires the Event Registry
)

// fakeConn is an in-memory Conn the tests drive directly, grounded on
// arikawa/utils/wsutil.Connection's interface shape but trivial enough to
// push/inspect frames without a real socket.
type fakeConn struct {
	events  chan wsEvent
	sent    chan []byte
	closed  chan struct{}
	dialErr error
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		events: make(chan wsEvent, 16),
		sent:   make(chan []byte, 16),
		closed: make(chan struct{}),
	}
}

func (f *fakeConn) Dial(ctx context.Context, url string) (<-chan wsEvent, error) {
	if f.dialErr != nil {
		return nil, f.dialErr
	}
	return f.events, nil
}

func (f *fakeConn) Send(ctx context.Context, data []byte) error {
	select {
	case f.sent <- data:
	default:
	}
	return nil
}

func (f *fakeConn) Close() error {
	select {
	case <-f.closed:
	default:
		close(f.closed)
	}
	return nil
}

func testConfig() Config {
	return Config{
		Token:                "T",
		LargeThreshold:       100,
		ShardNum:             0,
		ShardTotal:           1,
		MaxReconnectAttempts: 5,
	}
}

func newTestSession(t *testing.T) (*Session, *fakeConn) {
	t.Helper()

	fc := newFakeConn()
	urlFn := func(ctx context.Context) (string, error) { return "wss://gateway.example", nil }

	s, err := New(testConfig(), urlFn, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.dial = func() Conn { return fc }

	return s, fc
}

func recvSent(t *testing.T, fc *fakeConn) []byte {
	t.Helper()
	select {
	case data := <-fc.sent:
		return data
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for outbound frame")
		return nil
	}
}

// Scenario 1 (spec.md §8): fresh connect with no prior resume data sends
// Identify, not Resume.
func TestFreshConnectSendsIdentify(t *testing.T) {
	s, fc := newTestSession(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go s.Run(ctx)

	fc.events <- wsEvent{Data: []byte(`{"op":10,"d":{"heartbeat_interval":45000,"_trace":["a"]}}`)}

	frame := decodeSentFrame(t, recvSent(t, fc))
	if frame.Op != gateway.IdentifyOp {
		t.Fatalf("expected Identify (op 2), got op %d", frame.Op)
	}

	var cmd gateway.IdentifyCommand
	if err := json.Unmarshal(frame.Data, &cmd); err != nil {
		t.Fatalf("decode identify: %v", err)
	}
	if cmd.Token != "T" || cmd.LargeThreshold != 100 || cmd.Shard != (gateway.Shard{0, 1}) {
		t.Fatalf("unexpected identify command: %+v", cmd)
	}
}

// Scenario 2: resumed connect with existing resume data sends Resume.
func TestResumedConnectSendsResume(t *testing.T) {
	s, fc := newTestSession(t)
	s.resume = &ResumeData{Token: "T", SessionID: "S", LastSeq: 42}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go s.Run(ctx)

	fc.events <- wsEvent{Data: []byte(`{"op":10,"d":{"heartbeat_interval":45000}}`)}

	frame := decodeSentFrame(t, recvSent(t, fc))
	if frame.Op != gateway.ResumeOp {
		t.Fatalf("expected Resume (op 6), got op %d", frame.Op)
	}

	var cmd gateway.ResumeCommand
	if err := json.Unmarshal(frame.Data, &cmd); err != nil {
		t.Fatalf("decode resume: %v", err)
	}
	if cmd.Token != "T" || cmd.SessionID != "S" || cmd.Sequence != 42 {
		t.Fatalf("unexpected resume command: %+v", cmd)
	}
}

// Scenario 5: InvalidSession always clears resume data before the next
// connect attempt.
func TestInvalidSessionClearsResume(t *testing.T) {
	s, fc := newTestSession(t)
	s.resume = &ResumeData{Token: "T", SessionID: "S", LastSeq: 1}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	fc.events <- wsEvent{Data: []byte(`{"op":10,"d":{"heartbeat_interval":45000}}`)}
	recvSent(t, fc) // drain the Resume attempt

	fc.events <- wsEvent{Data: []byte(`{"op":9,"d":null}`)}

	waitForPhase(t, s, PhaseIdle)
	if s.resume != nil {
		t.Fatal("expected resume data to be cleared after InvalidSession")
	}

	cancel()
	<-done
}

// Scenario 4: applying a dispatch advances resume.last_seq to its sequence
// number.
func TestDispatchAdvancesSequence(t *testing.T) {
	s, fc := newTestSession(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go s.Run(ctx)

	fc.events <- wsEvent{Data: []byte(`{"op":10,"d":{"heartbeat_interval":45000}}`)}
	recvSent(t, fc) // Identify

	ready := `{"op":0,"s":1,"t":"READY","d":{"v":10,"user":{"id":"1","username":"bot","discriminator":"0001"},"private_channels":[],"guilds":[],"session_id":"sess-1"}}`
	fc.events <- wsEvent{Data: []byte(ready)}

	waitForResumeSeq(t, s, 1)

	msg := `{"op":0,"s":7,"t":"MESSAGE_CREATE","d":{"id":"500","channel_id":"300","author":{"id":"1","username":"bot","discriminator":"0001"},"content":"hi"}}`
	fc.events <- wsEvent{Data: []byte(msg)}

	waitForResumeSeq(t, s, 7)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case m := <-s.Messages():
			if created, ok := m.(busmsg.MessageCreated); ok && created.Message.Content == "hi" {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for MessageCreated")
		}
	}
}

func waitForResumeSeq(t *testing.T, s *Session, seq int64) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if s.resume != nil && s.resume.LastSeq == seq {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for resume.last_seq == %d (got %+v)", seq, s.resume)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func waitForPhase(t *testing.T, s *Session, phase Phase) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if s.Phase() == phase {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for phase %s (got %s)", phase, s.Phase())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func decodeSentFrame(t *testing.T, data []byte) *gateway.Frame {
	t.Helper()
	f, err := gateway.DecodeFrame(data)
	if err != nil {
		t.Fatalf("decode sent frame: %v", err)
	}
	return f
}

// Scenario 3: two consecutive SendHeartbeat ticks with no HeartbeatAck in
// between forces the session back to Idle, resume data preserved, and a
// new connection attempt follows.
func TestHeartbeatLossReconnects(t *testing.T) {
	s, fc := newTestSession(t)
	s.resume = &ResumeData{Token: "T", SessionID: "S", LastSeq: 5}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dialCount := 0
	s.dial = func() Conn {
		dialCount++
		if dialCount == 1 {
			return fc
		}
		return newFakeConn() // second connection attempt after the drop
	}

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	fc.events <- wsEvent{Data: []byte(`{"op":10,"d":{"heartbeat_interval":15}}`)}
	recvSent(t, fc) // Resume

	// First tick: no ack pending yet, a Heartbeat is sent.
	recvSent(t, fc)
	// Second tick with still no ack in between: the connection is dead.
	waitForPhase(t, s, PhaseIdle)

	if s.resume == nil || s.resume.SessionID != "S" {
		t.Fatalf("expected resume data preserved after heartbeat loss, got %+v", s.resume)
	}

	cancel()
	<-done
}
