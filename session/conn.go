package session

import (
	"compress/zlib"
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// wsEvent is one item off a Conn's read loop: either a decompressed text
// frame or a terminal error. Grounded on arikawa/utils/ws/conn.go's
// Dial(ctx, addr) (<-chan Op, error) shape, narrowed from the generic Op
// type down to raw bytes since this module's own Wire Codec
// (gateway.DecodeFrame) does the decoding.
type wsEvent struct {
	Data []byte
	Err  error
}

// Conn is the transport abstraction the Session state machine drives. It
// exists so session tests can substitute a fake without opening a real
// socket, and so the gorilla-backed implementation can be swapped for
// another driver without touching the state machine.
type Conn interface {
	// Dial opens the connection and starts its read loop, returning the
	// channel the state machine reads frames from. The channel is closed
	// after a final event carrying the error that ended the read loop,
	// including the error produced when we close the connection ourselves.
	Dial(ctx context.Context, url string) (<-chan wsEvent, error)
	// Send writes one frame. Safe to call concurrently with Dial's read
	// loop, not with another Send.
	Send(ctx context.Context, data []byte) error
	// Close tears the connection down. Safe to call more than once.
	Close() error
}

// gorillaConn is the production Conn, grounded on
// arikawa/utils/ws/conn.go's Conn: a gorilla/websocket.Conn behind a
// zlib-aware read loop and a rate-limited writer.
type gorillaConn struct {
	dialer      websocket.Dialer
	sendLimiter *rate.Limiter

	mu   sync.Mutex
	conn *websocket.Conn
}

const rwBufferSize = 1 << 15

// newGorillaConn returns a Conn using gorilla/websocket, rate-limited the
// way arikawa/utils/ws.NewSendLimiter throttles gateway commands to 120 a
// minute.
func newGorillaConn() *gorillaConn {
	return &gorillaConn{
		dialer: websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: 10 * time.Second,
			ReadBufferSize:   rwBufferSize,
			WriteBufferSize:  rwBufferSize,
		},
		sendLimiter: rate.NewLimiter(rate.Every(time.Minute/115), 5),
	}
}

func (c *gorillaConn) Dial(ctx context.Context, url string) (<-chan wsEvent, error) {
	conn, _, err := c.dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial gateway websocket")
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	events := make(chan wsEvent, 1)
	go readLoop(conn, events)
	return events, nil
}

func (c *gorillaConn) Send(ctx context.Context, data []byte) error {
	if err := c.sendLimiter.Wait(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return errors.New("gateway: send on a closed connection")
	}

	if d, ok := ctx.Deadline(); ok {
		conn.SetWriteDeadline(d)
		defer conn.SetWriteDeadline(time.Time{})
	}

	return conn.WriteMessage(websocket.TextMessage, data)
}

func (c *gorillaConn) Close() error {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn == nil {
		return nil
	}
	return conn.Close()
}

// readLoop pushes every decoded text frame (transparently inflating zlib
// binary frames) onto events until the connection errors or closes, then
// emits one final event carrying that error and closes the channel.
// Grounded on arikawa/utils/ws/conn.go's readLoop/handle pair.
func readLoop(conn *websocket.Conn, events chan<- wsEvent) {
	defer close(events)

	var zr io.ReadCloser
	for {
		kind, r, err := conn.NextReader()
		if err != nil {
			events <- wsEvent{Err: err}
			return
		}

		if kind == websocket.BinaryMessage {
			if zr == nil {
				zr, err = zlib.NewReader(r)
			} else {
				err = zr.(zlib.Resetter).Reset(r, nil)
			}
			if err != nil {
				events <- wsEvent{Err: errors.Wrap(err, "failed to inflate zlib frame")}
				return
			}
			r = zr
		}

		data, err := io.ReadAll(r)
		if err != nil {
			events <- wsEvent{Err: errors.Wrap(err, "failed to read gateway frame")}
			return
		}

		events <- wsEvent{Data: data}
	}
}
