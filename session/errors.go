package session

import "github.com/pkg/errors"

// ErrExhaustedReconnects is returned by Run when the reconnect-attempts
// counter reaches Config.MaxReconnectAttempts (§7 error kind 6), in the
// style of arikawa/gateway/pacemaker.go's ErrDead sentinel.
var ErrExhaustedReconnects = errors.New("session: exhausted reconnect attempts")

// ErrDead is the liveness-timeout sentinel (§7 kind 4): two consecutive
// SendHeartbeat ticks elapsed without a HeartbeatAck in between. It is
// logged, not returned from Run — the state machine treats it as transient
// and retries, per §4.5's "Active on SendHeartbeat... the connection is
// considered dead".
var ErrDead = errors.New("session: connection missed a heartbeat ack")

// errOutboundFull signals outbound channel overflow. Returned from the
// state machine's own sends (heartbeat, Identify/Resume) it ends the
// connection, as §5 treats overflow; returned from RequestGuildMembers it
// goes to the application caller and the connection stays up.
var errOutboundFull = errors.New("session: outbound channel is full")

// ErrClosed is returned by RequestGuildMembers and similar application-
// facing calls once the session has entered PhaseShutdown.
var ErrClosed = errors.New("session: session is shut down")

// Config validation errors (§6's configuration contract).
var (
	errTokenRequired        = errors.New("session: Config.Token is required")
	errLargeThreshold       = errors.New("session: Config.LargeThreshold must be between 50 and 250")
	errMaxReconnectAttempts = errors.New("session: Config.MaxReconnectAttempts must be positive")
)
