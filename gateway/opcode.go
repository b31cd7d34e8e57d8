// Package gateway implements the wire codec and event registry for the
// Discord gateway: encoding and decoding frames, and mapping dispatch event
// names to the payload shape, cache handler and API message factory that
// understand them.
package gateway

import "github.com/pkg/errors"

// Opcode is the closed set of gateway operation codes.
type Opcode int

const (
	DispatchOp            Opcode = 0
	HeartbeatOp           Opcode = 1
	IdentifyOp            Opcode = 2
	StatusUpdateOp        Opcode = 3
	VoiceStateUpdateOp    Opcode = 4
	VoiceServerPingOp     Opcode = 5
	ResumeOp              Opcode = 6
	ReconnectOp           Opcode = 7
	RequestGuildMembersOp Opcode = 8
	InvalidSessionOp      Opcode = 9
	HelloOp               Opcode = 10
	HeartbeatAckOp        Opcode = 11
)

// ErrUnknownOpcode is a recoverable decode error: the frame is otherwise
// well-formed JSON, but its op isn't one this module understands.
type ErrUnknownOpcode struct {
	Op Opcode
}

func (e *ErrUnknownOpcode) Error() string {
	return "unknown gateway opcode"
}

// isValid reports whether op is one of the twelve opcodes this module
// knows about.
func (op Opcode) isValid() bool {
	return op >= DispatchOp && op <= HeartbeatAckOp
}

var errNotDispatch = errors.New("s/t fields are only valid on a Dispatch frame")
