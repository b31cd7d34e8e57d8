package gateway

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// EventName is one of the closed set of uppercase dispatch event names the
// Event Registry knows how to decode and route.
type EventName string

// Frame is a decoded gateway wire frame: op, payload body, and — only for
// Dispatch — the sequence number and event name.
type Frame struct {
	Op        Opcode
	Data      json.RawMessage
	Sequence  int64     // valid only when Op == DispatchOp
	EventName EventName // valid only when Op == DispatchOp
}

// wireFrame mirrors the literal JSON shape of a gateway frame.
type wireFrame struct {
	Op int             `json:"op"`
	D  json.RawMessage `json:"d,omitempty"`
	S  *int64          `json:"s,omitempty"`
	T  *string         `json:"t,omitempty"`
}

// DecodeFrame parses a raw gateway text frame. An unknown opcode is
// reported as *ErrUnknownOpcode, a recoverable decode error per §7: the
// caller should log it and drop the frame, not treat it as fatal.
func DecodeFrame(raw []byte) (*Frame, error) {
	var w wireFrame
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, errors.Wrap(err, "malformed gateway frame")
	}

	op := Opcode(w.Op)
	if !op.isValid() {
		return nil, &ErrUnknownOpcode{Op: op}
	}

	f := &Frame{Op: op, Data: w.D}

	if op == DispatchOp {
		if w.S == nil || w.T == nil {
			return nil, errors.New("dispatch frame missing s or t")
		}
		f.Sequence = *w.S
		f.EventName = EventName(*w.T)
	} else if w.S != nil || w.T != nil {
		return nil, errNotDispatch
	}

	return f, nil
}

// EncodeFrame serializes f back into the wire shape. s/t are emitted only
// for Dispatch frames; this module never encodes outbound Dispatch frames
// (only Discord sends those), but the symmetry is kept for round-trip
// testing and for re-emitting captured traffic in tests.
func EncodeFrame(f *Frame) ([]byte, error) {
	w := wireFrame{Op: int(f.Op), D: f.Data}

	if f.Op == DispatchOp {
		s := f.Sequence
		t := string(f.EventName)
		w.S, w.T = &s, &t
	}

	return json.Marshal(w)
}

// EncodeCommand builds a non-Dispatch outbound frame for op carrying data as
// its body. It never emits s or t, matching §4.1's encoding invariant.
func EncodeCommand(op Opcode, data interface{}) ([]byte, error) {
	d, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal command payload")
	}

	return EncodeFrame(&Frame{Op: op, Data: d})
}
