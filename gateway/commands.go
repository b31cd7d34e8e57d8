package gateway

// EncodeHeartbeat builds the Op 1 frame. seq is the last observed sequence
// number, or nil if none has been seen yet in this connection; either way
// it marshals to a bare nullable integer, not an object, per §6.
func EncodeHeartbeat(seq *int64) ([]byte, error) {
	return EncodeCommand(HeartbeatOp, seq)
}
