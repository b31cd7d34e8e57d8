package busmsg

// DefaultCapacity is the bus channel's buffer size when Bus is constructed
// with capacity <= 0: a dispatch-by-dispatch bus doesn't need much slack,
// but the session's read loop must never block on a slow subscriber for
// long, grounded on disgord's per-event-type channel dispatcher
// (NewDispatch's unbuffered channels are the shape this borrows; the
// capacity is a concession to this module's single-writer/single-channel
// design so a momentarily-busy subscriber doesn't stall heartbeats).
const DefaultCapacity = 64

// Bus is the publish-only surface of the API Message Bus (§4.6): one bounded
// channel carrying every Message in delivery order. Only the Session state
// machine ever calls Publish; everything else only reads Messages().
type Bus struct {
	ch chan Message
}

// NewBus constructs a Bus with the given channel capacity. capacity <= 0
// selects DefaultCapacity.
func NewBus(capacity int) *Bus {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Bus{ch: make(chan Message, capacity)}
}

// Messages returns the receive-only channel subscribers read from.
func (b *Bus) Messages() <-chan Message {
	return b.ch
}

// Publish delivers msg, blocking if the channel is full. Delivery is
// at-least-once per applied dispatch (§4.6): callers never drop a message
// once Publish is called, they only wait.
func (b *Bus) Publish(msg Message) {
	b.ch <- msg
}

// TryPublish attempts a non-blocking delivery, reporting whether it
// succeeded. The session's outbound path never uses this — the bus runs on
// the same goroutine as the read loop, so a stalled subscriber stalls
// delivery by design, same as a stalled outbound channel stalls the
// connection (§5's "overflow ... is a fatal connection error" for sends;
// the bus has no such ceiling since it is not to-the-wire).
func (b *Bus) TryPublish(msg Message) bool {
	select {
	case b.ch <- msg:
		return true
	default:
		return false
	}
}

// Close closes the underlying channel. Callers must not Publish after
// Close; only the Session, which owns the Bus, ever calls this, at
// Shutdown.
func (b *Bus) Close() {
	close(b.ch)
}
