package session

import "time"

// pacemaker drives the periodic SendHeartbeat tick and tracks whether the
// previous beat was acknowledged, grounded on arikawa/gateway/pacemaker.go's
// Pacemaker: a ticker plus a missed-ack flag, except here it is a plain
// value driven by the state machine's own select loop rather than owning a
// goroutine of its own, since §5 specifies a single cooperatively-scheduled
// task.
type pacemaker struct {
	interval time.Duration
	ticker   *time.Ticker

	ackPending bool
}

func newPacemaker(interval time.Duration) *pacemaker {
	return &pacemaker{
		interval: interval,
		ticker:   time.NewTicker(interval),
	}
}

// tick is the channel the state machine selects on for SendHeartbeat.
func (p *pacemaker) tick() <-chan time.Time {
	return p.ticker.C
}

func (p *pacemaker) stop() {
	p.ticker.Stop()
}

// beat records that a heartbeat was just sent, pending its ack.
func (p *pacemaker) beat() {
	p.ackPending = true
}

// ack records HeartbeatAck, clearing the pending flag.
func (p *pacemaker) ack() {
	p.ackPending = false
}

// dead reports whether the previous heartbeat was never acknowledged,
// i.e. two consecutive SendHeartbeat ticks elapsed with no HeartbeatAck in
// between (§4.5, §7 kind 4, §8 scenario 3).
func (p *pacemaker) dead() bool {
	return p.ackPending
}
