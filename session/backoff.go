package session

import (
	"math"
	"math/rand"
	"time"
)

// backoff is an exponential-with-jitter delay counter between reconnect
// attempts, adapted from arikawa's internal/backoff package (itself taken
// from jpillora/backoff) into the state machine's own idiom: a plain value
// type the caller owns, reset once a gateway URL is successfully retrieved
// (§4.5's "attempts counter is reset to zero once a gateway URL is
// successfully retrieved").
type backoff struct {
	min, max time.Duration
	attempt  int
}

const backoffFactor = 2

func newBackoff(min, max time.Duration) backoff {
	return backoff{min: min, max: max}
}

// next returns the delay before the next connect attempt and advances the
// counter.
func (b *backoff) next() time.Duration {
	d := b.forAttempt(b.attempt)
	b.attempt++
	return d
}

// reset zeroes the attempt counter, per §4.5: a successful gateway URL
// fetch resets backoff, at the same point where runIdle also resets the
// Session's reconnect-attempts counter checked against MaxReconnectAttempts.
func (b *backoff) reset() {
	b.attempt = 0
}

func (b *backoff) forAttempt(attempt int) time.Duration {
	minf := float64(b.min)
	maxf := float64(b.max)
	if minf <= 0 {
		minf = float64(time.Second)
	}
	if maxf <= 0 {
		maxf = float64(time.Minute)
	}

	dur := minf * math.Pow(backoffFactor, float64(attempt))
	dur = dur/2 + dur*rand.Float64()/2 // jitter, as arikawa's backoff does
	if dur > maxf {
		return time.Duration(maxf)
	}
	return time.Duration(dur)
}
