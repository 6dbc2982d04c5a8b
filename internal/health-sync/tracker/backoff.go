package tracker

import (
	"math/rand"
	"time"
)

// Backoff produces exponentially growing, jittered reconnect delays capped at
// Max so a failing backend is not hammered on a fixed cadence.
type Backoff struct {
	Initial time.Duration
	Max     time.Duration
}

// Delay returns the wait before reconnect attempt n (1-based), jittered by
// +-20%.
func (b Backoff) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := b.Initial
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= b.Max {
			d = b.Max
			break
		}
	}
	if d > b.Max {
		d = b.Max
	}
	jitter := 0.8 + 0.4*rand.Float64()
	return time.Duration(float64(d) * jitter)
}
