// Package countdown provides a single-shot count-down timer backed by the
// host's monotonic clock.
//
// Wait sleeps through most of a long interval and spins for the remainder,
// so waits of a few microseconds are honoured even though the scheduler
// cannot wake a goroutine that precisely.
//
// The zero value is ready to use.
package countdown

import (
	"errors"
	"time"
)

// ErrNotStarted is returned by Wait when there is no running count-down.
var ErrNotStarted = errors.New("countdown: timer not started")

// Remaining time below which Wait stops sleeping and polls the clock.
const spinThreshold = 200 * time.Microsecond

// Timer is a count-down timer. It is not safe for concurrent use.
type Timer struct {
	deadline time.Time
	running  bool
}

// New returns a stopped timer.
func New() *Timer {
	return &Timer{}
}

// Start begins counting down d, replacing any count-down in progress.
func (t *Timer) Start(d time.Duration) {
	t.deadline = time.Now().Add(d)
	t.running = true
}

// Wait blocks until the count-down started by the last Start has elapsed.
// Each Start allows one Wait.
func (t *Timer) Wait() error {
	if !t.running {
		return ErrNotStarted
	}
	t.running = false
	for {
		left := time.Until(t.deadline)
		if left <= 0 {
			return nil
		}
		if left > spinThreshold {
			time.Sleep(left - spinThreshold)
		}
	}
}

// Remaining returns the time left on the running count-down, or 0.
func (t *Timer) Remaining() time.Duration {
	if !t.running {
		return 0
	}
	if left := time.Until(t.deadline); left > 0 {
		return left
	}
	return 0
}
