// Package testkit provides deterministic Clock and Rand doubles for testing
// code that generates identifiers.
package testkit

import (
	"sync"
	"time"

	"github.com/theory-cloud/idtheory"
)

// FixedClock returns the same instant from every Now call.
type FixedClock struct {
	Instant time.Time
}

var _ idtheory.Clock = FixedClock{}

func (c FixedClock) Now() time.Time {
	return c.Instant
}

// SteppingClock starts at Start and advances by Step on every Now call.
type SteppingClock struct {
	Start time.Time
	Step  time.Duration

	mu    sync.Mutex
	calls int
}

var _ idtheory.Clock = (*SteppingClock)(nil)

func (c *SteppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.Start.Add(time.Duration(c.calls) * c.Step)
	c.calls++
	return now
}

// SequenceRand replays a scripted sequence of draws, reducing each value
// modulo the requested bound and wrapping around when the script is
// exhausted. An empty script yields zeros.
type SequenceRand struct {
	Values []uint32

	mu  sync.Mutex
	pos int
}

var _ idtheory.Rand = (*SequenceRand)(nil)

func (r *SequenceRand) Uint32N(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Values) == 0 {
		return 0
	}
	v := r.Values[r.pos%len(r.Values)]
	r.pos++
	return v % n
}
