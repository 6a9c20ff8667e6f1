package idtheory

import (
	"fmt"
	"hash/crc32"
	"sync/atomic"
)

const (
	// machineIDSpace bounds the 3-byte machine id field.
	machineIDSpace = 1 << 24
	// counterSpace bounds the 3-byte rolling counter field.
	counterSpace = 1 << 24
)

// rollingCounter is a 24-bit counter with an atomic read-modify-write, so
// concurrent generation never repeats a value within the wrap window.
type rollingCounter struct {
	v atomic.Uint32
}

func (c *rollingCounter) seed(start uint32) {
	c.v.Store(start)
}

// next increments the counter and returns the new value masked to 24 bits.
func (c *rollingCounter) next() uint32 {
	return c.v.Add(1) % counterSpace
}

// NewObjectID generates a 24-character lowercase hex identifier laid out as
// a 4-byte Unix-seconds timestamp, a 3-byte machine id, a 2-byte process
// id, and a 3-byte rolling counter. The counter increments on every call,
// so identifiers never repeat within a process until it wraps past 2^24.
func (g *Generator) NewObjectID() string {
	//nolint:gosec // the timestamp field is four bytes wide; it wraps past 0xFFFFFFFF seconds.
	ts := uint32(g.clock.Now().Unix())
	return fmt.Sprintf("%08x%06x%04x%06x", ts, g.machineID, g.pid, g.counter.next())
}

// NewPrefixedID generates an object identifier prefixed with the IEEE
// CRC-32 checksum of namespace, rendered as 8 lowercase hex characters and
// separated by a hyphen. The prefix is deterministic in the namespace; the
// suffix is a fresh object identifier.
func (g *Generator) NewPrefixedID(namespace string) string {
	return fmt.Sprintf("%08x-%s", crc32.ChecksumIEEE([]byte(namespace)), g.NewObjectID())
}
