package idtheory

import "math/rand/v2"

// Rand supplies randomness for identifier generation. Implementations must
// be safe for concurrent use. The identifiers this package generates are
// contractually NON-cryptographic: do not rely on them where
// unpredictability is a security requirement.
type Rand interface {
	// Uint32N returns a uniformly distributed value in [0, n).
	Uint32N(n uint32) uint32
}

// SystemRand draws from the process-seeded math/rand/v2 generator, which is
// safe for concurrent use.
type SystemRand struct{}

func (SystemRand) Uint32N(n uint32) uint32 {
	return rand.Uint32N(n)
}

// randReader adapts a Rand to io.Reader for ULID entropy.
type randReader struct {
	r Rand
}

func (r randReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.r.Uint32N(256))
	}
	return len(p), nil
}
