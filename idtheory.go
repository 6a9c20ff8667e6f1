package idtheory

import (
	"io"
	"os"
	"sync"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Generator mints identifiers. It is safe for concurrent use: the object
// identifier counter is atomic, the ULID entropy reader is locked, and the
// remaining fields are immutable after New returns.
type Generator struct {
	clock Clock
	rand  Rand
	log   *zap.Logger

	machineID    uint32
	hasMachineID bool
	pid          uint16
	hasPID       bool

	counter    rollingCounter
	hasCounter bool

	entropy io.Reader
}

type Option func(*Generator)

// New creates a Generator. By default it reads the real clock, draws from a
// process-seeded non-cryptographic random source, uses the OS process id,
// and seeds the machine id and object-id counter randomly.
func New(opts ...Option) *Generator {
	g := &Generator{
		clock: RealClock{},
		rand:  SystemRand{},
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(g)
	}
	if !g.hasMachineID {
		g.machineID = g.rand.Uint32N(machineIDSpace)
	}
	if !g.hasPID {
		//nolint:gosec // the process id field is two bytes wide; wider pids wrap.
		g.pid = uint16(os.Getpid())
	}
	if !g.hasCounter {
		g.counter.seed(g.rand.Uint32N(counterSpace))
	}
	g.entropy = &ulid.LockedMonotonicReader{
		MonotonicReader: ulid.Monotonic(randReader{g.rand}, 0),
	}
	g.log.Debug("identifier generator initialized",
		zap.Uint32("machine_id", g.machineID),
		zap.Uint16("process_id", g.pid),
	)
	return g
}

// WithClock sets the time source for object identifiers and ULIDs. A nil
// clock restores the real clock.
func WithClock(clock Clock) Option {
	return func(g *Generator) {
		if clock == nil {
			g.clock = RealClock{}
			return
		}
		g.clock = clock
	}
}

// WithRand sets the randomness source. A nil source restores the default.
func WithRand(r Rand) Option {
	return func(g *Generator) {
		if r == nil {
			g.rand = SystemRand{}
			return
		}
		g.rand = r
	}
}

// WithLogger attaches a logger for generation diagnostics. A nil logger
// restores the no-op default.
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) {
		if log == nil {
			g.log = zap.NewNop()
			return
		}
		g.log = log
	}
}

// WithMachineID pins the 3-byte machine id field instead of drawing it
// randomly at construction. Values wider than 24 bits are truncated.
func WithMachineID(id uint32) Option {
	return func(g *Generator) {
		g.machineID = id % machineIDSpace
		g.hasMachineID = true
	}
}

// WithProcessID pins the 2-byte process id field instead of reading the OS
// process id. Values wider than 16 bits wrap.
func WithProcessID(pid int) Option {
	return func(g *Generator) {
		//nolint:gosec // the process id field is two bytes wide; wider pids wrap.
		g.pid = uint16(pid)
		g.hasPID = true
	}
}

// WithCounterSeed pins the object-id counter's starting value instead of
// seeding it randomly. The first generated object id carries seed+1, the
// same progression a random seed follows.
func WithCounterSeed(seed uint32) Option {
	return func(g *Generator) {
		g.counter.seed(seed % counterSpace)
		g.hasCounter = true
	}
}

var defaultGenerator = sync.OnceValue(func() *Generator {
	return New()
})

// NewV3 derives a version 3 (MD5 name-based) UUID using the default
// Generator.
func NewV3(namespace, name string) (string, error) {
	return defaultGenerator().NewV3(namespace, name)
}

// NewV4 generates a random version 4 UUID using the default Generator.
func NewV4() string {
	return defaultGenerator().NewV4()
}

// NewV5 derives a version 5 (SHA-1 name-based) UUID using the default
// Generator.
func NewV5(namespace, name string) (string, error) {
	return defaultGenerator().NewV5(namespace, name)
}

// NewObjectID generates a 24-character object identifier using the default
// Generator.
func NewObjectID() string {
	return defaultGenerator().NewObjectID()
}

// NewPrefixedID generates a checksum-prefixed object identifier using the
// default Generator.
func NewPrefixedID(namespace string) string {
	return defaultGenerator().NewPrefixedID(namespace)
}

// NewULID generates a sortable ULID using the default Generator.
func NewULID() string {
	return defaultGenerator().NewULID()
}
