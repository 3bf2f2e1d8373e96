package tuuid

import (
	"sync"
	"time"
)

// gregorianEpochMillis is the span in milliseconds from the RFC 4122 count
// origin (1582-10-15T00:00:00Z, the Gregorian reform date) to the Unix epoch.
const gregorianEpochMillis = 12219292800000

// maxTick is the ceiling of the sub-millisecond tick counter. Once the tick
// budget inside one millisecond is spent, uniqueness falls back to the
// clock sequence.
const maxTick = 9984

// Generator is a thread-safe version 1 UUID generator. It compensates for
// the coarse system clock with a synthetic sub-millisecond tick and keeps a
// 14-bit clock sequence as the fallback uniqueness guarantee across tick
// exhaustion and clock regression.
type Generator struct {
	mu         sync.Mutex
	src        Source
	seeded     bool
	lastMillis int64  // wall clock of the previous generation, Unix ms
	seq        uint16 // 14-bit clock sequence
	tick       uint16 // sub-millisecond counter, rewound when the clock advances
	node       uint64 // 48-bit node identifier, multicast bit set
}

// NewGenerator creates a new version 1 generator with its own clock state,
// drawing randomness from a math/rand stream seeded from crypto/rand.
func NewGenerator() *Generator {
	return &Generator{src: newMathSource()}
}

// NewGeneratorWithSource creates a new version 1 generator with a custom
// random source. This is primarily useful for testing with deterministic
// sources.
func NewGeneratorWithSource(src Source) *Generator {
	return &Generator{src: src}
}

// seed draws a fresh clock sequence and node identifier and rewinds the
// clock state. Callers must hold g.mu.
func (g *Generator) seed() error {
	seq, err := g.src.Bits(14)
	if err != nil {
		return err
	}
	node, err := g.src.Bits(48)
	if err != nil {
		return err
	}
	g.seq = uint16(seq)
	g.node = node | multicastBit
	g.lastMillis = 0
	g.tick = 0
	g.seeded = true
	return nil
}

// New generates a new version 1 UUID with the current wall clock time.
func (g *Generator) New() (UUID, error) {
	return g.NewWithTime(time.Now())
}

// NewWithTime generates a new version 1 UUID as if the wall clock read t.
// The whole state transition runs under one lock: the branch taken depends
// on timestamp, tick and sequence together, so no finer locking is sound.
func (g *Generator) NewWithTime(t time.Time) (UUID, error) {
	now := t.UnixMilli()

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.seeded {
		if err := g.seed(); err != nil {
			return UUID{}, err
		}
	}

	if now != g.lastMillis {
		// Clock regression: bump the sequence so the new timeline cannot
		// collide with identifiers already issued at later timestamps.
		if now < g.lastMillis {
			g.seq++
		}
		g.lastMillis = now
		r, err := g.src.Bits(4)
		if err != nil {
			return UUID{}, err
		}
		g.tick = uint16(r)
	} else {
		// Same millisecond. Advance the tick by 1-16 with probability 1/4
		// while budget remains; otherwise the sequence absorbs the call.
		coin, err := g.src.Bits(2)
		if err != nil {
			return UUID{}, err
		}
		if coin == 0 && g.tick < maxTick {
			step, err := g.src.Bits(4)
			if err != nil {
				return UUID{}, err
			}
			g.tick += 1 + uint16(step)
		} else {
			g.seq++
		}
	}

	g.seq &= 0x3FFF
	low, mid, hi := gregorianFields(now)

	return UUID{
		TimeLow:               low + uint32(g.tick),
		TimeMid:               mid,
		TimeHiAndVersion:      hi&0x0FFF | 0x1000, // version 1
		ClockSeqHiAndReserved: uint8(g.seq>>8) | 0x80,
		ClockSeqLow:           uint8(g.seq),
		Node:                  g.node,
	}, nil
}

// Reset discards the generator's clock state and draws a fresh clock
// sequence and node identifier. It is never invoked automatically; it
// exists for tests and for recovering from a detected node-identity change.
func (g *Generator) Reset() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seed()
}

// SetNode pins the generator's node field to the low 48 bits of node, for
// deployments that coordinate node identity externally. The multicast bit
// is forced so a pinned node can never be mistaken for a MAC address.
func (g *Generator) SetNode(node uint64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.seeded {
		// Seed first so a later New does not overwrite the pinned node.
		if err := g.seed(); err != nil {
			return err
		}
	}
	g.node = node&maxNode | multicastBit
	return nil
}

// gregorianFields converts a Unix millisecond timestamp into the low, mid
// and high sub-fields of the RFC 4122 60-bit interval count. The masking
// follows the reference formulas bit for bit so the time fields stay
// interoperable with other RFC 4122 readers:
//
//	delta = ms + gregorianEpochMillis
//	high  = ((delta >> 32) * 10000) & 0xFFFFFFF
//	low   = ((delta & 0xFFFFFFF) * 10000) mod 2^32
func gregorianFields(millis int64) (low uint32, mid, hi uint16) {
	delta := uint64(millis + gregorianEpochMillis)
	high := ((delta >> 32) * 10000) & 0xFFFFFFF
	low = uint32((delta & 0xFFFFFFF) * 10000)
	mid = uint16(high)
	hi = uint16(high >> 16)
	return low, mid, hi
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = tuuid.Must(generator.New())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

// defaultGenerator is the package-level generator used by the New* functions
var defaultGenerator = NewGenerator()

// New generates a new version 1 UUID using the default generator.
// This is a convenience function that uses the package-level generator.
func New() (UUID, error) {
	return defaultGenerator.New()
}

// NewV1 is an alias for New() for explicit version specification
func NewV1() (UUID, error) {
	return defaultGenerator.New()
}
