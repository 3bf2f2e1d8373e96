package tuuid

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// MaxBits is the widest random draw a Source must support.
const MaxBits = 53

// Source supplies uniformly distributed unsigned integers of a requested
// bit width. Implementations need not be safe for concurrent use; a
// Generator serializes access to its Source.
type Source interface {
	// Bits returns a uniform value in [0, 2^width). Width 0 yields 0.
	// Widths outside [0, MaxBits] are a usage error and return ErrBitWidth.
	Bits(width int) (uint64, error)
}

// mathSource draws from a math/rand generator seeded with entropy from
// crypto/rand. The tick and clock sequence machinery, not entropy quality,
// carries the uniqueness guarantee, so a pseudo-random stream is sufficient.
type mathSource struct {
	r *rand.Rand
}

func newMathSource() *mathSource {
	var seed [8]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// OS entropy pool unavailable; a time seed still satisfies the
		// contract since uniqueness does not rest on the random stream.
		return &mathSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
	}
	return &mathSource{r: rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(seed[:]))))}
}

// Bits returns a uniform value in [0, 2^width). Widths above 30 are
// assembled from two independent draws, width-30 high bits over 30 low
// bits, so the result stays uniform regardless of the generator's native
// draw size.
func (s *mathSource) Bits(width int) (uint64, error) {
	if width < 0 || width > MaxBits {
		return 0, ErrBitWidth
	}
	if width == 0 {
		return 0, nil
	}
	if width > 30 {
		hi := uint64(s.r.Int31n(1 << (width - 30)))
		lo := uint64(s.r.Int31n(1 << 30))
		return hi<<30 | lo, nil
	}
	return uint64(s.r.Int31n(1 << width)), nil
}
