package tuuid

// v4Widths are the random bit widths drawn per field for a version 4 UUID.
// The version nibble and variant bits are not drawn; they are OR'd in after.
var v4Widths = [6]int{32, 16, 12, 6, 8, 48}

// NewV4 generates a version 4 (fully random) UUID from the generator's
// random source. Version 4 carries no clock state; only the source access
// is serialized.
func (g *Generator) NewV4() (UUID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var fields [6]uint64
	for i, w := range v4Widths {
		v, err := g.src.Bits(w)
		if err != nil {
			return UUID{}, err
		}
		fields[i] = v
	}

	return UUID{
		TimeLow:               uint32(fields[0]),
		TimeMid:               uint16(fields[1]),
		TimeHiAndVersion:      uint16(fields[2]) | 0x4000, // version 4
		ClockSeqHiAndReserved: uint8(fields[3]) | 0x80,    // RFC 4122 variant
		ClockSeqLow:           uint8(fields[4]),
		Node:                  fields[5],
	}, nil
}

// NewV4 generates a new version 4 UUID using the default generator.
func NewV4() (UUID, error) {
	return defaultGenerator.NewV4()
}

// NewString generates a version 4 UUID and returns its canonical
// hyphenated form.
func NewString() (string, error) {
	u, err := NewV4()
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
