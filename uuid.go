package tuuid

import (
	"encoding/binary"
)

// UUID represents a Universally Unique Identifier as defined by RFC 4122,
// stored as the six fields of the standard layout. The zero value is the nil
// UUID and UUIDs compare with ==.
type UUID struct {
	TimeLow               uint32
	TimeMid               uint16
	TimeHiAndVersion      uint16
	ClockSeqHiAndReserved uint8
	ClockSeqLow           uint8
	Node                  uint64 // low 48 bits
}

// Version represents the UUID version
type Version byte

const (
	_ Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom
	VersionNameBasedSHA1
	_
	VersionTimeSorted // UUIDv7
	VersionCustom     // UUIDv8
)

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

const (
	maxNode = 1<<48 - 1

	// multicastBit marks the node field as randomly generated rather than a
	// hardware MAC address (RFC 4122 §4.1.6).
	multicastBit = 1 << 40
)

// Nil is the nil UUID, 00000000-0000-0000-0000-000000000000
var Nil = MustParse("00000000-0000-0000-0000-000000000000")

// FromFields constructs a UUID from the six RFC 4122 field values.
// Node must fit in 48 bits; the five fixed-width fields cannot overflow by
// construction.
func FromFields(timeLow uint32, timeMid, timeHi uint16, seqHi, seqLow uint8, node uint64) (UUID, error) {
	if node > maxNode {
		return UUID{}, ErrFieldOverflow
	}
	return UUID{
		TimeLow:               timeLow,
		TimeMid:               timeMid,
		TimeHiAndVersion:      timeHi,
		ClockSeqHiAndReserved: seqHi,
		ClockSeqLow:           seqLow,
		Node:                  node,
	}, nil
}

// Field returns the i'th RFC 4122 field (0 through 5) widened to uint64,
// in the order timeLow, timeMid, timeHiAndVersion, clockSeqHiAndReserved,
// clockSeqLow, node. It panics if i is out of range.
func (u UUID) Field(i int) uint64 {
	switch i {
	case 0:
		return uint64(u.TimeLow)
	case 1:
		return uint64(u.TimeMid)
	case 2:
		return uint64(u.TimeHiAndVersion)
	case 3:
		return uint64(u.ClockSeqHiAndReserved)
	case 4:
		return uint64(u.ClockSeqLow)
	case 5:
		return u.Node
	default:
		panic("tuuid: field index out of range")
	}
}

// Version returns the version of the UUID
func (u UUID) Version() Version {
	return Version(u.TimeHiAndVersion >> 12)
}

// Variant returns the variant of the UUID
func (u UUID) Variant() Variant {
	switch {
	case (u.ClockSeqHiAndReserved & 0x80) == 0x00:
		return VariantNCS
	case (u.ClockSeqHiAndReserved & 0xc0) == 0x80:
		return VariantRFC4122
	case (u.ClockSeqHiAndReserved & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// ClockSequence returns the 14-bit clock sequence carried by the UUID,
// with the variant bits stripped.
func (u UUID) ClockSequence() uint16 {
	return uint16(u.ClockSeqHiAndReserved&0x3F)<<8 | uint16(u.ClockSeqLow)
}

// array packs the fields into the RFC 4122 big-endian wire layout.
func (u UUID) array() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint32(b[0:4], u.TimeLow)
	binary.BigEndian.PutUint16(b[4:6], u.TimeMid)
	binary.BigEndian.PutUint16(b[6:8], u.TimeHiAndVersion)
	b[8] = u.ClockSeqHiAndReserved
	b[9] = u.ClockSeqLow
	binary.BigEndian.PutUint16(b[10:12], uint16(u.Node>>32))
	binary.BigEndian.PutUint32(b[12:16], uint32(u.Node))
	return b
}

// Bytes returns the UUID as a 16-byte big-endian slice
func (u UUID) Bytes() []byte {
	b := u.array()
	return b[:]
}

// FromBytes creates a UUID from a 16-byte big-endian slice
func FromBytes(b []byte) (UUID, error) {
	if len(b) != 16 {
		return UUID{}, ErrInvalidLength
	}
	return UUID{
		TimeLow:               binary.BigEndian.Uint32(b[0:4]),
		TimeMid:               binary.BigEndian.Uint16(b[4:6]),
		TimeHiAndVersion:      binary.BigEndian.Uint16(b[6:8]),
		ClockSeqHiAndReserved: b[8],
		ClockSeqLow:           b[9],
		Node:                  uint64(binary.BigEndian.Uint16(b[10:12]))<<32 | uint64(binary.BigEndian.Uint32(b[12:16])),
	}, nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) UUID {
	uuid, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return uuid
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// Equal returns true if u and other carry the same six field values.
// String forms never participate in comparison.
func (u UUID) Equal(other UUID) bool {
	return u == other
}

// Compare returns an integer comparing two UUIDs lexicographically over
// their big-endian byte form. The result will be 0 if u==other, -1 if
// u < other, and +1 if u > other.
func (u UUID) Compare(other UUID) int {
	a, b := u.array(), other.array()
	for i := 0; i < 16; i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}
