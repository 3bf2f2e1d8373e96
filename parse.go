package tuuid

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses a UUID from its string representation.
// It accepts the following formats, with optional surrounding whitespace:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical)
//   - urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//
// Hex digits and the urn prefix are case-insensitive. The prefix and suffix
// must pair up: a "{" requires a closing "}", and the urn form must not
// carry a trailing "}". Parse never panics on malformed input; it returns
// ErrInvalidFormat so callers can use it as a validation probe.
func Parse(s string) (UUID, error) {
	s = strings.TrimSpace(s)

	switch {
	case len(s) >= 9 && strings.EqualFold(s[:9], "urn:uuid:"):
		s = s[9:]
		if strings.HasSuffix(s, "}") {
			return UUID{}, ErrInvalidFormat
		}
	case strings.HasPrefix(s, "{"):
		if !strings.HasSuffix(s, "}") || len(s) < 2 {
			return UUID{}, ErrInvalidFormat
		}
		s = s[1 : len(s)-1]
	case strings.HasSuffix(s, "}"):
		return UUID{}, ErrInvalidFormat
	}

	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return UUID{}, ErrInvalidFormat
	}

	timeLow, err := parseHexField(s[0:8], 32)
	if err != nil {
		return UUID{}, err
	}
	timeMid, err := parseHexField(s[9:13], 16)
	if err != nil {
		return UUID{}, err
	}
	timeHi, err := parseHexField(s[14:18], 16)
	if err != nil {
		return UUID{}, err
	}
	seqHi, err := parseHexField(s[19:21], 8)
	if err != nil {
		return UUID{}, err
	}
	seqLow, err := parseHexField(s[21:23], 8)
	if err != nil {
		return UUID{}, err
	}
	node, err := parseHexField(s[24:36], 48)
	if err != nil {
		return UUID{}, err
	}

	return UUID{
		TimeLow:               uint32(timeLow),
		TimeMid:               uint16(timeMid),
		TimeHiAndVersion:      uint16(timeHi),
		ClockSeqHiAndReserved: uint8(seqHi),
		ClockSeqLow:           uint8(seqLow),
		Node:                  node,
	}, nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("tuuid: Parse(%q): %v", s, err))
	}
	return uuid
}

// parseHexField parses a fixed-length hex digit group into at most bits bits
func parseHexField(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 16, bits)
	if err != nil {
		return 0, ErrInvalidFormat
	}
	return v, nil
}
