package tuuid

import (
	"database/sql/driver"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [36]byte
	encodeHex(buf[:], u)
	return string(buf[:])
}

// URN returns the UUID in RFC 2141 URN form: urn:uuid:xxxxxxxx-...
func (u UUID) URN() string {
	return "urn:uuid:" + u.String()
}

// encodeHex encodes UUID to its canonical hex representation
func encodeHex(dst []byte, u UUID) {
	b := u.array()
	hex.Encode(dst[0:8], b[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], b[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], b[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], b[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], b[10:16])
}

// align formats v in the given base (2 or 16) and left-pads it with '0' to
// exactly width characters. Values whose natural rendering is already width
// characters or longer pass through untouched; align never truncates, so the
// caller must guarantee the value fits.
func align(v uint64, base, width int) string {
	s := strconv.FormatUint(v, base)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// BitString returns the UUID as a 128-character binary string, the six
// fields concatenated at their declared widths (32, 16, 16, 8, 8, 48).
func (u UUID) BitString() string {
	var b strings.Builder
	b.Grow(128)
	b.WriteString(align(uint64(u.TimeLow), 2, 32))
	b.WriteString(align(uint64(u.TimeMid), 2, 16))
	b.WriteString(align(uint64(u.TimeHiAndVersion), 2, 16))
	b.WriteString(align(uint64(u.ClockSeqHiAndReserved), 2, 8))
	b.WriteString(align(uint64(u.ClockSeqLow), 2, 8))
	b.WriteString(align(u.Node, 2, 48))
	return b.String()
}

// EncodeToHex encodes the UUID to a hexadecimal string without hyphens
func (u UUID) EncodeToHex() string {
	b := u.array()
	return hex.EncodeToString(b[:])
}

// EncodeToBase64 encodes the UUID to a base64 string (URL-safe, no padding)
func (u UUID) EncodeToBase64() string {
	b := u.array()
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// EncodeToBase64Std encodes the UUID to a standard base64 string
func (u UUID) EncodeToBase64Std() string {
	b := u.array()
	return base64.StdEncoding.EncodeToString(b[:])
}

// DecodeFromHex decodes a 32-character non-delimited hexadecimal string to UUID
func DecodeFromHex(s string) (UUID, error) {
	if len(s) != 32 {
		return UUID{}, ErrInvalidFormat
	}
	var b [16]byte
	if _, err := hex.Decode(b[:], []byte(s)); err != nil {
		return UUID{}, ErrInvalidFormat
	}
	return MustFromBytes(b[:]), nil
}

// DecodeFromBase64 decodes a base64 string to UUID (URL-safe encoding)
func DecodeFromBase64(s string) (UUID, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return UUID{}, ErrInvalidFormat
	}
	return FromBytes(data)
}

// DecodeFromBase64Std decodes a standard base64 string to UUID
func DecodeFromBase64Std(s string) (UUID, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return UUID{}, ErrInvalidFormat
	}
	return FromBytes(data)
}

// MarshalText implements the encoding.TextMarshaler interface
func (u UUID) MarshalText() ([]byte, error) {
	var buf [36]byte
	encodeHex(buf[:], u)
	return buf[:], nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (u UUID) MarshalBinary() ([]byte, error) {
	return u.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (u *UUID) UnmarshalBinary(data []byte) error {
	id, err := FromBytes(data)
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*u = id
		return nil
	case []byte:
		if len(src) == 16 {
			id, err := FromBytes(src)
			if err != nil {
				return err
			}
			*u = id
			return nil
		}
		if len(src) == 0 {
			return nil
		}
		id, err := Parse(string(src))
		if err != nil {
			return err
		}
		*u = id
		return nil
	default:
		return fmt.Errorf("tuuid: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}
