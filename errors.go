package tuuid

import "errors"

var (
	// ErrInvalidFormat indicates that the UUID string format is invalid
	ErrInvalidFormat = errors.New("tuuid: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("tuuid: invalid UUID length (expected 16 bytes)")

	// ErrBitWidth indicates a random draw was requested outside 0-53 bits
	ErrBitWidth = errors.New("tuuid: random bit width out of range [0, 53]")

	// ErrFieldOverflow indicates a field value wider than its declared bit width
	ErrFieldOverflow = errors.New("tuuid: field value exceeds its declared bit width")
)
