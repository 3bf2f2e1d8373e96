package tuuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lzww0608/tuuid"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"canonical", "f47ac10b-58cc-4372-a567-0e02b2c3d479"},
		{"uppercase", "F47AC10B-58CC-4372-A567-0E02B2C3D479"},
		{"urn prefix", "urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479"},
		{"urn prefix uppercase", "URN:UUID:f47ac10b-58cc-4372-a567-0e02b2c3d479"},
		{"braces", "{f47ac10b-58cc-4372-a567-0e02b2c3d479}"},
		{"surrounding whitespace", "  f47ac10b-58cc-4372-a567-0e02b2c3d479\n"},
		{"braces with whitespace", "\t{f47ac10b-58cc-4372-a567-0e02b2c3d479} "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uuid, err := tuuid.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, "f47ac10b-58cc-4372-a567-0e02b2c3d479", uuid.String())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing hyphens", "f47ac10b58cc4372a5670e02b2c3d479"},
		{"truncated", "f47ac10b-58cc-4372-a567"},
		{"wrong group length", "f47ac10-b58cc-4372-a567-0e02b2c3d479"},
		{"hyphen misplaced", "f47ac10b58cc-4372-a567-0e02b2c3d479"},
		{"non-hex digit", "g47ac10b-58cc-4372-a567-0e02b2c3d479"},
		{"unclosed brace", "{f47ac10b-58cc-4372-a567-0e02b2c3d479"},
		{"unopened brace", "f47ac10b-58cc-4372-a567-0e02b2c3d479}"},
		{"urn with trailing brace", "urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479}"},
		{"urn with braces", "urn:uuid:{f47ac10b-58cc-4372-a567-0e02b2c3d479}"},
		{"interior whitespace", "f47ac10b-58cc- 372-a567-0e02b2c3d479"},
		{"trailing garbage", "f47ac10b-58cc-4372-a567-0e02b2c3d479ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tuuid.Parse(tt.input)
			assert.ErrorIs(t, err, tuuid.ErrInvalidFormat)
		})
	}
}

func TestParse_Fields(t *testing.T) {
	uuid, err := tuuid.Parse("urn:uuid:01234567-89ab-4def-8123-456789abcdef")
	require.NoError(t, err)

	assert.Equal(t, uint32(0x01234567), uuid.TimeLow)
	assert.Equal(t, uint16(0x89ab), uuid.TimeMid)
	assert.Equal(t, uint16(0x4def), uuid.TimeHiAndVersion)
	assert.Equal(t, uint8(0x81), uuid.ClockSeqHiAndReserved)
	assert.Equal(t, uint8(0x23), uuid.ClockSeqLow)
	assert.Equal(t, uint64(0x456789abcdef), uuid.Node)
	assert.Equal(t, tuuid.VersionRandom, uuid.Version())
}

func TestParse_BracePairing(t *testing.T) {
	braced, err := tuuid.Parse("{01234567-89ab-4def-8123-456789abcdef}")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01234567), braced.TimeLow)

	_, err = tuuid.Parse("{01234567-89ab-4def-8123-456789abcdef")
	assert.Error(t, err)
}

func TestParse_RoundTrip(t *testing.T) {
	for i := 0; i < 20; i++ {
		id, err := tuuid.New()
		require.NoError(t, err)

		parsed, err := tuuid.Parse(id.String())
		require.NoError(t, err)
		assert.True(t, id.Equal(parsed), "round-trip mismatch: %v vs %v", id, parsed)

		parsed, err = tuuid.Parse(id.URN())
		require.NoError(t, err)
		assert.True(t, id.Equal(parsed))
	}
}

func TestMustParse(t *testing.T) {
	uuid := tuuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	assert.False(t, uuid.IsNil())

	assert.Panics(t, func() {
		tuuid.MustParse("invalid-uuid")
	})
}
