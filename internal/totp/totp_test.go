package totp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Base32 encoding of the RFC 6238 test secret "12345678901234567890".
const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func TestGenerate_RFC6238Vectors(t *testing.T) {
	// The RFC publishes 8-digit values; the 6-digit codes below are those
	// values truncated to the last six digits, zeros preserved.
	tests := []struct {
		unix int64
		code string
	}{
		{59, "287082"},
		{1111111109, "081804"},
		{1111111111, "050471"},
		{1234567890, "005924"},
		{2000000000, "279037"},
	}

	for _, tt := range tests {
		code, err := Generate(rfcSecret, time.Unix(tt.unix, 0).UTC())
		require.NoError(t, err)
		assert.Equal(t, tt.code, code, "unix time %d", tt.unix)
		assert.Len(t, code, 6)
	}
}

func TestGenerate_StableWithinWindow(t *testing.T) {
	windowStart := time.Unix(1111111080, 0).UTC() // floor(1111111109/30)*30

	first, err := Generate(rfcSecret, windowStart)
	require.NoError(t, err)

	last, err := Generate(rfcSecret, windowStart.Add(29*time.Second))
	require.NoError(t, err)

	assert.Equal(t, first, last)

	// 1111111109 and 1111111111 sit in adjacent windows with known,
	// distinct codes.
	next, err := Generate(rfcSecret, time.Unix(1111111111, 0).UTC())
	require.NoError(t, err)
	assert.NotEqual(t, last, next)
}

func TestGenerate_SecretNormalization(t *testing.T) {
	reference, err := Generate(rfcSecret, time.Unix(59, 0).UTC())
	require.NoError(t, err)

	variants := []string{
		"gezdgnbvgy3tqojqgezdgnbvgy3tqojq",
		"GEZD GNBV GY3T QOJQ GEZD GNBV GY3T QOJQ",
		"  " + rfcSecret + "  ",
	}

	for _, secret := range variants {
		code, err := Generate(secret, time.Unix(59, 0).UTC())
		require.NoError(t, err)
		assert.Equal(t, reference, code)
	}
}

func TestGenerate_InvalidSecret(t *testing.T) {
	secrets := []string{
		"",
		"not!valid!base32",
		"189189189", // digits outside the base32 alphabet
	}

	for _, secret := range secrets {
		_, err := Generate(secret, time.Unix(59, 0).UTC())
		assert.ErrorIs(t, err, ErrInvalidSecret, "secret %q", secret)
	}
}

func TestWindowStart(t *testing.T) {
	assert.Equal(t, int64(30), WindowStart(time.Unix(59, 0)).Unix())
	assert.Equal(t, int64(60), WindowStart(time.Unix(60, 0)).Unix())
	assert.Equal(t, int64(1111111080), WindowStart(time.Unix(1111111109, 0)).Unix())
}
