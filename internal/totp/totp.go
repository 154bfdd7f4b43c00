// Package totp derives RFC 6238 time-based one-time codes from decrypted
// shared secrets. Generation is a pure function of (secret, time); callers
// re-invoke it per 30-second window, nothing is cached here.
package totp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// Period is the fixed TOTP time step in seconds.
const Period = 30

// ErrInvalidSecret means the shared secret is not valid base32.
var ErrInvalidSecret = errors.New("invalid totp secret")

// Generate returns the 6-digit code for the given base32 shared secret at
// the given instant, left-padded with zeros. Lowercase input and embedded
// spaces are tolerated; anything that does not decode as base32 fails with
// ErrInvalidSecret.
func Generate(secret string, at time.Time) (string, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(secret), " ", ""))
	if normalized == "" {
		return "", fmt.Errorf("%w: empty secret", ErrInvalidSecret)
	}

	code, err := totp.GenerateCode(normalized, at)
	if err != nil {
		if errors.Is(err, otp.ErrValidateSecretInvalidBase32) {
			return "", fmt.Errorf("%w: %v", ErrInvalidSecret, err)
		}
		return "", fmt.Errorf("generate code: %w", err)
	}

	return code, nil
}

// WindowStart returns the opening instant of the 30-second window that
// contains the given time. A code stays valid until the next window starts.
func WindowStart(at time.Time) time.Time {
	return time.Unix(at.Unix()/Period*Period, 0).UTC()
}
