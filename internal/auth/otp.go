// internal/auth/otp.go
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"
)

// OTPLength is the number of digits in a generated code.
const OTPLength = 6

// OTPTTL is how long a code stays valid once issued.
const OTPTTL = 10 * time.Minute

var otpMax = big.NewInt(1000000)

// GenerateOTP returns a zero-padded six digit numeric code.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpMax)
	if err != nil {
		return "", fmt.Errorf("generating otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// VerifyOTP compares a submitted code against the stored one. The expiry
// check runs first: an expired code fails even when it matches.
func VerifyOTP(stored, submitted string, expiresAt *time.Time, now time.Time) (expired, matched bool) {
	if expiresAt == nil || now.After(*expiresAt) {
		return true, false
	}
	if stored == "" {
		return false, false
	}
	return false, subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1
}
