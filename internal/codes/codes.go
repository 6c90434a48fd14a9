// Package codes mints reservation and access credentials from a
// cryptographically secure random source. Uniqueness is not enforced
// here: the store rejects collisions and callers retry with a fresh
// code.
package codes

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	reservationCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	reservationCodeLength   = 8

	accessCodeDigits = 8
)

var accessCodeSpace = big.NewInt(1e8)

// ReservationCode returns an 8-character human-facing reference drawn
// from [A-Z0-9].
func ReservationCode() (string, error) {
	buf := make([]byte, reservationCodeLength)
	max := big.NewInt(int64(len(reservationCodeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate reservation code: %w", err)
		}
		buf[i] = reservationCodeAlphabet[n.Int64()]
	}
	return string(buf), nil
}

// AccessCode returns an 8-digit numeric secret, zero-padded.
func AccessCode() (string, error) {
	n, err := rand.Int(rand.Reader, accessCodeSpace)
	if err != nil {
		return "", fmt.Errorf("generate access code: %w", err)
	}
	return fmt.Sprintf("%0*d", accessCodeDigits, n.Int64()), nil
}
