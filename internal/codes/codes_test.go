package codes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationCode_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := ReservationCode()
		require.NoError(t, err)
		require.Len(t, code, 8)
		for _, r := range code {
			assert.Contains(t, reservationCodeAlphabet, string(r))
		}
	}
}

func TestAccessCode_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := AccessCode()
		require.NoError(t, err)
		require.Len(t, code, 8)
		assert.Equal(t, "", strings.Trim(code, "0123456789"))
	}
}

func TestReservationCode_NoCollisionsAtScale(t *testing.T) {
	// 36^8 is large enough that any collision in 10k draws points at a
	// broken random source.
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		code, err := ReservationCode()
		require.NoError(t, err)
		_, dup := seen[code]
		require.False(t, dup, "duplicate code %s after %d draws", code, i)
		seen[code] = struct{}{}
	}
}
