//go:build unit

package booking_test

import (
	"regexp"
	"testing"
	"time"

	"room-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokenPattern = regexp.MustCompile(`^[0-9a-z]+$`)

func TestRandomTokenIssuer(t *testing.T) {
	issuer := booking.NewRandomTokenIssuer()
	seen := make(map[string]struct{}, 1000)

	for range 1000 {
		token := issuer.Issue()
		require.Regexp(t, tokenPattern, token)
		_, dup := seen[token]
		require.False(t, dup, "duplicate token %q", token)
		seen[token] = struct{}{}
	}
}

func TestTokenExpiry(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	date, err := booking.ParseDate("2025-03-12")
	require.NoError(t, err)
	end, err := booking.ParseClockTime("11:30")
	require.NoError(t, err)

	got := booking.TokenExpiry(date, end, jakarta)

	assert.True(t, got.Equal(time.Date(2025, 3, 12, 11, 30, 0, 0, jakarta)))
	assert.True(t, got.Equal(time.Date(2025, 3, 12, 4, 30, 0, 0, time.UTC)))
}
