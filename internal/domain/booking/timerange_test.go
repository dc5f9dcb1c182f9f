//go:build unit

package booking_test

import (
	"testing"

	"room-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tr(t *testing.T, start, end string) booking.TimeRange {
	t.Helper()
	r, err := booking.ParseTimeRange(start, end)
	require.NoError(t, err)
	return r
}

func TestTimeRangeConflicts(t *testing.T) {
	occupied := tr(t, "09:00", "11:00")

	cases := []struct {
		name      string
		candidate booking.TimeRange
		conflicts bool
	}{
		{name: "identical range", candidate: tr(t, "09:00", "11:00"), conflicts: true},
		{name: "start inside", candidate: tr(t, "10:00", "12:00"), conflicts: true},
		{name: "end inside", candidate: tr(t, "08:00", "10:00"), conflicts: true},
		{name: "covers occupied", candidate: tr(t, "08:00", "12:00"), conflicts: true},
		{name: "inside occupied", candidate: tr(t, "09:30", "10:30"), conflicts: true},
		{name: "touches end", candidate: tr(t, "11:00", "12:00"), conflicts: false},
		{name: "touches start", candidate: tr(t, "08:00", "09:00"), conflicts: false},
		{name: "entirely before", candidate: tr(t, "06:00", "08:00"), conflicts: false},
		{name: "entirely after", candidate: tr(t, "13:00", "14:00"), conflicts: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.conflicts, tc.candidate.Conflicts(occupied))
		})
	}
}

// For well-formed ranges the three OR'd tests reduce to s < oe && e > os.
func TestTimeRangeConflictsMatchesHalfOpenOverlap(t *testing.T) {
	for s := 0; s < 24; s++ {
		for e := s + 1; e <= 23; e++ {
			for os := 0; os < 24; os++ {
				for oe := os + 1; oe <= 23; oe++ {
					candidate := booking.NewTimeRange(clock(t, s), clock(t, e))
					occupied := booking.NewTimeRange(clock(t, os), clock(t, oe))
					want := s < oe && e > os
					if got := candidate.Conflicts(occupied); got != want {
						t.Fatalf("[%d,%d) vs [%d,%d): got %v want %v", s, e, os, oe, got, want)
					}
				}
			}
		}
	}
}

// Zero-length candidates are caught by the inclusive halves of the tests at
// either boundary, so they never slip between the strict comparisons.
func TestTimeRangeConflictsZeroLength(t *testing.T) {
	occupied := tr(t, "09:00", "11:00")

	assert.True(t, tr(t, "09:00", "09:00").Conflicts(occupied))
	assert.True(t, tr(t, "11:00", "11:00").Conflicts(occupied))
	assert.False(t, tr(t, "08:00", "08:00").Conflicts(occupied))
}

func TestIsSlotAvailable(t *testing.T) {
	occupied := []booking.TimeRange{tr(t, "09:00", "11:00"), tr(t, "13:00", "15:00")}

	assert.True(t, booking.IsSlotAvailable(tr(t, "11:00", "13:00"), occupied))
	assert.False(t, booking.IsSlotAvailable(tr(t, "10:00", "14:00"), occupied))
	assert.True(t, booking.IsSlotAvailable(tr(t, "10:00", "14:00"), nil))
}

func TestTimeSlots(t *testing.T) {
	slots := booking.TimeSlots(6, 22)

	require.Len(t, slots, 16)
	assert.Equal(t, "06:00", slots[0])
	assert.Equal(t, "21:00", slots[len(slots)-1])
	assert.Empty(t, booking.TimeSlots(10, 10))
}

func TestNextDays(t *testing.T) {
	from, err := booking.ParseDate("2024-02-27")
	require.NoError(t, err)

	days := booking.NextDays(from, 4)

	got := make([]string, len(days))
	for i, d := range days {
		got[i] = d.String()
	}
	assert.Equal(t, []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01"}, got)
	assert.Empty(t, booking.NextDays(from, 0))
}

func clock(t *testing.T, hour int) booking.ClockTime {
	t.Helper()
	c, err := booking.ClockTimeFromMinutes(hour * 60)
	require.NoError(t, err)
	return c
}
