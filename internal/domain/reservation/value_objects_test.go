//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"parkreserve/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(t *testing.T, start, end time.Time) reservation.TimeSlot {
	t.Helper()
	slot, err := reservation.NewTimeSlot(start, end)
	require.NoError(t, err)
	return slot
}

func TestNewTimeSlot(t *testing.T) {
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("valid window", func(t *testing.T) {
		slot, err := reservation.NewTimeSlot(base, base.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, base, slot.Start())
		assert.Equal(t, base.Add(time.Hour), slot.End())
	})

	t.Run("end equal to start is rejected", func(t *testing.T) {
		_, err := reservation.NewTimeSlot(base, base)
		assert.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := reservation.NewTimeSlot(base, base.Add(-time.Minute))
		assert.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)
	})
}

func TestTimeSlotHours(t *testing.T) {
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		duration time.Duration
		expected float64
	}{
		{name: "one hour", duration: time.Hour, expected: 1.0},
		{name: "ninety minutes", duration: 90 * time.Minute, expected: 1.5},
		{name: "fifteen minutes", duration: 15 * time.Minute, expected: 0.25},
		{name: "full day", duration: 24 * time.Hour, expected: 24.0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			slot := ts(t, base, base.Add(c.duration))
			assert.InDelta(t, c.expected, slot.Hours(), 1e-9)
		})
	}
}

func TestTimeSlotOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	existing := ts(t, base, base.Add(2*time.Hour)) // [10:00, 12:00)

	cases := []struct {
		name     string
		start    time.Time
		end      time.Time
		overlaps bool
	}{
		{name: "identical window", start: base, end: base.Add(2 * time.Hour), overlaps: true},
		{name: "contained within", start: base.Add(30 * time.Minute), end: base.Add(time.Hour), overlaps: true},
		{name: "containing", start: base.Add(-time.Hour), end: base.Add(3 * time.Hour), overlaps: true},
		{name: "partial overlap at start", start: base.Add(-time.Hour), end: base.Add(time.Hour), overlaps: true},
		{name: "partial overlap at end", start: base.Add(time.Hour), end: base.Add(3 * time.Hour), overlaps: true},
		{name: "one instant shared at end", start: base.Add(2*time.Hour - time.Nanosecond), end: base.Add(3 * time.Hour), overlaps: true},
		{name: "back to back after", start: base.Add(2 * time.Hour), end: base.Add(3 * time.Hour), overlaps: false},
		{name: "back to back before", start: base.Add(-time.Hour), end: base, overlaps: false},
		{name: "fully before", start: base.Add(-3 * time.Hour), end: base.Add(-2 * time.Hour), overlaps: false},
		{name: "fully after", start: base.Add(5 * time.Hour), end: base.Add(6 * time.Hour), overlaps: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			candidate := ts(t, c.start, c.end)
			assert.Equal(t, c.overlaps, existing.Overlaps(candidate))
			// overlap is symmetric
			assert.Equal(t, c.overlaps, candidate.Overlaps(existing))
		})
	}
}

func TestTimeSlotContains(t *testing.T) {
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	slot := ts(t, base, base.Add(time.Hour))

	assert.True(t, slot.Contains(base), "start is inclusive")
	assert.True(t, slot.Contains(base.Add(30*time.Minute)))
	assert.False(t, slot.Contains(base.Add(time.Hour)), "end is exclusive")
	assert.False(t, slot.Contains(base.Add(-time.Nanosecond)))
}
