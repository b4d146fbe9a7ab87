//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"parkreserve/internal/domain/reservation"
	"parkreserve/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusPending, actual.Status())
		assert.Equal(t, reservation.PaymentPending, actual.PaymentStatus())
	})

	t.Run("price is fractional hours times hourly rate", func(t *testing.T) {
		start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

		cases := []struct {
			name     string
			duration time.Duration
			rate     float64
			expected float64
		}{
			{name: "two hours at default rate", duration: 2 * time.Hour, rate: 50, expected: 100},
			{name: "ninety minutes at default rate", duration: 90 * time.Minute, rate: 50, expected: 75},
			{name: "fifteen minutes", duration: 15 * time.Minute, rate: 80, expected: 20},
			{name: "zero rate", duration: 3 * time.Hour, rate: 0, expected: 0},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				res, err := builder.NewReservationBuilder().
					WithWindow(start, start.Add(c.duration)).
					WithHourlyRate(c.rate).
					BuildDomain()
				require.NoError(t, err)
				assert.InDelta(t, c.expected, res.TotalPrice(), 1e-9)
			})
		}
	})

	t.Run("price is fixed at creation", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().WithHourlyRate(50).BuildDomain()
		require.NoError(t, err)
		priceAtCreation := res.TotalPrice()

		require.NoError(t, res.MarkPaid())
		require.NoError(t, res.Cancel())

		assert.Equal(t, priceAtCreation, res.TotalPrice())
	})

	t.Run("negative rate is rejected", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().WithHourlyRate(-1).BuildDomain()
		assert.ErrorIs(t, err, reservation.ErrNegativeRate)
	})
}

func TestReservationCancel(t *testing.T) {
	t.Run("pending reservation cancels", func(t *testing.T) {
		res := builder.NewReservationBuilder().BuildReconstructed()
		require.NoError(t, res.Cancel())
		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("active reservation cancels", func(t *testing.T) {
		res := builder.NewReservationBuilder().AsActive().BuildReconstructed()
		require.NoError(t, res.Cancel())
		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("cancelling twice fails", func(t *testing.T) {
		res := builder.NewReservationBuilder().AsCancelled().BuildReconstructed()
		err := res.Cancel()
		assert.ErrorIs(t, err, reservation.ErrAlreadyCancelled)
		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("completed reservation cannot cancel", func(t *testing.T) {
		res := builder.NewReservationBuilder().AsCompleted().BuildReconstructed()
		err := res.Cancel()
		assert.ErrorIs(t, err, reservation.ErrAlreadyCompleted)
		assert.Equal(t, reservation.StatusCompleted, res.Status())
	})
}

func TestReservationMarkPaid(t *testing.T) {
	t.Run("payment activates a pending reservation", func(t *testing.T) {
		res := builder.NewReservationBuilder().BuildReconstructed()
		require.NoError(t, res.MarkPaid())
		assert.Equal(t, reservation.StatusActive, res.Status())
		assert.Equal(t, reservation.PaymentCompleted, res.PaymentStatus())
	})

	t.Run("paying an active reservation is idempotent", func(t *testing.T) {
		res := builder.NewReservationBuilder().AsActive().BuildReconstructed()
		require.NoError(t, res.MarkPaid())
		assert.Equal(t, reservation.StatusActive, res.Status())
		assert.Equal(t, reservation.PaymentCompleted, res.PaymentStatus())
	})

	t.Run("cancelled reservation rejects payment", func(t *testing.T) {
		res := builder.NewReservationBuilder().AsCancelled().BuildReconstructed()
		err := res.MarkPaid()
		assert.ErrorIs(t, err, reservation.ErrNotPayable)
		assert.Equal(t, reservation.PaymentPending, res.PaymentStatus())
	})

	t.Run("completed reservation rejects payment", func(t *testing.T) {
		res := builder.NewReservationBuilder().AsCompleted().BuildReconstructed()
		assert.ErrorIs(t, res.MarkPaid(), reservation.ErrNotPayable)
	})
}

func TestReservationComplete(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	t.Run("active reservation completes once its window elapses", func(t *testing.T) {
		res := builder.NewReservationBuilder().WithWindow(start, end).AsActive().BuildReconstructed()
		require.NoError(t, res.Complete(end))
		assert.Equal(t, reservation.StatusCompleted, res.Status())
	})

	t.Run("active reservation does not complete early", func(t *testing.T) {
		res := builder.NewReservationBuilder().WithWindow(start, end).AsActive().BuildReconstructed()
		err := res.Complete(end.Add(-time.Minute))
		assert.ErrorIs(t, err, reservation.ErrNotActive)
		assert.Equal(t, reservation.StatusActive, res.Status())
	})

	t.Run("pending reservation does not complete", func(t *testing.T) {
		res := builder.NewReservationBuilder().WithWindow(start, end).BuildReconstructed()
		assert.ErrorIs(t, res.Complete(end.Add(time.Hour)), reservation.ErrNotActive)
	})
}

func TestStatusIsBlocking(t *testing.T) {
	assert.True(t, reservation.StatusPending.IsBlocking())
	assert.True(t, reservation.StatusActive.IsBlocking())
	assert.False(t, reservation.StatusCompleted.IsBlocking())
	assert.False(t, reservation.StatusCancelled.IsBlocking())
}
