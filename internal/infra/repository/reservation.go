package repository

import (
	"context"
	"time"

	"parkreserve/internal/domain/reservation"
	"parkreserve/internal/infra"
	"parkreserve/internal/infra/db"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const createReservationQuery = `
INSERT INTO reservations (id, slot_id, user_id, start_time, end_time, total_price, status, payment_status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func (r *ReservationRepository) Create(ctx context.Context, d db.DBTX, res *reservation.Reservation) error {
	_, err := d.Exec(ctx, createReservationQuery,
		res.ID(), res.SlotID(), res.UserID(),
		res.TimeSlot().Start(), res.TimeSlot().End(),
		res.TotalPrice(), res.Status().String(), res.PaymentStatus().String())
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("referenced slot or user does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

const findOwnedReservationForUpdateQuery = `
SELECT id, slot_id, user_id, start_time, end_time, total_price, status, payment_status, created_at, updated_at
FROM reservations
WHERE id = $1 AND user_id = $2
FOR UPDATE
`

func (r *ReservationRepository) FindOwnedForUpdate(ctx context.Context, d db.DBTX, id, userID uuid.UUID) (*reservation.Reservation, error) {
	row := d.QueryRow(ctx, findOwnedReservationForUpdateQuery, id, userID)
	entity, err := scanReservation(row)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return entity, nil
}

const blockingOverlapQuery = `
SELECT EXISTS (
    SELECT 1 FROM reservations
    WHERE slot_id = $1
      AND status IN ('pending', 'active')
      AND start_time < $3
      AND end_time > $2
)
`

// HasBlockingOverlap checks the half-open intersection: an existing booking
// conflicts iff it starts before the candidate ends and ends after the
// candidate starts. Back-to-back bookings pass.
func (r *ReservationRepository) HasBlockingOverlap(ctx context.Context, d db.DBTX, slotID uuid.UUID, ts reservation.TimeSlot) (bool, error) {
	var exists bool
	err := d.QueryRow(ctx, blockingOverlapQuery, slotID, ts.Start(), ts.End()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservation overlap", err)
	}
	return exists, nil
}

const updateReservationStatusQuery = `
UPDATE reservations
SET status = $2, payment_status = $3, updated_at = now()
WHERE id = $1
`

func (r *ReservationRepository) UpdateStatus(ctx context.Context, d db.DBTX, id uuid.UUID, status reservation.Status, paymentStatus reservation.PaymentStatus) error {
	tag, err := d.Exec(ctx, updateReservationStatusQuery, id, status.String(), paymentStatus.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

const completeElapsedQuery = `
UPDATE reservations
SET status = 'completed', updated_at = now()
WHERE status = 'active' AND end_time <= $1
RETURNING slot_id
`

// CompleteElapsed is the sweep step: every active reservation whose end time
// has passed becomes completed, and the affected slot IDs come back so the
// caller can recompute their availability.
func (r *ReservationRepository) CompleteElapsed(ctx context.Context, d db.DBTX, now time.Time) ([]uuid.UUID, error) {
	rows, err := d.Query(ctx, completeElapsedQuery, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to complete elapsed reservations", err)
	}
	defer rows.Close()

	var slotIDs []uuid.UUID
	for rows.Next() {
		var slotID uuid.UUID
		if err := rows.Scan(&slotID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan completed reservation", err)
		}
		slotIDs = append(slotIDs, slotID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read completed reservations", err)
	}
	return slotIDs, nil
}

func scanReservation(row rowScanner) (*reservation.Reservation, error) {
	var (
		id, slotID, userID   uuid.UUID
		startTime, endTime   time.Time
		totalPrice           float64
		status, payment      string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &slotID, &userID, &startTime, &endTime, &totalPrice, &status, &payment, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	ts, err := reservation.NewTimeSlot(startTime, endTime)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		id, slotID, userID, ts, totalPrice,
		reservation.Status(status), reservation.PaymentStatus(payment),
		createdAt, updatedAt,
	), nil
}
