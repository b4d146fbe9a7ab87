package readstore

import (
	"context"

	"parkreserve/internal/infra"
	"parkreserve/internal/infra/db"
	"parkreserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(d db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: d}
}

const reservationViewColumns = `
    r.id, r.user_id, r.start_time, r.end_time, r.total_price,
    r.status, r.payment_status, r.created_at, r.updated_at,
    s.id, s.section, s.number, s.floor, s.slot_type, s.price
`

const findReservationForUserQuery = `
SELECT` + reservationViewColumns + `
FROM reservations r
JOIN parking_slots s ON s.id = r.slot_id
WHERE r.id = $1 AND r.user_id = $2
`

const findReservationsByUserQuery = `
SELECT` + reservationViewColumns + `
FROM reservations r
JOIN parking_slots s ON s.id = r.slot_id
WHERE r.user_id = $1
ORDER BY r.start_time DESC
`

func (s *ReservationReadStore) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*queries.ReservationView, error) {
	row := s.db.QueryRow(ctx, findReservationForUserQuery, id, userID)
	view, err := scanReservationView(row)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return view, nil
}

func (s *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, findReservationsByUserQuery, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	views := make([]*queries.ReservationView, 0)
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservations", err)
	}
	return views, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var v queries.ReservationView
	err := row.Scan(
		&v.ID, &v.UserID, &v.StartTime, &v.EndTime, &v.TotalPrice,
		&v.Status, &v.PaymentStatus, &v.CreatedAt, &v.UpdatedAt,
		&v.Slot.ID, &v.Slot.Section, &v.Slot.Number, &v.Slot.Floor, &v.Slot.Type, &v.Slot.Price,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
