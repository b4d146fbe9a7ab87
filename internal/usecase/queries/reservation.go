package queries

import (
	"context"

	"parkreserve/internal/infra"
	"parkreserve/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.New("reservation not found")

type ReservationQueries interface {
	// GetByID is owner-scoped: a reservation owned by another user reads
	// as not found.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*ReservationView, error)
	// ListByUser returns the user's reservations with their slot snapshot,
	// newest start time first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*ReservationView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, userID, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByIDForUser(ctx, id, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	return q.store.FindByUserID(ctx, userID)
}
