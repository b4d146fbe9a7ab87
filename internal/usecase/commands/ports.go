package commands

import (
	"context"
	"time"

	"parkreserve/internal/domain/reservation"
	"parkreserve/internal/domain/slot"
	"parkreserve/internal/infra/db"

	"github.com/google/uuid"
)

type SlotRepository interface {
	Create(ctx context.Context, d db.DBTX, s *slot.Slot) error
	// FindByIDForUpdate takes the slot's row lock, serializing concurrent
	// reservation attempts against the same slot.
	FindByIDForUpdate(ctx context.Context, d db.DBTX, id uuid.UUID) (*slot.Slot, error)
	SetAvailability(ctx context.Context, d db.DBTX, id uuid.UUID, available bool) error
	// RecomputeAvailability derives the flag from the reservation set:
	// available iff no pending/active reservation remains on the slot.
	RecomputeAvailability(ctx context.Context, d db.DBTX, id uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, d db.DBTX, r *reservation.Reservation) error
	// FindOwnedForUpdate locks the reservation row; a row owned by a
	// different user reads as not found.
	FindOwnedForUpdate(ctx context.Context, d db.DBTX, id, userID uuid.UUID) (*reservation.Reservation, error)
	// HasBlockingOverlap applies the half-open intersection test against
	// pending/active reservations on the slot.
	HasBlockingOverlap(ctx context.Context, d db.DBTX, slotID uuid.UUID, ts reservation.TimeSlot) (bool, error)
	UpdateStatus(ctx context.Context, d db.DBTX, id uuid.UUID, status reservation.Status, paymentStatus reservation.PaymentStatus) error
	// CompleteElapsed transitions active reservations whose end time has
	// passed and returns the IDs of the slots they were holding.
	CompleteElapsed(ctx context.Context, d db.DBTX, now time.Time) ([]uuid.UUID, error)
}

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}

type IdempotencyRepository interface {
	// TryInsert claims the key for this request; inserted is false when the
	// key already exists for the user.
	TryInsert(ctx context.Context, d db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (inserted bool, err error)
	Get(ctx context.Context, d db.DBTX, key, userID uuid.UUID) (*IdempotencyRecord, error)
	MarkCompleted(ctx context.Context, d db.DBTX, key, userID uuid.UUID, resultReservationID uuid.UUID) error
}

// PaymentIntent is the provider-neutral picture of a charge authorization.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
	AmountMinor  int64
	Currency     string
	Metadata     map[string]string
}

// PaymentGateway is the external payment collaborator. The core only
// consumes "intent succeeded" as the trigger for marking a reservation
// paid; everything else is the provider's business.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*PaymentIntent, error)
	RetrieveIntent(ctx context.Context, id string) (*PaymentIntent, error)
}
