package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"parkreserve/internal/domain/reservation"
	"parkreserve/internal/infra"
	"parkreserve/internal/infra/db"
	"parkreserve/internal/pkg/clock"
	"parkreserve/internal/pkg/errs"
	"parkreserve/internal/usecase/queries"
	"parkreserve/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot         = errs.New("invalid time slot")
	ErrSlotUnavailable         = errs.New("slot is not available")
	ErrReservationConflict     = errs.New("slot is already reserved for this time period")
	ErrAlreadyCancelled        = errs.New("reservation is already cancelled")
	ErrNotCancellable          = errs.New("reservation can no longer be cancelled")
	ErrNotPayable              = errs.New("reservation cannot accept payment")
	ErrDuplicateRequest        = errs.New("idempotency key reused with a different request")
	ErrIdempotencyInProgress   = errs.New("request with this idempotency key is in progress")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const createReservationEndpoint = "POST /reservations"

type CreateReservationInput struct {
	SlotID    uuid.UUID
	StartTime time.Time
	EndTime   time.Time
}

type CreateReservationResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type ReservationCommands interface {
	Create(ctx context.Context, userID, idempotencyKey uuid.UUID, in CreateReservationInput) (*CreateReservationResult, error)
	Cancel(ctx context.Context, userID, reservationID uuid.UUID) (*queries.ReservationView, error)
	MarkPaid(ctx context.Context, userID, reservationID uuid.UUID, paymentIntentID string) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	slotRepo           SlotRepository
	reservationRepo    ReservationRepository
	idempotencyRepo    IdempotencyRepository
	gateway            PaymentGateway
	reservationQueries queries.ReservationQueries
	factory            *reservation.Factory
	uow                shared.UnitOfWork
	clock              clock.Clock
	currency           string
}

func NewReservationCommands(
	slotRepo SlotRepository,
	reservationRepo ReservationRepository,
	idempotencyRepo IdempotencyRepository,
	gateway PaymentGateway,
	reservationQueries queries.ReservationQueries,
	factory *reservation.Factory,
	uow shared.UnitOfWork,
	clk clock.Clock,
	currency string,
) ReservationCommands {
	return &reservationCommandsImpl{
		slotRepo:           slotRepo,
		reservationRepo:    reservationRepo,
		idempotencyRepo:    idempotencyRepo,
		gateway:            gateway,
		reservationQueries: reservationQueries,
		factory:            factory,
		uow:                uow,
		clock:              clk,
		currency:           currency,
	}
}

func (r *reservationCommandsImpl) Create(
	ctx context.Context,
	userID, idempotencyKey uuid.UUID,
	in CreateReservationInput,
) (*CreateReservationResult, error) {
	ts, err := reservation.NewTimeSlot(in.StartTime, in.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	requestHash := calculateRequestHash(in)
	expiresAt := r.clock.Now().Add(24 * time.Hour)

	replayed, err := r.claimIdempotencyKey(ctx, idempotencyKey, userID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CreateReservationResult{Reservation: replayed, IsReplayed: true}, nil
	}

	var created *reservation.Reservation

	err = r.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		// Row lock on the slot serializes concurrent creates; the overlap
		// check below runs under that lock.
		slotEntity, err := r.slotRepo.FindByIDForUpdate(ctx, tx, in.SlotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		overlapping, err := r.reservationRepo.HasBlockingOverlap(ctx, tx, in.SlotID, ts)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if overlapping {
			return ErrReservationConflict
		}

		entity, err := r.factory.CreateReservation(slotEntity, userID, ts)
		if err != nil {
			if errors.Is(err, reservation.ErrSlotUnavailable) {
				return ErrSlotUnavailable
			}
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := r.reservationRepo.Create(ctx, tx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := r.slotRepo.SetAvailability(ctx, tx, in.SlotID, false); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := r.idempotencyRepo.MarkCompleted(ctx, tx, idempotencyKey, userID, entity.ID()); err != nil {
			return errs.Mark(err, ErrIdempotencyCheckFailed)
		}

		created = entity
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := r.reservationQueries.GetByID(ctx, userID, created.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateReservationResult{Reservation: view, IsReplayed: false}, nil
}

// claimIdempotencyKey returns the stored view when the key already completed,
// nil when the key was claimed for this request.
func (r *reservationCommandsImpl) claimIdempotencyKey(
	ctx context.Context,
	key, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.ReservationView, error) {
	var record *IdempotencyRecord

	err := r.uow.WithDB(ctx, func(ctx context.Context, d db.DBTX) error {
		inserted, err := r.idempotencyRepo.TryInsert(ctx, d, key, userID, createReservationEndpoint, requestHash, expiresAt)
		if err != nil {
			return errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		if inserted {
			return nil
		}

		record, err = r.idempotencyRepo.Get(ctx, d, key, userID)
		if err != nil {
			return errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	if record.RequestHash != requestHash {
		return nil, ErrDuplicateRequest
	}

	switch record.Status {
	case "completed":
		if record.ResultReservationID == nil {
			return nil, errs.Mark(errs.New("completed idempotency key missing result"), ErrIdempotencyCheckFailed)
		}
		return r.reservationQueries.GetByID(ctx, userID, *record.ResultReservationID)
	case "processing":
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.Mark(errs.New("unknown idempotency key status"), ErrIdempotencyCheckFailed)
	}
}

func (r *reservationCommandsImpl) Cancel(ctx context.Context, userID, reservationID uuid.UUID) (*queries.ReservationView, error) {
	err := r.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		entity, err := r.reservationRepo.FindOwnedForUpdate(ctx, tx, reservationID, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return queries.ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := entity.Cancel(); err != nil {
			switch err {
			case reservation.ErrAlreadyCancelled:
				return ErrAlreadyCancelled
			default:
				return ErrNotCancellable
			}
		}

		if err := r.reservationRepo.UpdateStatus(ctx, tx, reservationID, entity.Status(), entity.PaymentStatus()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// Availability is re-derived rather than force-set so cancelling one
		// of several bookings never frees a slot that is still held.
		if err := r.slotRepo.RecomputeAvailability(ctx, tx, entity.SlotID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.reservationQueries.GetByID(ctx, userID, reservationID)
}

func (r *reservationCommandsImpl) MarkPaid(ctx context.Context, userID, reservationID uuid.UUID, paymentIntentID string) (*queries.ReservationView, error) {
	err := r.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		entity, err := r.reservationRepo.FindOwnedForUpdate(ctx, tx, reservationID, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return queries.ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := r.verifyPayment(ctx, entity.TotalPrice(), paymentIntentID, userID); err != nil {
			return err
		}

		if err := entity.MarkPaid(); err != nil {
			return ErrNotPayable
		}

		if err := r.reservationRepo.UpdateStatus(ctx, tx, reservationID, entity.Status(), entity.PaymentStatus()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.reservationQueries.GetByID(ctx, userID, reservationID)
}

func calculateRequestHash(in CreateReservationInput) string {
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
