package commands

import (
	"context"
	"math"
	"strings"

	"parkreserve/internal/domain/reservation"
	"parkreserve/internal/infra"
	"parkreserve/internal/infra/db"
	"parkreserve/internal/pkg/errs"
	"parkreserve/internal/usecase/queries"
	"parkreserve/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotSucceeded    = errs.New("payment intent has not succeeded")
	ErrPaymentAmountMismatch  = errs.New("payment amount does not match the reservation price")
	ErrPaymentOwnerMismatch   = errs.New("payment intent belongs to a different user")
	ErrPaymentProviderFailure = errs.New("payment provider request failed")
)

const intentSucceeded = "succeeded"

type CreateIntentInput struct {
	ReservationID uuid.UUID
}

type IntentResult struct {
	PaymentIntentID string
	ClientSecret    string
	AmountMinor     int64
	Currency        string
	Status          string
}

type PaymentCommands interface {
	CreateIntent(ctx context.Context, userID uuid.UUID, in CreateIntentInput) (*IntentResult, error)
}

type paymentCommandsImpl struct {
	reservationRepo ReservationRepository
	gateway         PaymentGateway
	uow             shared.UnitOfWork
	currency        string
}

func NewPaymentCommands(
	reservationRepo ReservationRepository,
	gateway PaymentGateway,
	uow shared.UnitOfWork,
	currency string,
) PaymentCommands {
	return &paymentCommandsImpl{
		reservationRepo: reservationRepo,
		gateway:         gateway,
		uow:             uow,
		currency:        currency,
	}
}

// CreateIntent derives the charge amount from the stored reservation price;
// the client never supplies an amount.
func (p *paymentCommandsImpl) CreateIntent(ctx context.Context, userID uuid.UUID, in CreateIntentInput) (*IntentResult, error) {
	var amountMinor int64

	err := p.uow.WithDB(ctx, func(ctx context.Context, d db.DBTX) error {
		entity, err := p.reservationRepo.FindOwnedForUpdate(ctx, d, in.ReservationID, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return queries.ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if entity.PaymentStatus() == reservation.PaymentCompleted {
			return ErrNotPayable
		}
		amountMinor = toMinorUnits(entity.TotalPrice())
		return nil
	})
	if err != nil {
		return nil, err
	}

	intent, err := p.gateway.CreateIntent(ctx, amountMinor, p.currency, map[string]string{
		"reservation_id": in.ReservationID.String(),
		"user_id":        userID.String(),
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentProviderFailure)
	}

	return &IntentResult{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		AmountMinor:     intent.AmountMinor,
		Currency:        intent.Currency,
		Status:          intent.Status,
	}, nil
}

// verifyPayment confirms the intent with the provider before the reservation
// is marked paid: it must have succeeded, for this user, for the exact price.
func (r *reservationCommandsImpl) verifyPayment(ctx context.Context, totalPrice float64, paymentIntentID string, userID uuid.UUID) error {
	intent, err := r.gateway.RetrieveIntent(ctx, paymentIntentID)
	if err != nil {
		return errs.Mark(err, ErrPaymentProviderFailure)
	}
	if intent.Status != intentSucceeded {
		return ErrPaymentNotSucceeded
	}
	if owner, ok := intent.Metadata["user_id"]; ok && owner != userID.String() {
		return ErrPaymentOwnerMismatch
	}
	if intent.AmountMinor != toMinorUnits(totalPrice) || !strings.EqualFold(intent.Currency, r.currency) {
		return ErrPaymentAmountMismatch
	}
	return nil
}

func toMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
