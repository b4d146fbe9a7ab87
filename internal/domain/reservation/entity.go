package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeRate     = errors.New("hourly rate cannot be negative")
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
	ErrAlreadyCompleted = errors.New("reservation is already completed")
	ErrNotPayable       = errors.New("reservation cannot accept payment in its current status")
	ErrNotActive        = errors.New("reservation is not active")
)

type Reservation struct {
	id            uuid.UUID
	slotID        uuid.UUID
	userID        uuid.UUID
	timeSlot      TimeSlot
	totalPrice    float64
	status        Status
	paymentStatus PaymentStatus
	createdAt     time.Time
	updatedAt     time.Time
}

// NewReservation prices the slot once, at creation: fractional hours times
// the slot's hourly rate. The total is never recomputed afterwards.
func NewReservation(slotID, userID uuid.UUID, ts TimeSlot, hourlyRate float64) (*Reservation, error) {
	if hourlyRate < 0 {
		return nil, ErrNegativeRate
	}

	return &Reservation{
		id:            uuid.New(),
		slotID:        slotID,
		userID:        userID,
		timeSlot:      ts,
		totalPrice:    ts.Hours() * hourlyRate,
		status:        StatusPending,
		paymentStatus: PaymentPending,
	}, nil
}

func ReconstructReservation(
	id, slotID, userID uuid.UUID,
	ts TimeSlot,
	totalPrice float64,
	status Status,
	paymentStatus PaymentStatus,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		slotID:        slotID,
		userID:        userID,
		timeSlot:      ts,
		totalPrice:    totalPrice,
		status:        status,
		paymentStatus: paymentStatus,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Cancel transitions pending or active reservations to cancelled.
// Terminal statuses are rejected so a repeated cancel cannot silently
// rewrite history.
func (r *Reservation) Cancel() error {
	switch r.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrAlreadyCompleted
	}
	r.status = StatusCancelled
	return nil
}

// MarkPaid records a completed payment. Payment only transitions a pending
// reservation to active; paying an already-active reservation is a no-op so
// provider retries stay harmless, and cancelled or completed reservations
// reject payment outright.
func (r *Reservation) MarkPaid() error {
	switch r.status {
	case StatusPending:
		r.status = StatusActive
		r.paymentStatus = PaymentCompleted
		return nil
	case StatusActive:
		r.paymentStatus = PaymentCompleted
		return nil
	default:
		return ErrNotPayable
	}
}

// Complete is the sweep transition for active reservations whose end time
// has elapsed.
func (r *Reservation) Complete(now time.Time) error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	if now.Before(r.timeSlot.End()) {
		return ErrNotActive
	}
	r.status = StatusCompleted
	return nil
}

func (r *Reservation) HasExpired(now time.Time) bool {
	return now.After(r.timeSlot.End()) || now.Equal(r.timeSlot.End())
}

func (r *Reservation) IsBlocking() bool {
	return r.status.IsBlocking()
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) SlotID() uuid.UUID            { return r.slotID }
func (r *Reservation) UserID() uuid.UUID            { return r.userID }
func (r *Reservation) TimeSlot() TimeSlot           { return r.timeSlot }
func (r *Reservation) TotalPrice() float64          { return r.totalPrice }
func (r *Reservation) Status() Status               { return r.status }
func (r *Reservation) PaymentStatus() PaymentStatus { return r.paymentStatus }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }
