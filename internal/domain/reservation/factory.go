package reservation

import (
	"errors"

	"parkreserve/internal/domain/slot"

	"github.com/google/uuid"
)

var ErrSlotUnavailable = errors.New("slot is not available")

// Factory builds reservations against a slot snapshot. Transactional
// guarantees (row lock, overlap check) belong to the caller; the factory
// enforces the domain rules that hold regardless of storage.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) CreateReservation(
	slotEntity *slot.Slot,
	userID uuid.UUID,
	ts TimeSlot,
) (*Reservation, error) {
	if !slotEntity.IsAvailable() {
		return nil, ErrSlotUnavailable
	}

	return NewReservation(slotEntity.ID(), userID, ts, slotEntity.Price())
}
