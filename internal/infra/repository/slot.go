package repository

import (
	"context"
	"time"

	"parkreserve/internal/domain/slot"
	"parkreserve/internal/infra"
	"parkreserve/internal/infra/db"

	"github.com/google/uuid"
)

type SlotRepository struct{}

func NewSlotRepository() *SlotRepository {
	return &SlotRepository{}
}

const createSlotQuery = `
INSERT INTO parking_slots (id, section, number, floor, slot_type, is_available, price)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (r *SlotRepository) Create(ctx context.Context, d db.DBTX, s *slot.Slot) error {
	_, err := d.Exec(ctx, createSlotQuery,
		s.ID(), s.Section(), s.Number(), s.Floor(), s.SlotType().String(), s.IsAvailable(), s.Price())
	if err != nil {
		if db.IsUniqueViolation(err) {
			return infra.WrapRepoErr("slot already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create slot", err)
	}
	return nil
}

const findSlotForUpdateQuery = `
SELECT id, section, number, floor, slot_type, is_available, price, created_at, updated_at
FROM parking_slots
WHERE id = $1
FOR UPDATE
`

func (r *SlotRepository) FindByIDForUpdate(ctx context.Context, d db.DBTX, id uuid.UUID) (*slot.Slot, error) {
	row := d.QueryRow(ctx, findSlotForUpdateQuery, id)
	entity, err := scanSlot(row)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot", err)
	}
	return entity, nil
}

const setSlotAvailabilityQuery = `
UPDATE parking_slots
SET is_available = $2, updated_at = now()
WHERE id = $1
`

func (r *SlotRepository) SetAvailability(ctx context.Context, d db.DBTX, id uuid.UUID, available bool) error {
	tag, err := d.Exec(ctx, setSlotAvailabilityQuery, id, available)
	if err != nil {
		return infra.WrapRepoErr("failed to update slot availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}

const recomputeSlotAvailabilityQuery = `
UPDATE parking_slots ps
SET is_available = NOT EXISTS (
        SELECT 1 FROM reservations r
        WHERE r.slot_id = ps.id
          AND r.status IN ('pending', 'active')
    ),
    updated_at = now()
WHERE ps.id = $1
`

// RecomputeAvailability derives the flag from the live reservation set
// instead of blindly flipping it, so releasing one reservation cannot free
// a slot that another booking still holds.
func (r *SlotRepository) RecomputeAvailability(ctx context.Context, d db.DBTX, id uuid.UUID) error {
	tag, err := d.Exec(ctx, recomputeSlotAvailabilityQuery, id)
	if err != nil {
		return infra.WrapRepoErr("failed to recompute slot availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSlot(row rowScanner) (*slot.Slot, error) {
	var (
		id                   uuid.UUID
		section              string
		number, floor        int
		slotType             string
		isAvailable          bool
		price                float64
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &section, &number, &floor, &slotType, &isAvailable, &price, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return slot.ReconstructSlot(id, section, number, floor, slot.Type(slotType), isAvailable, price, createdAt, updatedAt), nil
}
