package readstore

import (
	"context"

	"parkreserve/internal/infra"
	"parkreserve/internal/infra/db"
	"parkreserve/internal/usecase/queries"
)

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(d db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: d}
}

const listSlotsQuery = `
SELECT id, section, number, floor, slot_type, is_available, price, created_at, updated_at
FROM parking_slots
ORDER BY section, floor, number
`

const listAvailableSlotsQuery = `
SELECT id, section, number, floor, slot_type, is_available, price, created_at, updated_at
FROM parking_slots
WHERE is_available = true
ORDER BY section, floor, number
`

func (s *SlotReadStore) FindAll(ctx context.Context) ([]*queries.SlotView, error) {
	return s.list(ctx, listSlotsQuery)
}

func (s *SlotReadStore) FindAvailable(ctx context.Context) ([]*queries.SlotView, error) {
	return s.list(ctx, listAvailableSlotsQuery)
}

func (s *SlotReadStore) list(ctx context.Context, query string) ([]*queries.SlotView, error) {
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	views := make([]*queries.SlotView, 0)
	for rows.Next() {
		var v queries.SlotView
		if err := rows.Scan(&v.ID, &v.Section, &v.Number, &v.Floor, &v.Type, &v.IsAvailable, &v.Price, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slots", err)
	}
	return views, nil
}
