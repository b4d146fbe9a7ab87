package queries

import (
	"context"
)

type SlotQueries interface {
	List(ctx context.Context) ([]*SlotView, error)
	ListAvailable(ctx context.Context) ([]*SlotView, error)
}

type SlotReadStore interface {
	FindAll(ctx context.Context) ([]*SlotView, error)
	FindAvailable(ctx context.Context) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	store SlotReadStore
}

func NewSlotQueries(store SlotReadStore) SlotQueries {
	return &slotQueriesImpl{store: store}
}

func (q *slotQueriesImpl) List(ctx context.Context) ([]*SlotView, error) {
	return q.store.FindAll(ctx)
}

func (q *slotQueriesImpl) ListAvailable(ctx context.Context) ([]*SlotView, error) {
	return q.store.FindAvailable(ctx)
}
