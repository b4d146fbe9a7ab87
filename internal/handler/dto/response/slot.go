package response

import (
	"time"

	"parkreserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID          uuid.UUID `json:"id"`
	Section     string    `json:"section"`
	Number      int       `json:"number"`
	Floor       int       `json:"floor"`
	Type        string    `json:"type"`
	IsAvailable bool      `json:"isAvailable"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:          v.ID,
		Section:     v.Section,
		Number:      v.Number,
		Floor:       v.Floor,
		Type:        v.Type,
		IsAvailable: v.IsAvailable,
		Price:       v.Price,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	out := make([]*SlotResponse, len(views))
	for i, v := range views {
		out[i] = FromSlotView(v)
	}
	return out
}
