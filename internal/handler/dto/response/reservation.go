package response

import (
	"time"

	"parkreserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationSlotResponse struct {
	ID      uuid.UUID `json:"id"`
	Section string    `json:"section"`
	Number  int       `json:"number"`
	Floor   int       `json:"floor"`
	Type    string    `json:"type"`
	Price   float64   `json:"price"`
}

type ReservationResponse struct {
	ID            uuid.UUID               `json:"id"`
	UserID        uuid.UUID               `json:"userId"`
	Slot          ReservationSlotResponse `json:"slot"`
	StartTime     time.Time               `json:"startTime"`
	EndTime       time.Time               `json:"endTime"`
	TotalPrice    float64                 `json:"totalPrice"`
	Status        string                  `json:"status"`
	PaymentStatus string                  `json:"paymentStatus"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:     v.ID,
		UserID: v.UserID,
		Slot: ReservationSlotResponse{
			ID:      v.Slot.ID,
			Section: v.Slot.Section,
			Number:  v.Slot.Number,
			Floor:   v.Slot.Floor,
			Type:    v.Slot.Type,
			Price:   v.Slot.Price,
		},
		StartTime:     v.StartTime,
		EndTime:       v.EndTime,
		TotalPrice:    v.TotalPrice,
		Status:        v.Status,
		PaymentStatus: v.PaymentStatus,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(views))
	for i, v := range views {
		out[i] = FromReservationView(v)
	}
	return out
}
