package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type SlotView struct {
	ID          uuid.UUID `json:"id"`
	Section     string    `json:"section"`
	Number      int       `json:"number"`
	Floor       int       `json:"floor"`
	Type        string    `json:"type"`
	IsAvailable bool      `json:"is_available"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SlotSummary is the slot snapshot joined onto reservation reads.
type SlotSummary struct {
	ID      uuid.UUID `json:"id"`
	Section string    `json:"section"`
	Number  int       `json:"number"`
	Floor   int       `json:"floor"`
	Type    string    `json:"type"`
	Price   float64   `json:"price"`
}

type ReservationView struct {
	ID            uuid.UUID   `json:"id"`
	UserID        uuid.UUID   `json:"user_id"`
	Slot          SlotSummary `json:"slot"`
	StartTime     time.Time   `json:"start_time"`
	EndTime       time.Time   `json:"end_time"`
	TotalPrice    float64     `json:"total_price"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"payment_status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
