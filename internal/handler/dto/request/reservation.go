package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	SlotID    uuid.UUID `json:"slot_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type MarkPaidRequest struct {
	PaymentIntentID string `json:"payment_intent_id" binding:"required"`
}
