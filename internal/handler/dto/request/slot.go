package request

type CreateSlotRequest struct {
	Section string   `json:"section" binding:"required"`
	Number  int      `json:"number" binding:"required,min=1"`
	Floor   int      `json:"floor" binding:"required,min=1"`
	Type    string   `json:"type" binding:"required,oneof=standard handicap electric"`
	Price   *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
}

type SetSlotAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}
