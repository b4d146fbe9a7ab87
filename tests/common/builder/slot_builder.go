//go:build unit

package builder

import (
	"time"

	domslot "parkreserve/internal/domain/slot"
	reqdto "parkreserve/internal/handler/dto/request"
	"parkreserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	ID          uuid.UUID
	Section     string
	Number      int
	Floor       int
	Type        string
	IsAvailable bool
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewSlotBuilder() *SlotBuilder {
	now := time.Now()
	return &SlotBuilder{
		ID:          uuid.New(),
		Section:     "A",
		Number:      12,
		Floor:       1,
		Type:        "standard",
		IsAvailable: true,
		Price:       50.0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) BuildDomain() (*domslot.Slot, error) {
	return domslot.NewSlot(b.Section, b.Number, b.Floor, domslot.Type(b.Type), b.Price)
}

func (b *SlotBuilder) BuildReconstructed() *domslot.Slot {
	return domslot.ReconstructSlot(
		b.ID, b.Section, b.Number, b.Floor,
		domslot.Type(b.Type), b.IsAvailable, b.Price,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *SlotBuilder) BuildView() *queries.SlotView {
	return &queries.SlotView{
		ID:          b.ID,
		Section:     b.Section,
		Number:      b.Number,
		Floor:       b.Floor,
		Type:        b.Type,
		IsAvailable: b.IsAvailable,
		Price:       b.Price,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *SlotBuilder) BuildCreateRequestDTO() reqdto.CreateSlotRequest {
	price := b.Price
	return reqdto.CreateSlotRequest{
		Section: b.Section,
		Number:  b.Number,
		Floor:   b.Floor,
		Type:    b.Type,
		Price:   &price,
	}
}

func (b *SlotBuilder) WithSection(section string) *SlotBuilder {
	b.Section = section
	return b
}

func (b *SlotBuilder) WithNumber(number int) *SlotBuilder {
	b.Number = number
	return b
}

func (b *SlotBuilder) WithFloor(floor int) *SlotBuilder {
	b.Floor = floor
	return b
}

func (b *SlotBuilder) WithType(slotType string) *SlotBuilder {
	b.Type = slotType
	return b
}

func (b *SlotBuilder) WithPrice(price float64) *SlotBuilder {
	b.Price = price
	return b
}

func (b *SlotBuilder) AsUnavailable() *SlotBuilder {
	b.IsAvailable = false
	return b
}
