//go:build unit

package builder

import (
	"time"

	domreservation "parkreserve/internal/domain/reservation"
	reqdto "parkreserve/internal/handler/dto/request"
	"parkreserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID            uuid.UUID
	SlotID        uuid.UUID
	UserID        uuid.UUID
	StartTime     time.Time
	EndTime       time.Time
	HourlyRate    float64
	Status        string
	PaymentStatus string
	Slot          *SlotBuilder
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:            uuid.New(),
		SlotID:        uuid.New(),
		UserID:        uuid.New(),
		StartTime:     start,
		EndTime:       start.Add(2 * time.Hour),
		HourlyRate:    50.0,
		Status:        "pending",
		PaymentStatus: "pending",
		Slot:          NewSlotBuilder(),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	ts, err := domreservation.NewTimeSlot(b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}
	return domreservation.NewReservation(b.SlotID, b.UserID, ts, b.HourlyRate)
}

func (b *ReservationBuilder) BuildReconstructed() *domreservation.Reservation {
	ts, err := domreservation.NewTimeSlot(b.StartTime, b.EndTime)
	if err != nil {
		panic(err)
	}
	now := time.Now()
	return domreservation.ReconstructReservation(
		b.ID, b.SlotID, b.UserID, ts,
		ts.Hours()*b.HourlyRate,
		domreservation.Status(b.Status),
		domreservation.PaymentStatus(b.PaymentStatus),
		now, now,
	)
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	now := time.Now()
	return &queries.ReservationView{
		ID:     b.ID,
		UserID: b.UserID,
		Slot: queries.SlotSummary{
			ID:      b.SlotID,
			Section: b.Slot.Section,
			Number:  b.Slot.Number,
			Floor:   b.Slot.Floor,
			Type:    b.Slot.Type,
			Price:   b.HourlyRate,
		},
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		TotalPrice:    b.EndTime.Sub(b.StartTime).Hours() * b.HourlyRate,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		SlotID:    b.SlotID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}

func (b *ReservationBuilder) WithSlotID(slotID uuid.UUID) *ReservationBuilder {
	b.SlotID = slotID
	return b
}

func (b *ReservationBuilder) WithUserID(userID uuid.UUID) *ReservationBuilder {
	b.UserID = userID
	return b
}

func (b *ReservationBuilder) WithWindow(start, end time.Time) *ReservationBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *ReservationBuilder) WithHourlyRate(rate float64) *ReservationBuilder {
	b.HourlyRate = rate
	return b
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) AsActive() *ReservationBuilder {
	b.Status = "active"
	b.PaymentStatus = "completed"
	return b
}

func (b *ReservationBuilder) AsCancelled() *ReservationBuilder {
	b.Status = "cancelled"
	return b
}

func (b *ReservationBuilder) AsCompleted() *ReservationBuilder {
	b.Status = "completed"
	b.PaymentStatus = "completed"
	return b
}
