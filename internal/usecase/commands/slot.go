package commands

import (
	"context"

	"parkreserve/internal/domain/slot"
	"parkreserve/internal/infra"
	"parkreserve/internal/infra/db"
	"parkreserve/internal/pkg/errs"
	"parkreserve/internal/usecase/queries"
	"parkreserve/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSlotAlreadyExists = errs.New("parking slot already exists")
	ErrSlotNotFound      = errs.New("parking slot not found")
)

type CreateSlotInput struct {
	Section string
	Number  int
	Floor   int
	Type    string
	// Price is optional; nil applies the default hourly rate.
	Price *float64
}

type SlotCommands interface {
	Create(ctx context.Context, in CreateSlotInput) (*queries.SlotView, error)
	SetAvailability(ctx context.Context, slotID uuid.UUID, available bool) (*queries.SlotView, error)
}

type slotCommandsImpl struct {
	slotRepo SlotRepository
	uow      shared.UnitOfWork
}

func NewSlotCommands(slotRepo SlotRepository, uow shared.UnitOfWork) SlotCommands {
	return &slotCommandsImpl{
		slotRepo: slotRepo,
		uow:      uow,
	}
}

func (s *slotCommandsImpl) Create(ctx context.Context, in CreateSlotInput) (*queries.SlotView, error) {
	slotType, err := slot.NewType(in.Type)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	price := slot.DefaultPrice
	if in.Price != nil {
		price = *in.Price
	}

	entity, err := slot.NewSlot(in.Section, in.Number, in.Floor, slotType, price)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = s.uow.WithDB(ctx, func(ctx context.Context, d db.DBTX) error {
		return s.slotRepo.Create(ctx, d, entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrSlotAlreadyExists
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return slotToView(entity), nil
}

func (s *slotCommandsImpl) SetAvailability(ctx context.Context, slotID uuid.UUID, available bool) (*queries.SlotView, error) {
	var view *queries.SlotView

	err := s.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		entity, err := s.slotRepo.FindByIDForUpdate(ctx, tx, slotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := s.slotRepo.SetAvailability(ctx, tx, slotID, available); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		view = slotToView(slot.ReconstructSlot(
			entity.ID(), entity.Section(), entity.Number(), entity.Floor(),
			entity.SlotType(), available, entity.Price(),
			entity.CreatedAt(), entity.UpdatedAt(),
		))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

func slotToView(s *slot.Slot) *queries.SlotView {
	return &queries.SlotView{
		ID:          s.ID(),
		Section:     s.Section(),
		Number:      s.Number(),
		Floor:       s.Floor(),
		Type:        s.SlotType().String(),
		IsAvailable: s.IsAvailable(),
		Price:       s.Price(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}
