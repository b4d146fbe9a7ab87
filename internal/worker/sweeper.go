package worker

import (
	"context"
	"log/slog"
	"time"

	"parkreserve/internal/infra/db"
	"parkreserve/internal/pkg/clock"
	"parkreserve/internal/usecase/commands"
	"parkreserve/internal/usecase/shared"
)

// CompletionSweeper periodically transitions active reservations whose end
// time has passed to completed and re-derives the availability of the slots
// they were holding.
type CompletionSweeper struct {
	reservationRepo commands.ReservationRepository
	slotRepo        commands.SlotRepository
	uow             shared.UnitOfWork
	clock           clock.Clock
	interval        time.Duration
	stop            chan struct{}
	done            chan struct{}
}

func NewCompletionSweeper(
	reservationRepo commands.ReservationRepository,
	slotRepo commands.SlotRepository,
	uow shared.UnitOfWork,
	clk clock.Clock,
	interval time.Duration,
) *CompletionSweeper {
	return &CompletionSweeper{
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		uow:             uow,
		clock:           clk,
		interval:        interval,
		stop:            make(chan struct{}),
		done:            make(chan struct{}),
	}
}

func (s *CompletionSweeper) Start() {
	go s.run()
}

func (s *CompletionSweeper) Stop() {
	close(s.stop)
	<-s.done
}

func (s *CompletionSweeper) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), s.interval)
			if err := s.Sweep(ctx); err != nil {
				slog.Error("completion sweep failed", "error", err)
			}
			cancel()
		}
	}
}

// Sweep runs a single pass. The whole pass is one transaction so a slot is
// never seen completed but still unavailable.
func (s *CompletionSweeper) Sweep(ctx context.Context) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		slotIDs, err := s.reservationRepo.CompleteElapsed(ctx, tx, s.clock.Now())
		if err != nil {
			return err
		}

		for _, slotID := range slotIDs {
			if err := s.slotRepo.RecomputeAvailability(ctx, tx, slotID); err != nil {
				return err
			}
		}

		if len(slotIDs) > 0 {
			slog.Info("completed elapsed reservations", "slots_released", len(slotIDs))
		}
		return nil
	})
}
