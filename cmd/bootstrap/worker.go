package bootstrap

import (
	"context"

	"parkreserve/internal/pkg/clock"
	"parkreserve/internal/pkg/config"
	"parkreserve/internal/usecase/commands"
	"parkreserve/internal/usecase/shared"
	"parkreserve/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewCompletionSweeper,
	),
	fx.Invoke(startSweeper),
)

func NewCompletionSweeper(
	cfg config.Config,
	reservationRepo commands.ReservationRepository,
	slotRepo commands.SlotRepository,
	uow shared.UnitOfWork,
	clk clock.Clock,
) *worker.CompletionSweeper {
	return worker.NewCompletionSweeper(reservationRepo, slotRepo, uow, clk, cfg.Sweeper.Interval)
}

func startSweeper(lc fx.Lifecycle, sweeper *worker.CompletionSweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
