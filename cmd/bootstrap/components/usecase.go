package components

import (
	"parkreserve/internal/domain/reservation"
	"parkreserve/internal/pkg/clock"
	"parkreserve/internal/pkg/config"
	"parkreserve/internal/usecase"
	"parkreserve/internal/usecase/commands"
	"parkreserve/internal/usecase/queries"
	"parkreserve/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewFactory,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSlotQueries,
		queries.NewReservationQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSlotCommands,
		newReservationCommands,
		newPaymentCommands,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func newReservationCommands(
	cfg config.Config,
	slotRepo commands.SlotRepository,
	reservationRepo commands.ReservationRepository,
	idempotencyRepo commands.IdempotencyRepository,
	gateway commands.PaymentGateway,
	reservationQueries queries.ReservationQueries,
	factory *reservation.Factory,
	uow shared.UnitOfWork,
	clk clock.Clock,
) commands.ReservationCommands {
	return commands.NewReservationCommands(
		slotRepo, reservationRepo, idempotencyRepo, gateway,
		reservationQueries, factory, uow, clk, cfg.Payment.Currency,
	)
}

func newPaymentCommands(
	cfg config.Config,
	reservationRepo commands.ReservationRepository,
	gateway commands.PaymentGateway,
	uow shared.UnitOfWork,
) commands.PaymentCommands {
	return commands.NewPaymentCommands(reservationRepo, gateway, uow, cfg.Payment.Currency)
}
