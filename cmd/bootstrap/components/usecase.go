package components

import (
	"shutterbook/internal/pkg/clock"
	"shutterbook/internal/pkg/config"
	"shutterbook/internal/usecase"
	"shutterbook/internal/usecase/commands"
	"shutterbook/internal/usecase/queries"
	"shutterbook/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewLifecycleUseCase,
		commands.NewAvailabilityUseCase,
		commands.NewNotificationUseCase,
		NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewJobQueries,
		queries.NewNotificationQueries,
		queries.NewPaymentQueries,
		queries.NewAvailabilityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPaymentCommands(uow shared.UnitOfWork, gw commands.ChargeGateway, cfg config.Config, clk clock.Clock) commands.PaymentCommands {
	return commands.NewPaymentUseCase(uow, gw, cfg.Omise.Currency, clk)
}
