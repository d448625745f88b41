package components

import (
	"equiplend/internal/pkg/clock"
	"equiplend/internal/pkg/config"
	"equiplend/internal/usecase"
	"equiplend/internal/usecase/commands"
	"equiplend/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewBookingCommands,
		commands.NewAuthCommands,
		usecase.NewTokenValidator,
	),
)

func NewBookingCommands(u shared.UnitOfWork, cfg config.Config, clk clock.Clock) commands.BookingCommands {
	return commands.NewBookingCommands(u, cfg.Booking, clk)
}
