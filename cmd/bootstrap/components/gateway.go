package components

import (
	"log/slog"

	"shutterbook/internal/infra/gateway"
	"shutterbook/internal/pkg/config"
	"shutterbook/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewChargeGateway,
	),
)

func NewChargeGateway(cfg config.Config, logger *slog.Logger) commands.ChargeGateway {
	return gateway.NewOmiseGateway(cfg.Omise, logger)
}
