package components

import (
	"shutterbook/internal/handler"
	"shutterbook/internal/handler/api"
	"shutterbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewJobHandler,
		api.NewPaymentHandler,
		api.NewNotificationHandler,
		api.NewAvailabilityHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
