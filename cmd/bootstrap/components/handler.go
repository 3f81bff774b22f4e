package components

import (
	"campus-reassign/internal/handler"
	"campus-reassign/internal/handler/api"
	"campus-reassign/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReassignmentHandler,
		api.NewPolicyHandler,
		api.NewAnalyticsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
