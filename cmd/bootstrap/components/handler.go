package components

import (
	"roombook/internal/handler"
	"roombook/internal/handler/api"
	"roombook/internal/handler/middleware"
	"roombook/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewCalendarHandler,
		func(s *jwt.Service) middleware.TokenValidator { return s },
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
