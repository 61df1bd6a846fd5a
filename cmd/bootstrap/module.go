package bootstrap

import (
	"roombook/cmd/bootstrap/components"
	"roombook/internal/pkg/metrics"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	ScheduleModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	fx.Invoke(metrics.Register),
)
