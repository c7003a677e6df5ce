package bootstrap

import (
	"hotel-discounts/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.CacheModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
