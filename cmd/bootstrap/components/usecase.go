package components

import (
	"hotel-discounts/internal/pkg/clock"
	"hotel-discounts/internal/pkg/config"
	"hotel-discounts/internal/usecase/commands"
	"hotel-discounts/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
	func(cfg config.Config) config.PricingConfig {
		return cfg.Pricing
	},
)

func NewClock(cfg config.PricingConfig) (clock.Clock, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewRealClock(loc), nil
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewDiscountCommands,
		commands.NewApplicationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDiscountQueries,
		queries.NewPricingQueries,
	),
)
