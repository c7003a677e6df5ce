package components

import (
	"hotel-discounts/internal/handler"
	"hotel-discounts/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingHandler,
		api.NewDiscountHandler,
		api.NewApplicationHandler,
		func(p *api.PricingHandler, d *api.DiscountHandler, a *api.ApplicationHandler) handler.Handlers {
			return handler.Handlers{Pricing: p, Discounts: d, Applications: a}
		},
	),
	fx.Invoke(handler.NewRouter),
)
