package components

import (
	"context"
	"log/slog"

	"hotel-discounts/internal/infra/cache"
	"hotel-discounts/internal/pkg/config"
	"hotel-discounts/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(NewDiscountSnapshotCache),
)

// NewDiscountSnapshotCache falls back to a no-op cache when Redis is disabled,
// so every quote reads the discount table directly.
func NewDiscountSnapshotCache(lc fx.Lifecycle, cfg config.Config) (shared.DiscountSnapshotCache, error) {
	if !cfg.Redis.Enabled {
		slog.Info("discount snapshot cache disabled")
		return cache.NopCache{}, nil
	}

	client, cleanup, err := cache.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return cache.NewDiscountSnapshotCache(client, cfg.Redis.SnapshotTTL), nil
}
