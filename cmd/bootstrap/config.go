package bootstrap

import (
	"log/slog"

	"hotel-discounts/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfig),
)

// logConfig runs after the logger so the summary goes through the configured handler.
func logConfig(logger *slog.Logger, cfg config.Config) {
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"db_name", cfg.DB.DBName,
		"redis_enabled", cfg.Redis.Enabled,
		"snapshot_ttl", cfg.Redis.SnapshotTTL,
		"currency_symbol", cfg.Pricing.CurrencySymbol,
		"hotel_timezone", cfg.Pricing.TimeZone,
	)
}
