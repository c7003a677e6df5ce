package bootstrap

import (
	"context"
	"log/slog"

	"hotel-discounts/internal/infra/db"
	"hotel-discounts/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			stat := pool.Stat()
			slog.InfoContext(ctx, "database pool ready",
				"host", cfg.DB.Host,
				"database", cfg.DB.DBName,
				"max_conns", stat.MaxConns(),
				"idle_conns", stat.IdleConns(),
			)
			return nil
		},
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
