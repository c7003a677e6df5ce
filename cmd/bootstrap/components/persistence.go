package components

import (
	"hotel-discounts/internal/infra/postgres"
	"hotel-discounts/internal/infra/readstore"
	"hotel-discounts/internal/infra/uow"
	"hotel-discounts/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	fx.Provide(uow.NewPostgresUoW),
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		func(q *postgres.Queries) readstore.DiscountReadQueries { return q },
		fx.Annotate(
			readstore.NewDiscountReadStore,
			fx.As(new(queries.DiscountReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *postgres.Queries {
	return postgres.New()
}

func NewDBTX(pool *pgxpool.Pool) postgres.DBTX {
	return pool
}
