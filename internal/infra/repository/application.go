package repository

import (
	"context"

	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/infra"
	"hotel-discounts/internal/infra/converter"
	"hotel-discounts/internal/infra/postgres"

	"github.com/google/uuid"
)

type ApplicationWriteQueries interface {
	CreateDiscountApplication(ctx context.Context, db postgres.DBTX, arg postgres.CreateDiscountApplicationParams) (postgres.DiscountApplication, error)
	DeleteDiscountApplication(ctx context.Context, db postgres.DBTX, id uuid.UUID) (int64, error)
}

type ApplicationRepository struct {
	queries ApplicationWriteQueries
	db      postgres.DBTX
}

func NewApplicationRepository(queries ApplicationWriteQueries, db postgres.DBTX) *ApplicationRepository {
	return &ApplicationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *discount.Application) error {
	if _, err := r.queries.CreateDiscountApplication(ctx, r.db, converter.ApplicationToParams(app)); err != nil {
		return infra.WrapRepoErr("failed to create discount application", err)
	}
	return nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteDiscountApplication(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete discount application", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("discount application not found", nil, infra.KindNotFound)
	}
	return nil
}
