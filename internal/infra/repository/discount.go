package repository

import (
	"context"

	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/infra"
	"hotel-discounts/internal/infra/converter"
	"hotel-discounts/internal/infra/postgres"
	"hotel-discounts/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DiscountWriteQueries interface {
	CreateDiscount(ctx context.Context, db postgres.DBTX, arg postgres.CreateDiscountParams) (postgres.Discount, error)
	UpdateDiscount(ctx context.Context, db postgres.DBTX, arg postgres.UpdateDiscountParams) (postgres.Discount, error)
	SetDiscountEnabled(ctx context.Context, db postgres.DBTX, id uuid.UUID, enabled bool) (int64, error)
	DeleteDiscount(ctx context.Context, db postgres.DBTX, id uuid.UUID) (int64, error)
	IncrementDiscountUses(ctx context.Context, db postgres.DBTX, id uuid.UUID) (int32, error)
	DecrementDiscountUses(ctx context.Context, db postgres.DBTX, id uuid.UUID) (int64, error)
}

type DiscountRepository struct {
	queries DiscountWriteQueries
	db      postgres.DBTX
}

func NewDiscountRepository(queries DiscountWriteQueries, db postgres.DBTX) *DiscountRepository {
	return &DiscountRepository{
		queries: queries,
		db:      db,
	}
}

func (r *DiscountRepository) Create(ctx context.Context, d discount.Discount) (*discount.Discount, error) {
	row, err := r.queries.CreateDiscount(ctx, r.db, converter.DiscountToParams(d))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create discount", err)
	}

	created, err := converter.DiscountFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert discount row", err)
	}
	return created, nil
}

func (r *DiscountRepository) Update(ctx context.Context, d discount.Discount) (*discount.Discount, error) {
	row, err := r.queries.UpdateDiscount(ctx, r.db, converter.DiscountToParams(d))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("discount not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update discount", err)
	}

	updated, err := converter.DiscountFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert discount row", err)
	}
	return updated, nil
}

func (r *DiscountRepository) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) error {
	affected, err := r.queries.SetDiscountEnabled(ctx, r.db, id, enabled)
	if err != nil {
		return infra.WrapRepoErr("failed to set discount enabled", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("discount not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DiscountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteDiscount(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete discount", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("discount not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DiscountRepository) IncrementUses(ctx context.Context, id uuid.UUID) (int, error) {
	uses, err := r.queries.IncrementDiscountUses(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("discount disabled or usage limit reached", err, infra.KindConflict)
		}
		return 0, infra.WrapRepoErr("failed to increment discount uses", err)
	}
	return int(uses), nil
}

func (r *DiscountRepository) DecrementUses(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DecrementDiscountUses(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement discount uses", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("discount not found", nil, infra.KindNotFound)
	}
	return nil
}
