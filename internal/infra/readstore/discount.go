package readstore

import (
	"context"

	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/infra"
	"hotel-discounts/internal/infra/converter"
	"hotel-discounts/internal/infra/postgres"
	"hotel-discounts/internal/pkg/pgconv"
	"hotel-discounts/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DiscountReadQueries interface {
	GetDiscountByID(ctx context.Context, db postgres.DBTX, id uuid.UUID) (postgres.Discount, error)
	GetDiscountByPromoCode(ctx context.Context, db postgres.DBTX, code string) (postgres.Discount, error)
	ListDiscounts(ctx context.Context, db postgres.DBTX, arg postgres.ListDiscountsParams) ([]postgres.Discount, error)
}

type DiscountReadStore struct {
	queries DiscountReadQueries
	db      postgres.DBTX
}

func NewDiscountReadStore(queries DiscountReadQueries, db postgres.DBTX) *DiscountReadStore {
	return &DiscountReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DiscountReadStore) FindByID(ctx context.Context, id uuid.UUID) (*discount.Discount, error) {
	row, err := r.queries.GetDiscountByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("discount not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get discount by id", err)
	}
	return toDiscount(row)
}

// FindByPromoCode expects an already normalised code.
func (r *DiscountReadStore) FindByPromoCode(ctx context.Context, code string) (*discount.Discount, error) {
	row, err := r.queries.GetDiscountByPromoCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get discount by promo code", err)
	}
	return toDiscount(row)
}

func (r *DiscountReadStore) List(ctx context.Context, filter queries.DiscountFilter) ([]discount.Discount, error) {
	params := postgres.ListDiscountsParams{}
	if filter.Type != nil {
		params.DiscountType = pgtype.Text{String: filter.Type.String(), Valid: true}
	}
	if filter.Enabled != nil {
		params.Enabled = pgtype.Bool{Bool: *filter.Enabled, Valid: true}
	}

	rows, err := r.queries.ListDiscounts(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list discounts", err)
	}

	discounts, err := converter.DiscountsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert discount rows", err)
	}
	return discounts, nil
}

// ListAll returns the full snapshot the pricing engine works on.
func (r *DiscountReadStore) ListAll(ctx context.Context) ([]discount.Discount, error) {
	return r.List(ctx, queries.DiscountFilter{})
}

func toDiscount(row postgres.Discount) (*discount.Discount, error) {
	d, err := converter.DiscountFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert discount row", err)
	}
	return d, nil
}
