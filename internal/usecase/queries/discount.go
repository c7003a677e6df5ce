package queries

import (
	"context"

	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/infra"
	"hotel-discounts/internal/pkg/errs"

	"github.com/google/uuid"
)

type DiscountQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*discount.Discount, error)
	List(ctx context.Context, filter DiscountFilter) ([]discount.Discount, error)
}

type discountQueriesImpl struct {
	store DiscountReadStore
}

func NewDiscountQueries(store DiscountReadStore) DiscountQueries {
	return &discountQueriesImpl{store: store}
}

func (q *discountQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*discount.Discount, error) {
	d, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrDiscountNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return d, nil
}

func (q *discountQueriesImpl) List(ctx context.Context, filter DiscountFilter) ([]discount.Discount, error) {
	discounts, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return discounts, nil
}
