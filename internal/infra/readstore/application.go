package readstore

import (
	"context"

	"hotel-discounts/internal/infra"
	"hotel-discounts/internal/infra/postgres"
	"hotel-discounts/internal/pkg/pgconv"
	"hotel-discounts/internal/usecase/shared"

	"github.com/google/uuid"
)

type ApplicationReadQueries interface {
	GetDiscountApplicationByID(ctx context.Context, db postgres.DBTX, id uuid.UUID) (postgres.DiscountApplication, error)
}

type ApplicationReadStore struct {
	queries ApplicationReadQueries
	db      postgres.DBTX
}

func NewApplicationReadStore(queries ApplicationReadQueries, db postgres.DBTX) *ApplicationReadStore {
	return &ApplicationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ApplicationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ApplicationSnapshot, error) {
	row, err := r.queries.GetDiscountApplicationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("discount application not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get discount application by id", err)
	}

	return &shared.ApplicationSnapshot{
		ID:         row.ID,
		DiscountID: row.DiscountID,
		AppliedAt:  pgconv.TimeFromPgtype(row.AppliedAt),
	}, nil
}
