//go:build unit

package commands_test

import (
	"context"

	"hotel-discounts/internal/infra"
	"hotel-discounts/internal/usecase/shared"
	sharedmock "hotel-discounts/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/mock/gomock"
)

type txMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	discounts    *sharedmock.MockDiscountRepository
	applications *sharedmock.MockApplicationRepository
	cache        *sharedmock.MockDiscountSnapshotCache
}

// newTxMocks wires a unit of work that runs the callback against mocked repositories.
func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		discounts:    sharedmock.NewMockDiscountRepository(ctrl),
		applications: sharedmock.NewMockApplicationRepository(ctrl),
		cache:        sharedmock.NewMockDiscountSnapshotCache(ctrl),
	}

	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Discounts().Return(m.discounts).AnyTimes()
	m.tx.EXPECT().Applications().Return(m.applications).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()

	return m
}

func notFoundErr() error {
	return infra.WrapRepoErr("not found", pgx.ErrNoRows, infra.KindNotFound)
}

func pgErr(code string) error {
	return infra.WrapRepoErr("query failed", &pgconn.PgError{Code: code})
}
