package commands

import (
	"context"

	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/pkg/clock"
	"hotel-discounts/internal/pkg/errs"
	"hotel-discounts/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RecordApplicationInput struct {
	DiscountID     uuid.UUID
	Target         discount.Target
	OriginalAmount decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalAmount    decimal.Decimal
}

type ApplicationCommands interface {
	Record(ctx context.Context, in RecordApplicationInput) (*discount.Application, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type applicationCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.DiscountSnapshotCache
	clock clock.Clock
}

func NewApplicationCommands(uow shared.UnitOfWork, cache shared.DiscountSnapshotCache, clk clock.Clock) ApplicationCommands {
	return &applicationCommandsImpl{uow: uow, cache: cache, clock: clk}
}

// Record stores the application and bumps the discount's usage counter in one transaction.
func (uc *applicationCommandsImpl) Record(ctx context.Context, in RecordApplicationInput) (*discount.Application, error) {
	app, err := discount.NewApplication(
		uuid.New(),
		in.DiscountID,
		in.Target,
		in.OriginalAmount,
		in.DiscountAmount,
		in.FinalAmount,
		uc.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().DiscountByID(ctx, in.DiscountID); derr != nil {
			return derr
		}
		if _, derr := tx.Discounts().IncrementUses(ctx, in.DiscountID); derr != nil {
			return derr
		}
		return tx.Applications().Create(ctx, app)
	})
	if err != nil {
		return nil, translateRepoErr(err, errs.ErrDiscountNotFound)
	}

	invalidateSnapshot(ctx, uc.cache)
	return app, nil
}

func (uc *applicationCommandsImpl) Remove(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ApplicationByID(ctx, id)
		if derr != nil {
			return derr
		}
		if derr = tx.Applications().Delete(ctx, id); derr != nil {
			return derr
		}
		return tx.Discounts().DecrementUses(ctx, snap.DiscountID)
	})
	if err != nil {
		return translateRepoErr(err, errs.ErrApplicationNotFound)
	}

	invalidateSnapshot(ctx, uc.cache)
	return nil
}
