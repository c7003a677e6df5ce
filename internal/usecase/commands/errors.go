package commands

import (
	"context"
	"log/slog"

	"hotel-discounts/internal/infra"
	"hotel-discounts/internal/pkg/errs"
	"hotel-discounts/internal/usecase/shared"
)

// translateRepoErr maps repository kinds onto the sentinels handlers understand.
// notFound is the sentinel used for KindNotFound in the calling context.
func translateRepoErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrDuplicatePromoCode)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrDiscountInUse)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrUsageLimitReached)
	case infra.IsKind(err, infra.KindDBFailure):
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	default:
		return err
	}
}

func invalidateSnapshot(ctx context.Context, cache shared.DiscountSnapshotCache) {
	if err := cache.Invalidate(ctx); err != nil {
		slog.WarnContext(ctx, "failed to invalidate discount snapshot", "error", err.Error())
	}
}
