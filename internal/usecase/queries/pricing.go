package queries

import (
	"context"
	"log/slog"

	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/pkg/clock"
	"hotel-discounts/internal/pkg/config"
	"hotel-discounts/internal/pkg/errs"
	"hotel-discounts/internal/usecase/shared"
)

type PricingQueries interface {
	Quote(ctx context.Context, in QuoteInput) (*Quote, error)
	ValidatePromoCode(ctx context.Context, code string) (discount.PromoValidation, error)
}

type pricingQueriesImpl struct {
	store          DiscountReadStore
	cache          shared.DiscountSnapshotCache
	clock          clock.Clock
	currencySymbol string
}

func NewPricingQueries(store DiscountReadStore, cache shared.DiscountSnapshotCache, clk clock.Clock, cfg config.PricingConfig) PricingQueries {
	return &pricingQueriesImpl{
		store:          store,
		cache:          cache,
		clock:          clk,
		currencySymbol: cfg.CurrencySymbol,
	}
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, in QuoteInput) (*Quote, error) {
	snapshot, err := q.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	bookingCtx := in.Stay.BookingContext(in.RoomTypeID, normalizePromoCode(in.PromoCode))
	candidates := discount.FilterApplicable(snapshot, bookingCtx)
	if in.AppliesTo != nil {
		candidates = filterBucket(candidates, *in.AppliesTo)
	}

	breakdown := discount.Combine(in.Amount, candidates)

	lines := make([]QuoteLine, 0, len(breakdown.Applied))
	for _, applied := range breakdown.Applied {
		lines = append(lines, QuoteLine{
			AppliedDiscount: applied,
			Label:           discount.FormatValue(discount.Discount{Type: applied.Type, Value: applied.Value}, q.currencySymbol),
			Category:        discount.CategoryOf(applied.Type),
		})
	}

	return &Quote{
		OriginalAmount: breakdown.OriginalAmount,
		TotalDiscount:  breakdown.TotalDiscount,
		FinalAmount:    breakdown.FinalAmount,
		Nights:         bookingCtx.Nights,
		Lines:          lines,
	}, nil
}

func (q *pricingQueriesImpl) ValidatePromoCode(ctx context.Context, code string) (discount.PromoValidation, error) {
	snapshot, err := q.snapshot(ctx)
	if err != nil {
		return discount.PromoValidation{}, err
	}
	return discount.ValidatePromoCode(code, q.clock.Now(), discount.LookupIn(snapshot)), nil
}

// snapshot serves the discount set from cache when possible. Cache errors fall through to the database.
func (q *pricingQueriesImpl) snapshot(ctx context.Context) ([]discount.Discount, error) {
	gen, err := q.cache.Generation(ctx)
	if err != nil {
		// no generation means no safe key to write under
		slog.WarnContext(ctx, "discount snapshot cache unavailable", "error", err.Error())
		return q.loadSnapshot(ctx)
	}

	cached, ok, err := q.cache.Get(ctx, gen)
	if err != nil {
		slog.WarnContext(ctx, "discount snapshot cache read failed", "error", err.Error())
	}
	if ok {
		return cached, nil
	}

	discounts, err := q.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	if err := q.cache.Set(ctx, gen, discounts); err != nil {
		slog.WarnContext(ctx, "discount snapshot cache write failed", "error", err.Error())
	}
	return discounts, nil
}

func (q *pricingQueriesImpl) loadSnapshot(ctx context.Context) ([]discount.Discount, error) {
	discounts, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return discounts, nil
}

func filterBucket(discounts []discount.Discount, bucket discount.AppliesTo) []discount.Discount {
	out := make([]discount.Discount, 0, len(discounts))
	for _, d := range discounts {
		if d.AppliesTo == bucket {
			out = append(out, d)
		}
	}
	return out
}

func normalizePromoCode(code *string) *string {
	if code == nil {
		return nil
	}
	normalized := discount.NormalizePromoCode(*code)
	if normalized == "" {
		return nil
	}
	return &normalized
}
