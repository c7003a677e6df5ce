package shared

import (
	"context"
	"time"

	"hotel-discounts/internal/domain/discount"

	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type ApplicationSnapshot struct {
	ID         uuid.UUID
	DiscountID uuid.UUID
	AppliedAt  time.Time
}

// DiscountSnapshotCache keeps the full discount set between requests.
// Implementations must treat a miss and a failure alike from the caller's point of view:
// the database remains the source of truth.
//
// A reader takes the generation before loading and stores what it loaded under that generation.
// Invalidate advances the generation, so a load that raced a write is never served afterwards.
type DiscountSnapshotCache interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, gen int64) ([]discount.Discount, bool, error)
	Set(ctx context.Context, gen int64, discounts []discount.Discount) error
	Invalidate(ctx context.Context) error
}
