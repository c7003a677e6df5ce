package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	GenerationKey     = "hotel-discounts:discounts:generation"
	snapshotKeyPrefix = "hotel-discounts:discounts:snapshot:"
)

// SnapshotKey is the key a snapshot loaded under generation gen is stored at.
// Invalidate moves the generation on, so a write made with an older one is never read again.
func SnapshotKey(gen int64) string {
	return snapshotKeyPrefix + strconv.FormatInt(gen, 10)
}

// DiscountSnapshotCache stores the whole discount set as one JSON value per generation.
type DiscountSnapshotCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewDiscountSnapshotCache(client redis.Cmdable, ttl time.Duration) *DiscountSnapshotCache {
	return &DiscountSnapshotCache{
		client: client,
		ttl:    ttl,
	}
}

// Generation is 0 until the first invalidation.
func (c *DiscountSnapshotCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, GenerationKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, errs.Wrap(err, "failed to read discount snapshot generation")
	}
	return gen, nil
}

func (c *DiscountSnapshotCache) Get(ctx context.Context, gen int64) ([]discount.Discount, bool, error) {
	data, err := c.client.Get(ctx, SnapshotKey(gen)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "failed to read discount snapshot")
	}

	var discounts []discount.Discount
	if err := json.Unmarshal(data, &discounts); err != nil {
		return nil, false, errs.Wrap(err, "failed to decode discount snapshot")
	}
	return discounts, true, nil
}

func (c *DiscountSnapshotCache) Set(ctx context.Context, gen int64, discounts []discount.Discount) error {
	data, err := json.Marshal(discounts)
	if err != nil {
		return errs.Wrap(err, "failed to encode discount snapshot")
	}

	if err := c.client.Set(ctx, SnapshotKey(gen), data, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write discount snapshot")
	}
	return nil
}

// Invalidate orphans every snapshot stored so far; they expire with their TTL.
func (c *DiscountSnapshotCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, GenerationKey).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate discount snapshot")
	}
	return nil
}

// NopCache is wired when Redis is disabled; every read is a miss.
type NopCache struct{}

func (NopCache) Generation(context.Context) (int64, error)                     { return 0, nil }
func (NopCache) Get(context.Context, int64) ([]discount.Discount, bool, error) { return nil, false, nil }
func (NopCache) Set(context.Context, int64, []discount.Discount) error         { return nil }
func (NopCache) Invalidate(context.Context) error                              { return nil }
