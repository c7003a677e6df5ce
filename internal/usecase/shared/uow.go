package shared

import (
	"context"

	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/infra/postgres"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Discounts() DiscountRepository
	Applications() ApplicationRepository
	Reads() CommandReads
	DB() postgres.DBTX
}

type CommandReads interface {
	DiscountByID(ctx context.Context, id uuid.UUID) (*discount.Discount, error)
	DiscountByPromoCode(ctx context.Context, code string) (*discount.Discount, error)
	ApplicationByID(ctx context.Context, id uuid.UUID) (*ApplicationSnapshot, error)
}

type DiscountRepository interface {
	Create(ctx context.Context, d discount.Discount) (*discount.Discount, error)
	Update(ctx context.Context, d discount.Discount) (*discount.Discount, error)
	SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	// IncrementUses fails with a CONFLICT repository error when the discount is disabled or exhausted.
	IncrementUses(ctx context.Context, id uuid.UUID) (int, error)
	DecrementUses(ctx context.Context, id uuid.UUID) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *discount.Application) error
	Delete(ctx context.Context, id uuid.UUID) error
}
