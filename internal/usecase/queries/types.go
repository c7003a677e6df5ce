package queries

import (
	"context"

	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountFilter narrows the admin listing; nil fields do not filter.
type DiscountFilter struct {
	Type    *discount.Type
	Enabled *bool
}

type DiscountReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*discount.Discount, error)
	List(ctx context.Context, filter DiscountFilter) ([]discount.Discount, error)
	ListAll(ctx context.Context) ([]discount.Discount, error)
}

type QuoteInput struct {
	Amount     decimal.Decimal
	Stay       reservation.StayPeriod
	RoomTypeID *uuid.UUID
	PromoCode  *string
	AppliesTo  *discount.AppliesTo
}

// QuoteLine is an applied discount together with its display label.
type QuoteLine struct {
	discount.AppliedDiscount
	Label    string
	Category discount.Category
}

type Quote struct {
	OriginalAmount decimal.Decimal
	TotalDiscount  decimal.Decimal
	FinalAmount    decimal.Decimal
	Nights         int
	Lines          []QuoteLine
}
