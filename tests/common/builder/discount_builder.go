//go:build unit || e2e

package builder

import (
	"time"

	"hotel-discounts/internal/domain/discount"
	reqdto "hotel-discounts/internal/handler/dto/request"
	"hotel-discounts/internal/infra/converter"
	"hotel-discounts/internal/infra/postgres"
	"hotel-discounts/internal/pkg/pgconv"
	"hotel-discounts/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountBuilder struct {
	ID                  uuid.UUID
	Name                string
	Description         string
	Type                discount.Type
	Value               decimal.Decimal
	AppliesTo           discount.AppliesTo
	Enabled             bool
	ValidFrom           *time.Time
	ValidTo             *time.Time
	ApplicableRoomTypes []uuid.UUID
	PromoCode           *string
	MinimumNights       int
	MaximumUses         *int
	CurrentUses         int
	Priority            int
	CanCombine          bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewDiscountBuilder starts from an enabled, always-valid 10% room-rate discount.
func NewDiscountBuilder() *DiscountBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &DiscountBuilder{
		ID:                  uuid.New(),
		Name:                "Standard Discount",
		Description:         "",
		Type:                discount.TypePercentage,
		Value:               decimal.NewFromInt(10),
		AppliesTo:           discount.AppliesToRoomRates,
		Enabled:             true,
		ApplicableRoomTypes: []uuid.UUID{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func (b *DiscountBuilder) With(mutate func(*DiscountBuilder)) *DiscountBuilder {
	mutate(b)
	return b
}

func (b *DiscountBuilder) WithID(id uuid.UUID) *DiscountBuilder {
	b.ID = id
	return b
}

func (b *DiscountBuilder) WithName(name string) *DiscountBuilder {
	b.Name = name
	return b
}

func (b *DiscountBuilder) WithPercentage(value string) *DiscountBuilder {
	b.Type = discount.TypePercentage
	b.Value = decimal.RequireFromString(value)
	return b
}

func (b *DiscountBuilder) WithFixedAmount(value string) *DiscountBuilder {
	b.Type = discount.TypeFixedAmount
	b.Value = decimal.RequireFromString(value)
	return b
}

func (b *DiscountBuilder) AsPromoCode(code, value string) *DiscountBuilder {
	b.Type = discount.TypePromoCode
	b.Value = decimal.RequireFromString(value)
	b.PromoCode = &code
	return b
}

func (b *DiscountBuilder) AsSeasonal(value string, from, to time.Time) *DiscountBuilder {
	b.Type = discount.TypeSeasonal
	b.Value = decimal.RequireFromString(value)
	return b.WithValidity(&from, &to)
}

func (b *DiscountBuilder) AsLongStay(value string, minimumNights int) *DiscountBuilder {
	b.Type = discount.TypeLongStay
	b.Value = decimal.RequireFromString(value)
	b.MinimumNights = minimumNights
	return b
}

func (b *DiscountBuilder) WithAppliesTo(a discount.AppliesTo) *DiscountBuilder {
	b.AppliesTo = a
	return b
}

func (b *DiscountBuilder) WithPriority(p int) *DiscountBuilder {
	b.Priority = p
	return b
}

func (b *DiscountBuilder) Combinable() *DiscountBuilder {
	b.CanCombine = true
	return b
}

func (b *DiscountBuilder) WithValidity(from, to *time.Time) *DiscountBuilder {
	b.ValidFrom = from
	b.ValidTo = to
	return b
}

func (b *DiscountBuilder) WithMaxUses(maxUses, current int) *DiscountBuilder {
	b.MaximumUses = &maxUses
	b.CurrentUses = current
	return b
}

func (b *DiscountBuilder) WithRoomTypes(ids ...uuid.UUID) *DiscountBuilder {
	b.ApplicableRoomTypes = ids
	return b
}

func (b *DiscountBuilder) WithMinimumNights(n int) *DiscountBuilder {
	b.MinimumNights = n
	return b
}

func (b *DiscountBuilder) Disabled() *DiscountBuilder {
	b.Enabled = false
	return b
}

// Build methods
func (b *DiscountBuilder) Build() discount.Discount {
	return discount.Discount{
		ID:                  b.ID,
		Name:                b.Name,
		Description:         b.Description,
		Type:                b.Type,
		Value:               b.Value,
		AppliesTo:           b.AppliesTo,
		Enabled:             b.Enabled,
		ValidFrom:           b.ValidFrom,
		ValidTo:             b.ValidTo,
		ApplicableRoomTypes: b.ApplicableRoomTypes,
		PromoCode:           b.PromoCode,
		MinimumNights:       b.MinimumNights,
		MaximumUses:         b.MaximumUses,
		CurrentUses:         b.CurrentUses,
		Priority:            b.Priority,
		CanCombine:          b.CanCombine,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func (b *DiscountBuilder) BuildPtr() *discount.Discount {
	d := b.Build()
	return &d
}

func (b *DiscountBuilder) BuildRow() postgres.Discount {
	p := converter.DiscountToParams(b.Build())
	return postgres.Discount{
		ID:                  p.ID,
		Name:                p.Name,
		Description:         p.Description,
		DiscountType:        p.DiscountType,
		Value:               p.Value,
		AppliesTo:           p.AppliesTo,
		Enabled:             p.Enabled,
		ValidFrom:           p.ValidFrom,
		ValidTo:             p.ValidTo,
		ApplicableRoomTypes: p.ApplicableRoomTypes,
		PromoCode:           p.PromoCode,
		MinimumNights:       p.MinimumNights,
		MaximumUses:         p.MaximumUses,
		CurrentUses:         int32(b.CurrentUses),
		Priority:            p.Priority,
		CanCombine:          p.CanCombine,
		CreatedAt:           pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:           pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *DiscountBuilder) BuildInput() commands.DiscountInput {
	return commands.DiscountInput{
		Name:                b.Name,
		Description:         b.Description,
		Type:                b.Type,
		Value:               b.Value,
		AppliesTo:           b.AppliesTo,
		Enabled:             b.Enabled,
		ValidFrom:           b.ValidFrom,
		ValidTo:             b.ValidTo,
		ApplicableRoomTypes: b.ApplicableRoomTypes,
		PromoCode:           b.PromoCode,
		MinimumNights:       b.MinimumNights,
		MaximumUses:         b.MaximumUses,
		Priority:            b.Priority,
		CanCombine:          b.CanCombine,
	}
}

func (b *DiscountBuilder) BuildCreateRequestDTO() reqdto.CreateDiscountRequest {
	enabled := b.Enabled
	return reqdto.CreateDiscountRequest{
		Name:                b.Name,
		Description:         b.Description,
		DiscountType:        b.Type.String(),
		Value:               b.Value,
		AppliesTo:           b.AppliesTo.String(),
		Enabled:             &enabled,
		ValidFrom:           formatDatePtr(b.ValidFrom),
		ValidTo:             formatDatePtr(b.ValidTo),
		ApplicableRoomTypes: b.ApplicableRoomTypes,
		PromoCode:           b.PromoCode,
		MinimumNights:       b.MinimumNights,
		MaximumUses:         b.MaximumUses,
		Priority:            b.Priority,
		CanCombine:          b.CanCombine,
	}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(reqdto.DateLayout)
	return &s
}

// Date returns midnight UTC for the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
