package request

import (
	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/pkg/errs"
	"hotel-discounts/internal/pkg/patch"
	"hotel-discounts/internal/usecase/commands"
	"hotel-discounts/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateDiscountRequest struct {
	Name                string          `json:"name" binding:"required,max=255"`
	Description         string          `json:"description" binding:"max=2000"`
	DiscountType        string          `json:"discount_type" binding:"required"`
	Value               decimal.Decimal `json:"value"`
	AppliesTo           string          `json:"applies_to" binding:"required"`
	Enabled             *bool           `json:"enabled"`
	ValidFrom           *string         `json:"valid_from" binding:"omitempty,datetime=2006-01-02"`
	ValidTo             *string         `json:"valid_to" binding:"omitempty,datetime=2006-01-02"`
	ApplicableRoomTypes []uuid.UUID     `json:"applicable_room_types"`
	PromoCode           *string         `json:"promo_code" binding:"omitempty,max=64"`
	MinimumNights       int             `json:"minimum_nights" binding:"min=0"`
	MaximumUses         *int            `json:"maximum_uses" binding:"omitempty,min=1"`
	Priority            int             `json:"priority"`
	CanCombine          bool            `json:"can_combine"`
}

// UpdateDiscountRequest is a partial update; omitted fields keep their stored value.
type UpdateDiscountRequest struct {
	Name                *string          `json:"name" binding:"omitempty,max=255"`
	Description         *string          `json:"description" binding:"omitempty,max=2000"`
	DiscountType        *string          `json:"discount_type"`
	Value               *decimal.Decimal `json:"value"`
	AppliesTo           *string          `json:"applies_to"`
	Enabled             *bool            `json:"enabled"`
	ValidFrom           *string          `json:"valid_from" binding:"omitempty,datetime=2006-01-02"`
	ValidTo             *string          `json:"valid_to" binding:"omitempty,datetime=2006-01-02"`
	ApplicableRoomTypes *[]uuid.UUID     `json:"applicable_room_types"`
	PromoCode           *string          `json:"promo_code" binding:"omitempty,max=64"`
	MinimumNights       *int             `json:"minimum_nights" binding:"omitempty,min=0"`
	MaximumUses         *int             `json:"maximum_uses" binding:"omitempty,min=1"`
	Priority            *int             `json:"priority"`
	CanCombine          *bool            `json:"can_combine"`
}

type SetDiscountEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type ListDiscountsQuery struct {
	Type    string `form:"type"`
	Enabled *bool  `form:"enabled"`
}

func (r *CreateDiscountRequest) ToDomain() (commands.DiscountInput, error) {
	validFrom, err := parseDatePtr(r.ValidFrom)
	if err != nil {
		return commands.DiscountInput{}, errs.Mark(err, errs.ErrDomainValidation)
	}
	validTo, err := parseDatePtr(r.ValidTo)
	if err != nil {
		return commands.DiscountInput{}, errs.Mark(err, errs.ErrDomainValidation)
	}

	return commands.DiscountInput{
		Name:                r.Name,
		Description:         r.Description,
		Type:                discount.Type(r.DiscountType),
		Value:               r.Value,
		AppliesTo:           discount.AppliesTo(r.AppliesTo),
		Enabled:             patch.Coalesce(r.Enabled, true),
		ValidFrom:           validFrom,
		ValidTo:             validTo,
		ApplicableRoomTypes: r.ApplicableRoomTypes,
		PromoCode:           r.PromoCode,
		MinimumNights:       r.MinimumNights,
		MaximumUses:         r.MaximumUses,
		Priority:            r.Priority,
		CanCombine:          r.CanCombine,
	}, nil
}

func (r *UpdateDiscountRequest) ToDomain() (commands.DiscountPatch, error) {
	validFrom, err := parseDatePtr(r.ValidFrom)
	if err != nil {
		return commands.DiscountPatch{}, errs.Mark(err, errs.ErrDomainValidation)
	}
	validTo, err := parseDatePtr(r.ValidTo)
	if err != nil {
		return commands.DiscountPatch{}, errs.Mark(err, errs.ErrDomainValidation)
	}

	p := commands.DiscountPatch{
		Name:                r.Name,
		Description:         r.Description,
		Value:               r.Value,
		Enabled:             r.Enabled,
		ValidFrom:           validFrom,
		ValidTo:             validTo,
		ApplicableRoomTypes: r.ApplicableRoomTypes,
		PromoCode:           r.PromoCode,
		MinimumNights:       r.MinimumNights,
		MaximumUses:         r.MaximumUses,
		Priority:            r.Priority,
		CanCombine:          r.CanCombine,
	}
	if r.DiscountType != nil {
		t := discount.Type(*r.DiscountType)
		p.Type = &t
	}
	if r.AppliesTo != nil {
		a := discount.AppliesTo(*r.AppliesTo)
		p.AppliesTo = &a
	}
	return p, nil
}

func (q *ListDiscountsQuery) ToFilter() (queries.DiscountFilter, error) {
	filter := queries.DiscountFilter{Enabled: q.Enabled}
	if q.Type != "" {
		t := discount.Type(q.Type)
		if !t.IsValid() {
			return queries.DiscountFilter{}, errs.Mark(errs.New("unknown discount type "+q.Type), errs.ErrDomainValidation)
		}
		filter.Type = &t
	}
	return filter, nil
}
