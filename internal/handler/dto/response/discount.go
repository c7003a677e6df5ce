package response

import (
	"time"

	"hotel-discounts/internal/domain/discount"
)

const dateLayout = "2006-01-02"

type DiscountResponse struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	DiscountType        string   `json:"discount_type"`
	TypeLabel           string   `json:"type_label"`
	Category            string   `json:"category"`
	Value               string   `json:"value"`
	ValueLabel          string   `json:"value_label"`
	AppliesTo           string   `json:"applies_to"`
	Enabled             bool     `json:"enabled"`
	ValidFrom           *string  `json:"valid_from"`
	ValidTo             *string  `json:"valid_to"`
	ApplicableRoomTypes []string `json:"applicable_room_types"`
	PromoCode           *string  `json:"promo_code"`
	MinimumNights       int      `json:"minimum_nights"`
	MaximumUses         *int     `json:"maximum_uses"`
	CurrentUses         int      `json:"current_uses"`
	Priority            int      `json:"priority"`
	CanCombine          bool     `json:"can_combine"`
	CreatedAt           int64    `json:"created_at"`
	UpdatedAt           int64    `json:"updated_at"`
}

func FromDiscount(d *discount.Discount, currencySymbol string) *DiscountResponse {
	roomTypes := make([]string, len(d.ApplicableRoomTypes))
	for i, id := range d.ApplicableRoomTypes {
		roomTypes[i] = id.String()
	}

	return &DiscountResponse{
		ID:                  d.ID.String(),
		Name:                d.Name,
		Description:         d.Description,
		DiscountType:        d.Type.String(),
		TypeLabel:           d.Type.Label(),
		Category:            string(discount.CategoryOf(d.Type)),
		Value:               d.Value.StringFixed(2),
		ValueLabel:          discount.FormatValue(*d, currencySymbol),
		AppliesTo:           d.AppliesTo.String(),
		Enabled:             d.Enabled,
		ValidFrom:           formatDate(d.ValidFrom),
		ValidTo:             formatDate(d.ValidTo),
		ApplicableRoomTypes: roomTypes,
		PromoCode:           d.PromoCode,
		MinimumNights:       d.MinimumNights,
		MaximumUses:         d.MaximumUses,
		CurrentUses:         d.CurrentUses,
		Priority:            d.Priority,
		CanCombine:          d.CanCombine,
		CreatedAt:           d.CreatedAt.Unix(),
		UpdatedAt:           d.UpdatedAt.Unix(),
	}
}

func FromDiscounts(ds []discount.Discount, currencySymbol string) []*DiscountResponse {
	res := make([]*DiscountResponse, len(ds))
	for i := range ds {
		res[i] = FromDiscount(&ds[i], currencySymbol)
	}
	return res
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
