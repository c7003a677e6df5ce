package discount

import (
	"time"

	"github.com/google/uuid"
)

// BookingContext is the reservation or bill a quote is computed for.
type BookingContext struct {
	CheckIn    time.Time
	CheckOut   time.Time
	RoomTypeID *uuid.UUID
	Nights     int
	PromoCode  *string
}

// IsValid reports whether d can be used on the calendar date of asOf.
// Validity bounds are inclusive and compared by date only.
func IsValid(d Discount, asOf time.Time) bool {
	if !d.Enabled {
		return false
	}

	day := dateOf(asOf)
	if d.ValidFrom != nil && day.Before(dateOf(*d.ValidFrom)) {
		return false
	}
	if d.ValidTo != nil && day.After(dateOf(*d.ValidTo)) {
		return false
	}
	if d.MaximumUses != nil && d.CurrentUses >= *d.MaximumUses {
		return false
	}
	return true
}

// FilterApplicable returns the discounts eligible for ctx, keeping input order.
func FilterApplicable(discounts []Discount, ctx BookingContext) []Discount {
	applicable := make([]Discount, 0, len(discounts))
	for _, d := range discounts {
		if isApplicable(d, ctx) {
			applicable = append(applicable, d)
		}
	}
	return applicable
}

func isApplicable(d Discount, ctx BookingContext) bool {
	if !IsValid(d, ctx.CheckIn) {
		return false
	}
	if ctx.Nights < d.MinimumNights {
		return false
	}
	if len(d.ApplicableRoomTypes) > 0 && ctx.RoomTypeID != nil && !d.HasRoomType(*ctx.RoomTypeID) {
		return false
	}

	if ctx.PromoCode != nil {
		return d.PromoCode != nil && *d.PromoCode == *ctx.PromoCode
	}
	return d.Type != TypePromoCode
}

// dateOf drops the time of day, keeping the calendar date as seen in t's own location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
