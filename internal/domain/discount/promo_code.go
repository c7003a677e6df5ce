package discount

import (
	"strings"
	"time"
)

const (
	ReasonNotFound          = "not found"
	ReasonExpiredOrInactive = "expired or inactive"
)

// PromoLookup finds the discount carrying a normalised promo code.
type PromoLookup func(code string) (Discount, bool)

type PromoValidation struct {
	Valid    bool
	Discount *Discount
	Reason   string
}

func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func ValidatePromoCode(code string, asOf time.Time, lookup PromoLookup) PromoValidation {
	normalized := NormalizePromoCode(code)
	if normalized == "" || lookup == nil {
		return PromoValidation{Reason: ReasonNotFound}
	}

	d, ok := lookup(normalized)
	if !ok {
		return PromoValidation{Reason: ReasonNotFound}
	}
	if !IsValid(d, asOf) {
		return PromoValidation{Reason: ReasonExpiredOrInactive}
	}
	return PromoValidation{Valid: true, Discount: &d}
}

// LookupIn builds a PromoLookup over an in-memory snapshot.
func LookupIn(discounts []Discount) PromoLookup {
	return func(code string) (Discount, bool) {
		for _, d := range discounts {
			if d.PromoCode != nil && *d.PromoCode == code {
				return d, true
			}
		}
		return Discount{}, false
	}
}
