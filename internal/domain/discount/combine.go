package discount

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AppliedDiscount struct {
	ID       uuid.UUID
	Name     string
	Type     Type
	Value    decimal.Decimal
	Amount   decimal.Decimal
	Priority int
}

type Breakdown struct {
	OriginalAmount decimal.Decimal
	TotalDiscount  decimal.Decimal
	FinalAmount    decimal.Decimal
	Applied        []AppliedDiscount
}

// SortByPriority returns a copy of discounts ordered by priority, highest first.
// Equal priorities keep their input order.
func SortByPriority(discounts []Discount) []Discount {
	ordered := slices.Clone(discounts)
	slices.SortStableFunc(ordered, func(a, b Discount) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
	return ordered
}

// Combine stacks discounts on base in priority order. Each discount is computed against the amount
// left by the ones before it. A non-combinable discount is only taken when nothing has been applied
// yet, and once taken it ends the stack.
func Combine(base decimal.Decimal, discounts []Discount) Breakdown {
	breakdown := Breakdown{
		OriginalAmount: base,
		TotalDiscount:  decimal.Zero,
		FinalAmount:    base,
		Applied:        []AppliedDiscount{},
	}
	if len(discounts) == 0 {
		return breakdown
	}

	current := base
	total := decimal.Zero
	for _, d := range SortByPriority(discounts) {
		if len(breakdown.Applied) > 0 && !d.CanCombine {
			continue
		}

		amount := AmountFor(&d, current)
		if !amount.IsPositive() {
			continue
		}

		breakdown.Applied = append(breakdown.Applied, AppliedDiscount{
			ID:       d.ID,
			Name:     d.Name,
			Type:     d.Type,
			Value:    d.Value,
			Amount:   amount,
			Priority: d.Priority,
		})
		total = total.Add(amount)
		current = roundCents(decimal.Max(current.Sub(amount), decimal.Zero))

		if !d.CanCombine {
			break
		}
	}

	breakdown.TotalDiscount = roundCents(total)
	breakdown.FinalAmount = roundCents(current)
	return breakdown
}
