package discount

import "github.com/shopspring/decimal"

const moneyScale = 2

// AmountFor returns how much d takes off base, rounded half-up to cents and never more than base.
//
// Types other than percentage and fixed_amount carry a value whose meaning depends on its size:
// up to 100 it is a percentage, above 100 a fixed amount.
func AmountFor(d *Discount, base decimal.Decimal) decimal.Decimal {
	if d == nil || !base.IsPositive() {
		return decimal.Zero
	}

	var amount decimal.Decimal
	if d.treatsValueAsPercentage() {
		amount = base.Mul(d.Value).Div(hundred)
	} else {
		amount = decimal.Min(d.Value, base)
	}

	amount = roundCents(clamp(amount, base))
	if amount.GreaterThan(base) {
		// base itself has sub-cent precision
		amount = base.RoundFloor(moneyScale)
	}
	return amount
}

func clamp(amount, upper decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	if amount.GreaterThan(upper) {
		return upper
	}
	return amount
}

func roundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyScale)
}
