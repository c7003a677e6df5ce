package discount

func FormatValue(d Discount, currencySymbol string) string {
	if d.Type == TypePercentage {
		return d.Value.String() + "% off"
	}
	return currencySymbol + d.Value.StringFixed(moneyScale) + " off"
}
