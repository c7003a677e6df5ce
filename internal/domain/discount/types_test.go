//go:build unit

package discount_test

import (
	"testing"

	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestType_LabelAndCategory(t *testing.T) {
	testCases := []struct {
		typ      discount.Type
		label    string
		category discount.Category
	}{
		{discount.TypePercentage, "Percentage", discount.CategoryStandard},
		{discount.TypeFixedAmount, "Fixed Amount", discount.CategoryStandard},
		{discount.TypePromoCode, "Promo Code", discount.CategoryCode},
		{discount.TypeSeasonal, "Seasonal", discount.CategorySeasonal},
		{discount.TypeLongStay, "Long Stay", discount.CategoryStay},
		{discount.Type("loyalty"), "loyalty", discount.CategoryUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.typ.String(), func(t *testing.T) {
			assert.Equal(t, tc.label, tc.typ.Label())
			assert.Equal(t, tc.category, discount.CategoryOf(tc.typ))
			assert.Equal(t, tc.category != discount.CategoryUnknown, tc.typ.IsValid())
		})
	}
}

func TestFormatValue(t *testing.T) {
	testCases := []struct {
		name     string
		discount discount.Discount
		expected string
	}{
		{name: "whole percentage", discount: builder.NewDiscountBuilder().WithPercentage("10").Build(), expected: "10% off"},
		{name: "fractional percentage", discount: builder.NewDiscountBuilder().WithPercentage("12.5").Build(), expected: "12.5% off"},
		{name: "fixed amount", discount: builder.NewDiscountBuilder().WithFixedAmount("50").Build(), expected: "$50.00 off"},
		{name: "promo code", discount: builder.NewDiscountBuilder().AsPromoCode("WELCOME10", "10").Build(), expected: "$10.00 off"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, discount.FormatValue(tc.discount, "$"))
		})
	}
}
