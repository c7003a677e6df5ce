//go:build unit

package discount_test

import (
	"testing"

	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appliedNames(b discount.Breakdown) []string {
	names := make([]string, 0, len(b.Applied))
	for _, a := range b.Applied {
		names = append(names, a.Name)
	}
	return names
}

func TestCombine(t *testing.T) {
	testCases := []struct {
		name          string
		base          string
		discounts     []discount.Discount
		expectedNames []string
		expectedTotal string
		expectedFinal string
	}{
		{
			name:          "no discounts",
			base:          "200",
			discounts:     nil,
			expectedNames: []string{},
			expectedTotal: "0.00",
			expectedFinal: "200.00",
		},
		{
			name: "single percentage",
			base: "200",
			discounts: []discount.Discount{
				builder.NewDiscountBuilder().WithName("Ten").WithPercentage("10").Build(),
			},
			expectedNames: []string{"Ten"},
			expectedTotal: "20.00",
			expectedFinal: "180.00",
		},
		{
			name: "combinable discounts stack on the remaining amount",
			base: "200",
			discounts: []discount.Discount{
				builder.NewDiscountBuilder().WithName("Fixed").WithFixedAmount("20").WithPriority(1).Combinable().Build(),
				builder.NewDiscountBuilder().WithName("Ten").WithPercentage("10").WithPriority(2).Combinable().Build(),
			},
			expectedNames: []string{"Ten", "Fixed"},
			expectedTotal: "40.00",
			expectedFinal: "160.00",
		},
		{
			name: "non-combinable with highest priority ends the stack",
			base: "200",
			discounts: []discount.Discount{
				builder.NewDiscountBuilder().WithName("Exclusive").WithPercentage("25").WithPriority(5).Build(),
				builder.NewDiscountBuilder().WithName("Ten").WithPercentage("10").WithPriority(1).Combinable().Build(),
			},
			expectedNames: []string{"Exclusive"},
			expectedTotal: "50.00",
			expectedFinal: "150.00",
		},
		{
			name: "non-combinable after an applied discount is skipped",
			base: "100",
			discounts: []discount.Discount{
				builder.NewDiscountBuilder().WithName("First").WithPercentage("10").WithPriority(3).Combinable().Build(),
				builder.NewDiscountBuilder().WithName("Exclusive").WithPercentage("50").WithPriority(2).Build(),
				builder.NewDiscountBuilder().WithName("Last").WithFixedAmount("5").WithPriority(1).Combinable().Build(),
			},
			expectedNames: []string{"First", "Last"},
			expectedTotal: "15.00",
			expectedFinal: "85.00",
		},
		{
			name: "stacked percentages never exceed the base",
			base: "100",
			discounts: []discount.Discount{
				builder.NewDiscountBuilder().WithName("A").WithPercentage("60").WithPriority(2).Combinable().Build(),
				builder.NewDiscountBuilder().WithName("B").WithPercentage("60").WithPriority(1).Combinable().Build(),
			},
			expectedNames: []string{"A", "B"},
			expectedTotal: "84.00",
			expectedFinal: "16.00",
		},
		{
			name: "fixed amounts exhaust the base and later discounts contribute nothing",
			base: "100",
			discounts: []discount.Discount{
				builder.NewDiscountBuilder().WithName("A").WithFixedAmount("80").WithPriority(3).Combinable().Build(),
				builder.NewDiscountBuilder().WithName("B").WithFixedAmount("50").WithPriority(2).Combinable().Build(),
				builder.NewDiscountBuilder().WithName("C").WithPercentage("10").WithPriority(1).Combinable().Build(),
			},
			expectedNames: []string{"A", "B"},
			expectedTotal: "100.00",
			expectedFinal: "0.00",
		},
		{
			name: "equal priorities keep input order",
			base: "100",
			discounts: []discount.Discount{
				builder.NewDiscountBuilder().WithName("Second").WithFixedAmount("1").Combinable().Build(),
				builder.NewDiscountBuilder().WithName("First").WithFixedAmount("2").Combinable().Build(),
			},
			expectedNames: []string{"Second", "First"},
			expectedTotal: "3.00",
			expectedFinal: "97.00",
		},
		{
			name: "zero amount discount is not listed",
			base: "100",
			discounts: []discount.Discount{
				builder.NewDiscountBuilder().WithName("Nothing").WithPercentage("0").WithPriority(2).Build(),
				builder.NewDiscountBuilder().WithName("Exclusive").WithPercentage("20").WithPriority(1).Build(),
			},
			expectedNames: []string{"Exclusive"},
			expectedTotal: "20.00",
			expectedFinal: "80.00",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := discount.Combine(dec(tc.base), tc.discounts)

			require.NotNil(t, actual.Applied)
			assert.Equal(t, tc.expectedNames, appliedNames(actual))
			assert.Equal(t, tc.base, actual.OriginalAmount.String())
			assert.Equal(t, tc.expectedTotal, actual.TotalDiscount.StringFixed(2))
			assert.Equal(t, tc.expectedFinal, actual.FinalAmount.StringFixed(2))
			assert.True(t, actual.TotalDiscount.Add(actual.FinalAmount).Equal(actual.OriginalAmount),
				"total %s + final %s must equal original %s", actual.TotalDiscount, actual.FinalAmount, actual.OriginalAmount)
		})
	}
}

func TestCombine_AppliedCarriesDiscountDetails(t *testing.T) {
	id := uuid.New()
	d := builder.NewDiscountBuilder().WithID(id).WithName("Summer").WithPercentage("15").WithPriority(7).Build()

	actual := discount.Combine(dec("80"), []discount.Discount{d})

	require.Len(t, actual.Applied, 1)
	applied := actual.Applied[0]
	assert.Equal(t, id, applied.ID)
	assert.Equal(t, "Summer", applied.Name)
	assert.Equal(t, discount.TypePercentage, applied.Type)
	assert.True(t, applied.Value.Equal(dec("15")))
	assert.Equal(t, "12.00", applied.Amount.StringFixed(2))
	assert.Equal(t, 7, applied.Priority)
}

func TestSortByPriority(t *testing.T) {
	low := builder.NewDiscountBuilder().WithName("low").WithPriority(1).Build()
	high := builder.NewDiscountBuilder().WithName("high").WithPriority(9).Build()
	mid := builder.NewDiscountBuilder().WithName("mid").WithPriority(5).Build()
	input := []discount.Discount{low, high, mid}

	sorted := discount.SortByPriority(input)

	assert.Equal(t, []string{"high", "mid", "low"}, []string{sorted[0].Name, sorted[1].Name, sorted[2].Name})
	assert.Equal(t, []string{"low", "high", "mid"}, []string{input[0].Name, input[1].Name, input[2].Name}, "input must not be reordered")
}
