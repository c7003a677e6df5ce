//go:build unit

package discount_test

import (
	"testing"
	"time"

	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/pkg/ptr"
	"hotel-discounts/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	from := builder.Date(2025, time.July, 1)
	to := builder.Date(2025, time.July, 31)

	testCases := []struct {
		name     string
		discount discount.Discount
		asOf     time.Time
		expected bool
	}{
		{
			name:     "enabled without bounds",
			discount: builder.NewDiscountBuilder().Build(),
			asOf:     builder.Date(2030, time.January, 1),
			expected: true,
		},
		{
			name:     "disabled",
			discount: builder.NewDiscountBuilder().Disabled().Build(),
			asOf:     builder.Date(2025, time.July, 10),
			expected: false,
		},
		{
			name:     "before valid_from",
			discount: builder.NewDiscountBuilder().WithValidity(&from, &to).Build(),
			asOf:     builder.Date(2025, time.June, 30),
			expected: false,
		},
		{
			name:     "on valid_from",
			discount: builder.NewDiscountBuilder().WithValidity(&from, &to).Build(),
			asOf:     from,
			expected: true,
		},
		{
			name:     "on valid_to late in the day",
			discount: builder.NewDiscountBuilder().WithValidity(&from, &to).Build(),
			asOf:     time.Date(2025, time.July, 31, 23, 59, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "after valid_to",
			discount: builder.NewDiscountBuilder().WithValidity(&from, &to).Build(),
			asOf:     builder.Date(2025, time.August, 1),
			expected: false,
		},
		{
			name:     "open-ended start",
			discount: builder.NewDiscountBuilder().WithValidity(nil, &to).Build(),
			asOf:     builder.Date(2020, time.January, 1),
			expected: true,
		},
		{
			name:     "usage limit not reached",
			discount: builder.NewDiscountBuilder().WithMaxUses(3, 2).Build(),
			asOf:     from,
			expected: true,
		},
		{
			name:     "usage limit reached",
			discount: builder.NewDiscountBuilder().WithMaxUses(3, 3).Build(),
			asOf:     from,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, discount.IsValid(tc.discount, tc.asOf))
		})
	}
}

func TestFilterApplicable(t *testing.T) {
	checkIn := builder.Date(2025, time.July, 10)
	suite := uuid.New()
	standard := uuid.New()

	bookingFor := func(nights int, roomType *uuid.UUID, code *string) discount.BookingContext {
		return discount.BookingContext{
			CheckIn:    checkIn,
			CheckOut:   checkIn.AddDate(0, 0, nights),
			RoomTypeID: roomType,
			Nights:     nights,
			PromoCode:  code,
		}
	}

	general := builder.NewDiscountBuilder().WithName("general").Build()
	longStay := builder.NewDiscountBuilder().WithName("long-stay").AsLongStay("15", 7).Build()
	suiteOnly := builder.NewDiscountBuilder().WithName("suite-only").WithRoomTypes(suite).Build()
	promo := builder.NewDiscountBuilder().WithName("promo").AsPromoCode("WELCOME10", "10").Build()
	expired := builder.NewDiscountBuilder().WithName("expired").
		WithValidity(nil, ptr.Of(builder.Date(2025, time.July, 9))).Build()

	disabled := builder.NewDiscountBuilder().WithName("disabled").Disabled().Build()
	pausedPromo := builder.NewDiscountBuilder().WithName("paused-promo").AsPromoCode("PAUSED10", "10").Disabled().Build()
	expiredPromo := builder.NewDiscountBuilder().WithName("expired-promo").AsPromoCode("OLD10", "10").
		WithValidity(nil, ptr.Of(builder.Date(2025, time.July, 9))).Build()
	usedUpPromo := builder.NewDiscountBuilder().WithName("used-up-promo").AsPromoCode("USED10", "10").
		WithMaxUses(5, 5).Build()

	all := []discount.Discount{general, longStay, suiteOnly, promo, expired, disabled, pausedPromo, expiredPromo, usedUpPromo}

	testCases := []struct {
		name     string
		ctx      discount.BookingContext
		expected []string
	}{
		{
			name:     "short stay without room type or code",
			ctx:      bookingFor(2, nil, nil),
			expected: []string{"general", "suite-only"},
		},
		{
			name:     "minimum nights met",
			ctx:      bookingFor(7, nil, nil),
			expected: []string{"general", "long-stay", "suite-only"},
		},
		{
			name:     "room type outside restriction",
			ctx:      bookingFor(2, &standard, nil),
			expected: []string{"general"},
		},
		{
			name:     "room type inside restriction",
			ctx:      bookingFor(2, &suite, nil),
			expected: []string{"general", "suite-only"},
		},
		{
			name:     "matching promo code selects only the coded discount",
			ctx:      bookingFor(2, nil, ptr.Of("WELCOME10")),
			expected: []string{"promo"},
		},
		{
			name:     "disabled discount never passes, even with nights and room type matching",
			ctx:      bookingFor(14, &suite, nil),
			expected: []string{"general", "long-stay", "suite-only"},
		},
		{
			name:     "matching code on a disabled discount selects nothing",
			ctx:      bookingFor(2, nil, ptr.Of("PAUSED10")),
			expected: []string{},
		},
		{
			name:     "matching code on an expired discount selects nothing",
			ctx:      bookingFor(2, nil, ptr.Of("OLD10")),
			expected: []string{},
		},
		{
			name:     "matching code on an exhausted discount selects nothing",
			ctx:      bookingFor(2, nil, ptr.Of("USED10")),
			expected: []string{},
		},
		{
			name:     "unknown promo code selects nothing",
			ctx:      bookingFor(2, nil, ptr.Of("NOPE")),
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := discount.FilterApplicable(all, tc.ctx)

			names := make([]string, 0, len(actual))
			for _, d := range actual {
				names = append(names, d.Name)
			}
			assert.Equal(t, tc.expected, names)
		})
	}

	t.Run("input is not modified", func(t *testing.T) {
		before := len(all)
		_ = discount.FilterApplicable(all, bookingFor(1, nil, nil))
		assert.Len(t, all, before)
		assert.Equal(t, "general", all[0].Name)
	})
}
