//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/handler/api"
	resdto "hotel-discounts/internal/handler/dto/response"
	"hotel-discounts/internal/pkg/config"
	"hotel-discounts/internal/pkg/errs"
	"hotel-discounts/internal/usecase/queries"
	"hotel-discounts/tests/common/builder"
	"hotel-discounts/tests/common/httptest"
	"hotel-discounts/tests/common/testutil"
	queriesmock "hotel-discounts/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockPricingQueries
	handler     *api.PricingHandler
}

func (s *PricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.handler = api.NewPricingHandler(s.mockQueries, config.PricingConfig{CurrencySymbol: "$"})

	s.router.POST("/pricing/quote", s.handler.Quote)
	s.router.POST("/pricing/promo-codes/validate", s.handler.ValidatePromoCode)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *PricingHandlerTestSuite) TestQuote() {
	url := "/pricing/quote"

	reqBody := map[string]any{
		"amount":         "1000",
		"check_in_date":  "2025-07-01",
		"check_out_date": "2025-07-08",
	}

	memberID := uuid.New()
	quote := &queries.Quote{
		OriginalAmount: decimal.NewFromInt(1000),
		TotalDiscount:  decimal.NewFromInt(100),
		FinalAmount:    decimal.NewFromInt(900),
		Nights:         7,
		Lines: []queries.QuoteLine{
			{
				AppliedDiscount: discount.AppliedDiscount{
					ID:       memberID,
					Name:     "Member",
					Type:     discount.TypePercentage,
					Value:    decimal.NewFromInt(10),
					Amount:   decimal.NewFromInt(100),
					Priority: 1,
				},
				Label:    "10% off",
				Category: discount.CategoryStandard,
			},
		},
	}

	s.Run("success: returns 200 OK with the breakdown", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in queries.QuoteInput) (*queries.Quote, error) {
				s.True(in.Amount.Equal(decimal.NewFromInt(1000)))
				s.Equal(7, in.Stay.Nights())
				s.Equal(builder.Date(2025, 7, 1), in.Stay.CheckIn())
				s.Nil(in.RoomTypeID)
				s.Nil(in.PromoCode)
				s.Nil(in.AppliesTo)
				return quote, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("1000.00", response.OriginalAmount)
		s.Equal("100.00", response.TotalDiscount)
		s.Equal("900.00", response.FinalAmount)
		s.Equal(7, response.Nights)
		s.Require().Len(response.AppliedDiscounts, 1)
		line := response.AppliedDiscounts[0]
		s.Equal(memberID.String(), line.ID)
		s.Equal("10% off", line.Label)
		s.Equal("standard", line.Category)
		s.Equal("100.00", line.Amount)
	})

	s.Run("success: optional context reaches the query", func() {
		roomType := uuid.New()
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in queries.QuoteInput) (*queries.Quote, error) {
				s.Require().NotNil(in.RoomTypeID)
				s.Equal(roomType, *in.RoomTypeID)
				s.Require().NotNil(in.PromoCode)
				s.Equal("welcome10", *in.PromoCode)
				s.Require().NotNil(in.AppliesTo)
				s.Equal(discount.AppliesToRoomRates, *in.AppliesTo)
				return &queries.Quote{Nights: 7}, nil
			}).Times(1)

		body := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("room_type_id", roomType.String()),
			testutil.Field("promo_code", "welcome10"),
			testutil.Field("applies_to", "room_rates"),
		)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.AppliedDiscounts)
	})

	s.Run("error: 400 Bad Request on invalid input", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "negative amount", mutate: testutil.Field("amount", "-1")},
			{name: "missing check_in_date", mutate: testutil.Field("check_in_date", nil)},
			{name: "malformed check_out_date", mutate: testutil.Field("check_out_date", "07/08/2025")},
			{name: "check-out before check-in", mutate: testutil.Field("check_out_date", "2025-06-30")},
			{name: "check-out equals check-in", mutate: testutil.Field("check_out_date", "2025-07-01")},
			{name: "unknown bucket", mutate: testutil.Field("applies_to", "minibar")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
			})
		}
	})

	s.Run("error: 500 when discounts cannot be loaded", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDatabaseOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Quote failed")
	})
}

// ================================================================================
// TestValidatePromoCode
// ================================================================================

func (s *PricingHandlerTestSuite) TestValidatePromoCode() {
	url := "/pricing/promo-codes/validate"

	s.Run("success: valid code carries the discount", func() {
		d := builder.NewDiscountBuilder().AsPromoCode("WELCOME10", "10").BuildPtr()
		s.mockQueries.EXPECT().ValidatePromoCode(gomock.Any(), "welcome10").
			Return(discount.PromoValidation{Valid: true, Discount: d}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": "welcome10"})

		var response resdto.PromoCodeValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Valid)
		s.Empty(response.Reason)
		s.Require().NotNil(response.Discount)
		s.Equal(d.ID.String(), response.Discount.ID)
	})

	s.Run("success: unknown code is reported, not failed", func() {
		s.mockQueries.EXPECT().ValidatePromoCode(gomock.Any(), "NOPE").
			Return(discount.PromoValidation{Reason: discount.ReasonNotFound}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": "NOPE"})

		var response resdto.PromoCodeValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Valid)
		s.Equal(discount.ReasonNotFound, response.Reason)
		s.Nil(response.Discount)
	})

	s.Run("error: 400 Bad Request when code is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
