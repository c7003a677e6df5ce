//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/handler/api"
	resdto "hotel-discounts/internal/handler/dto/response"
	"hotel-discounts/internal/pkg/config"
	"hotel-discounts/internal/pkg/errs"
	"hotel-discounts/internal/usecase/commands"
	"hotel-discounts/internal/usecase/queries"
	"hotel-discounts/tests/common/builder"
	"hotel-discounts/tests/common/httptest"
	"hotel-discounts/tests/common/testutil"
	commandsmock "hotel-discounts/tests/mock/commands"
	queriesmock "hotel-discounts/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DiscountHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDiscountCommands
	mockQueries  *queriesmock.MockDiscountQueries
	handler      *api.DiscountHandler
}

func (s *DiscountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDiscountCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDiscountQueries(s.mockCtrl)
	s.handler = api.NewDiscountHandler(s.mockCommands, s.mockQueries, config.PricingConfig{CurrencySymbol: "$"})

	s.router.GET("/discounts", s.handler.List)
	s.router.POST("/discounts", s.handler.Create)
	s.router.GET("/discounts/:id", s.handler.Get)
	s.router.PUT("/discounts/:id", s.handler.Update)
	s.router.PATCH("/discounts/:id/enabled", s.handler.SetEnabled)
	s.router.DELETE("/discounts/:id", s.handler.Delete)
}

func (s *DiscountHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDiscountHandlerSuite(t *testing.T) {
	suite.Run(t, new(DiscountHandlerTestSuite))
}

type testCaseDiscount struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *DiscountHandlerTestSuite) TestCreate() {
	url := "/discounts"

	b := builder.NewDiscountBuilder().WithName("Summer Sale").WithPriority(3).Combinable()
	reqBody := b.BuildCreateRequestDTO()
	created := b.BuildPtr()

	bound := []testCaseDiscount{
		{name: "name length OK (255 chars)", mutate: testutil.Field("name", strings.Repeat("a", 255)), expectCode: http.StatusCreated},
		{name: "name length invalid (256 chars)", mutate: testutil.Field("name", strings.Repeat("a", 256)), expectCode: http.StatusBadRequest},
		{name: "minimum nights OK (0)", mutate: testutil.Field("minimum_nights", 0), expectCode: http.StatusCreated},
		{name: "minimum nights invalid (-1)", mutate: testutil.Field("minimum_nights", -1), expectCode: http.StatusBadRequest},
		{name: "maximum uses OK (1)", mutate: testutil.Field("maximum_uses", 1), expectCode: http.StatusCreated},
		{name: "maximum uses invalid (-1)", mutate: testutil.Field("maximum_uses", -1), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseDiscount{
		{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: discount_type (required)", mutate: testutil.Field("discount_type", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: applies_to (required)", mutate: testutil.Field("applies_to", nil), expectCode: http.StatusBadRequest},
	}

	malformed := []testCaseDiscount{
		{name: "valid_from not a date", mutate: testutil.Field("valid_from", "01/06/2025"), expectCode: http.StatusBadRequest},
		{name: "valid_to not a date", mutate: testutil.Field("valid_to", "2025-13-01"), expectCode: http.StatusBadRequest},
		{name: "value not a number", mutate: testutil.Field("value", "ten"), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseDiscount{bound, missing, malformed}

	s.Run("success: returns 201 Created with the stored discount", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.DiscountInput) (*discount.Discount, error) {
				s.Equal("Summer Sale", in.Name)
				s.Equal(discount.TypePercentage, in.Type)
				s.True(in.Value.Equal(b.Value))
				s.True(in.Enabled)
				s.True(in.CanCombine)
				s.Equal(3, in.Priority)
				return created, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.DiscountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(created.ID.String(), response.ID)
		s.Equal("Summer Sale", response.Name)
		s.Equal("10.00", response.Value)
		s.Equal("10% off", response.ValueLabel)
		s.Equal("standard", response.Category)
	})

	s.Run("success: enabled defaults to true when omitted", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.DiscountInput) (*discount.Discount, error) {
				s.True(in.Enabled)
				return created, nil
			}).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("enabled", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
							Return(created, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid discount",
				commandsError:  errs.Mark(errs.New("percentage above 100"), discount.ErrInvalidDiscount),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Validation failed",
			},
			{
				name:           "duplicate promo code",
				commandsError:  errs.ErrDuplicatePromoCode,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Promo code already in use",
			},
			{
				name:           "database failure",
				commandsError:  errs.ErrDatabaseOperationFailed,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Create discount failed",
			},
			{
				name:           "unexpected error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Create discount failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *DiscountHandlerTestSuite) TestGet() {
	d := builder.NewDiscountBuilder().AsPromoCode("WELCOME10", "10").BuildPtr()
	url := "/discounts/" + d.ID.String()

	s.Run("success: returns 200 OK with DiscountResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), d.ID).Return(d, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.DiscountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(d.ID.String(), response.ID)
		s.Equal("promo_code", response.DiscountType)
		s.Equal("code", response.Category)
		s.Require().NotNil(response.PromoCode)
		s.Equal("WELCOME10", *response.PromoCode)
		s.Equal("$10.00 off", response.ValueLabel)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/discounts/invalid-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing discount", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), d.ID).
			Return(nil, errs.ErrDiscountNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Discount not found")
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), d.ID).
			Return(nil, errs.ErrDatabaseOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load discount")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *DiscountHandlerTestSuite) TestList() {
	discounts := []discount.Discount{
		builder.NewDiscountBuilder().WithName("High").WithPriority(10).Build(),
		builder.NewDiscountBuilder().WithName("Low").WithPriority(1).Build(),
	}

	s.Run("success: returns every discount without filters", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.DiscountFilter{}).Return(discounts, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/discounts", nil)

		var response []resdto.DiscountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("High", response[0].Name)
		s.Equal("Low", response[1].Name)
	})

	s.Run("success: passes type and enabled filters through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.DiscountFilter) ([]discount.Discount, error) {
				s.Require().NotNil(f.Type)
				s.Equal(discount.TypeSeasonal, *f.Type)
				s.Require().NotNil(f.Enabled)
				s.False(*f.Enabled)
				return []discount.Discount{}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/discounts?type=seasonal&enabled=false", nil)

		var response []resdto.DiscountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 Bad Request for unknown type", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/discounts?type=bogus", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})

	s.Run("error: 400 Bad Request for non-boolean enabled", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/discounts?enabled=maybe", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *DiscountHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/discounts/" + id.String()
	updated := builder.NewDiscountBuilder().WithID(id).WithName("Renamed").BuildPtr()

	s.Run("success: only supplied fields reach the patch", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, p commands.DiscountPatch) (*discount.Discount, error) {
				s.Require().NotNil(p.Name)
				s.Equal("Renamed", *p.Name)
				s.Require().NotNil(p.Type)
				s.Equal(discount.TypeFixedAmount, *p.Type)
				s.Nil(p.Value)
				s.Nil(p.Priority)
				s.Nil(p.ApplicableRoomTypes)
				return updated, nil
			}).Times(1)

		body := map[string]any{"name": "Renamed", "discount_type": "fixed_amount"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body)

		var response resdto.DiscountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Renamed", response.Name)
	})

	s.Run("error: 400 Bad Request for malformed date", func() {
		body := map[string]any{"valid_to": "tomorrow"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "not found", commandsError: errs.ErrDiscountNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Discount not found"},
			{name: "duplicate promo code", commandsError: errs.ErrDuplicatePromoCode, expectedStatus: http.StatusConflict, expectedMsg: "Promo code already in use"},
			{name: "invalid result", commandsError: discount.ErrInvalidDiscount, expectedStatus: http.StatusBadRequest, expectedMsg: "Validation failed"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"priority": 2})
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestSetEnabled
// ================================================================================

func (s *DiscountHandlerTestSuite) TestSetEnabled() {
	id := uuid.New()
	url := "/discounts/" + id.String() + "/enabled"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().SetEnabled(gomock.Any(), id, false).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"enabled": false})
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request when enabled is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 Not Found for missing discount", func() {
		s.mockCommands.EXPECT().SetEnabled(gomock.Any(), id, true).Return(errs.ErrDiscountNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"enabled": true})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Discount not found")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *DiscountHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/discounts/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/discounts/nope", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "not found", commandsError: errs.ErrDiscountNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Discount not found"},
			{name: "has applications", commandsError: errs.ErrDiscountInUse, expectedStatus: http.StatusConflict, expectedMsg: "Discount has recorded applications"},
			{name: "database failure", commandsError: errs.ErrDatabaseOperationFailed, expectedStatus: http.StatusInternalServerError, expectedMsg: "Delete discount failed"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
