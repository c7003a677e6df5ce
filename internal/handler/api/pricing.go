package api

import (
	"net/http"

	reqdto "hotel-discounts/internal/handler/dto/request"
	resdto "hotel-discounts/internal/handler/dto/response"
	"hotel-discounts/internal/handler/httperr"
	"hotel-discounts/internal/pkg/config"
	"hotel-discounts/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	q              queries.PricingQueries
	currencySymbol string
}

func NewPricingHandler(q queries.PricingQueries, cfg config.PricingConfig) *PricingHandler {
	return &PricingHandler{q: q, currencySymbol: cfg.CurrencySymbol}
}

// @Summary Quote discounted price
// @Description Apply every eligible discount to an amount for a stay and return the breakdown
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /api/pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToDomain()
	if err != nil {
		httperr.Abort(c, err, "Quote failed")
		return
	}

	quote, err := h.q.Quote(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err, "Quote failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

// @Summary Validate promo code
// @Description An unknown or unusable code is reported with valid=false and a reason, not as an error status
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.ValidatePromoCodeRequest true "Promo code"
// @Success 200 {object} resdto.PromoCodeValidationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/pricing/promo-codes/validate [post]
func (h *PricingHandler) ValidatePromoCode(c *gin.Context) {
	var req reqdto.ValidatePromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.q.ValidatePromoCode(c.Request.Context(), req.Code)
	if err != nil {
		httperr.Abort(c, err, "Promo code validation failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromoValidation(result, h.currencySymbol))
}
