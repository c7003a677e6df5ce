package api

import (
	"net/http"

	reqdto "hotel-discounts/internal/handler/dto/request"
	resdto "hotel-discounts/internal/handler/dto/response"
	"hotel-discounts/internal/handler/httperr"
	"hotel-discounts/internal/pkg/config"
	"hotel-discounts/internal/usecase/commands"
	"hotel-discounts/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DiscountHandler struct {
	cmds           commands.DiscountCommands
	q              queries.DiscountQueries
	currencySymbol string
}

func NewDiscountHandler(cmds commands.DiscountCommands, q queries.DiscountQueries, cfg config.PricingConfig) *DiscountHandler {
	return &DiscountHandler{cmds: cmds, q: q, currencySymbol: cfg.CurrencySymbol}
}

// @Summary List discounts
// @Description List discounts ordered by priority (highest first), then name
// @Tags discounts
// @Produce json
// @Param type query string false "Discount type"
// @Param enabled query bool false "Only enabled or only disabled discounts"
// @Success 200 {array} resdto.DiscountResponse
// @Failure 400 {object} httperr.Response
// @Router /api/discounts [get]
func (h *DiscountHandler) List(c *gin.Context) {
	var query reqdto.ListDiscountsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.Abort(c, err, "Failed to list discounts")
		return
	}

	discounts, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err, "Failed to list discounts")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDiscounts(discounts, h.currencySymbol))
}

// @Summary Get discount
// @Tags discounts
// @Produce json
// @Param id path string true "Discount ID"
// @Success 200 {object} resdto.DiscountResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/discounts/{id} [get]
func (h *DiscountHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	d, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load discount")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDiscount(d, h.currencySymbol))
}

// @Summary Create discount
// @Tags discounts
// @Accept json
// @Produce json
// @Param request body reqdto.CreateDiscountRequest true "Create discount request"
// @Success 201 {object} resdto.DiscountResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/discounts [post]
func (h *DiscountHandler) Create(c *gin.Context) {
	var req reqdto.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToDomain()
	if err != nil {
		httperr.Abort(c, err, "Create discount failed")
		return
	}

	created, err := h.cmds.Create(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err, "Create discount failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDiscount(created, h.currencySymbol))
}

// @Summary Update discount
// @Description Partial update; omitted fields keep their stored value
// @Tags discounts
// @Accept json
// @Produce json
// @Param id path string true "Discount ID"
// @Param request body reqdto.UpdateDiscountRequest true "Update discount request"
// @Success 200 {object} resdto.DiscountResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/discounts/{id} [put]
func (h *DiscountHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	p, err := req.ToDomain()
	if err != nil {
		httperr.Abort(c, err, "Update discount failed")
		return
	}

	updated, err := h.cmds.Update(c.Request.Context(), id, p)
	if err != nil {
		httperr.Abort(c, err, "Update discount failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDiscount(updated, h.currencySymbol))
}

// @Summary Enable or disable discount
// @Tags discounts
// @Accept json
// @Param id path string true "Discount ID"
// @Param request body reqdto.SetDiscountEnabledRequest true "Enabled flag"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/discounts/{id}/enabled [patch]
func (h *DiscountHandler) SetEnabled(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.SetDiscountEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.SetEnabled(c.Request.Context(), id, *req.Enabled); err != nil {
		httperr.Abort(c, err, "Update discount failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete discount
// @Description Discounts with recorded applications cannot be deleted; disable them instead
// @Tags discounts
// @Param id path string true "Discount ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/discounts/{id} [delete]
func (h *DiscountHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err, "Delete discount failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
