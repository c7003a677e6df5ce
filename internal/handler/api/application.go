package api

import (
	"net/http"

	reqdto "hotel-discounts/internal/handler/dto/request"
	resdto "hotel-discounts/internal/handler/dto/response"
	"hotel-discounts/internal/handler/httperr"
	"hotel-discounts/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	cmds commands.ApplicationCommands
}

func NewApplicationHandler(cmds commands.ApplicationCommands) *ApplicationHandler {
	return &ApplicationHandler{cmds: cmds}
}

// @Summary Record discount application
// @Description Record that a discount was used on a reservation or a bill. Fails with 409 once the usage limit is reached.
// @Tags discount-applications
// @Accept json
// @Produce json
// @Param request body reqdto.RecordApplicationRequest true "Application"
// @Success 201 {object} resdto.ApplicationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/discount-applications [post]
func (h *ApplicationHandler) Record(c *gin.Context) {
	var req reqdto.RecordApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	app, err := h.cmds.Record(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.Abort(c, err, "Record application failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromApplication(app))
}

// @Summary Remove discount application
// @Tags discount-applications
// @Param id path string true "Application ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/discount-applications/{id} [delete]
func (h *ApplicationHandler) Remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.Remove(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err, "Remove application failed")
		return
	}
	c.Status(http.StatusNoContent)
}
