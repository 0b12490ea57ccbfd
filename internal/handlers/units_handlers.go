package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/convertly/convertly-api/internal/types/api/responses"
)

type UnitsHandler struct {
	common *CommonServices
}

func NewUnitsHandler(common *CommonServices) *UnitsHandler {
	return &UnitsHandler{common: common}
}

// ListUnits godoc
// @Summary List units
// @Description Lists the supported units, optionally filtered by conversion type
// @Tags conversion
// @Produce json
// @Param type query string false "Conversion type (currency, temperature, length, weight)"
// @Success 200 {object} responses.UnitsResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /api/units [get]
func (h *UnitsHandler) ListUnits(c *gin.Context) {
	domains, err := h.common.conversionService.Units(c.Request.Context(), c.Query("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: err.Error()})
		return
	}
	sendSuccess(c, http.StatusOK, responses.UnitsResponse{Domains: domains})
}
