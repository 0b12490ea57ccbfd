package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/convertly/convertly-api/internal/types/api/responses"
)

type HealthHandler struct {
	common *CommonServices
}

func NewHealthHandler(common *CommonServices) *HealthHandler {
	return &HealthHandler{common: common}
}

// Health godoc
// @Summary      Health check
// @Description  Checks if the server is running and whether a rate table is loaded
// @Tags         health
// @Produce      json
// @Success      200  {object}  responses.HealthResponse   "Returns health status"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	table := h.common.exchangeRateService.Current()
	c.JSON(http.StatusOK, responses.HealthResponse{
		Status:      "ok",
		RatesLoaded: table != nil,
		RateVersion: table.Version(),
	})
}
