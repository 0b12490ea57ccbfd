package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/convertly/convertly-api/internal/constants"
)

// RatesHandler exposes the rate table and manual refresh
type RatesHandler struct {
	common *CommonServices
}

func NewRatesHandler(common *CommonServices) *RatesHandler {
	return &RatesHandler{common: common}
}

// GetRateTable godoc
// @Summary Get the rate table
// @Description Returns the current rate snapshot with its source and version
// @Tags rates
// @Produce json
// @Success 200 {object} responses.RateTableResponse
// @Failure 503 {object} responses.ErrorResponse
// @Router /api/rates [get]
func (h *RatesHandler) GetRateTable(c *gin.Context) {
	table := h.common.conversionService.Rates(c.Request.Context())
	if table == nil {
		ratesUnavailable(c)
		return
	}
	sendSuccess(c, http.StatusOK, toRateTableResponse(table))
}

// RefreshRates godoc
// @Summary Refresh exchange rates
// @Description Fetches rates from the provider now. When the provider fails a fallback table stays installed and 502 is returned.
// @Tags rates
// @Produce json
// @Success 200 {object} responses.RateTableResponse
// @Failure 502 {object} responses.ErrorResponse
// @Router /api/rates/refresh [post]
func (h *RatesHandler) RefreshRates(c *gin.Context) {
	table, err := h.common.exchangeRateService.Refresh(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusBadGateway, constants.RateRefreshFailed, err)
		return
	}
	if table == nil {
		ratesUnavailable(c)
		return
	}
	sendSuccess(c, http.StatusOK, toRateTableResponse(table))
}
