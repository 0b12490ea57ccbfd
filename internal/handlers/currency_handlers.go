package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/convertly/convertly-api/internal/constants"
	"github.com/convertly/convertly-api/internal/types/api/params"
	"github.com/convertly/convertly-api/internal/types/api/requests"
	"github.com/convertly/convertly-api/internal/types/api/responses"
)

// CurrencyHandler serves the legacy currency converter routes
type CurrencyHandler struct {
	common *CommonServices
}

func NewCurrencyHandler(common *CommonServices) *CurrencyHandler {
	return &CurrencyHandler{common: common}
}

// ConvertCurrency godoc
// @Summary Convert currency
// @Description Converts an amount between two currencies. Currencies default to INR and USD.
// @Tags currency
// @Accept json
// @Produce json
// @Param request body requests.CurrencyConvertRequest true "Currency conversion request"
// @Success 200 {object} responses.CurrencyConvertResponse
// @Failure 400 {object} responses.CurrencyConvertResponse
// @Router /convert [post]
func (h *CurrencyHandler) ConvertCurrency(c *gin.Context) {
	var req requests.CurrencyConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.CurrencyConvertResponse{Success: false, Error: constants.InvalidRequestBody})
		return
	}

	amount, ok := req.Amount.Float()
	if !ok {
		c.JSON(http.StatusBadRequest, responses.CurrencyConvertResponse{
			Success: false,
			Error:   "amount must be a number: " + req.Amount.Raw,
		})
		return
	}

	result, err := h.common.conversionService.ConvertCurrency(c.Request.Context(), params.CurrencyConversionParams{
		Amount:       amount,
		FromCurrency: req.FromCurrency,
		ToCurrency:   req.ToCurrency,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.CurrencyConvertResponse{Success: false, Error: err.Error()})
		return
	}

	sendSuccess(c, http.StatusOK, responses.CurrencyConvertResponse{
		Success:                  true,
		CurrencyConversionResult: result,
	})
}

// GetRates godoc
// @Summary Get exchange rates
// @Description Returns the current exchange rates and currency symbols
// @Tags currency
// @Produce json
// @Success 200 {object} responses.LegacyRatesResponse
// @Failure 503 {object} responses.ErrorResponse
// @Router /get-rates [get]
func (h *CurrencyHandler) GetRates(c *gin.Context) {
	table := h.common.conversionService.Rates(c.Request.Context())
	if table == nil {
		ratesUnavailable(c)
		return
	}
	sendSuccess(c, http.StatusOK, responses.LegacyRatesResponse{
		Rates:   table.Rates(),
		Symbols: table.Symbols(),
	})
}
