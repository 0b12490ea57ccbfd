package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/convertly/convertly-api/internal/constants"
	"github.com/convertly/convertly-api/internal/interfaces"
	"github.com/convertly/convertly-api/internal/middleware"
	"github.com/convertly/convertly-api/internal/rates"
	"github.com/convertly/convertly-api/internal/types/api/responses"
)

// resultPlaces is the number of decimal places in /api/convert results.
const resultPlaces = 4

// CommonServices holds the dependencies shared across handlers
type CommonServices struct {
	conversionService   interfaces.ConversionService
	exchangeRateService interfaces.ExchangeRateService
}

// CommonServicesConfig is the input to NewCommonServices
type CommonServicesConfig struct {
	ConversionService   interfaces.ConversionService
	ExchangeRateService interfaces.ExchangeRateService
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(cfg CommonServicesConfig) *CommonServices {
	return &CommonServices{
		conversionService:   cfg.ConversionService,
		exchangeRateService: cfg.ExchangeRateService,
	}
}

// sendError is a helper function that combines logging and error response
// It logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	middleware.LogWithCorrelationID(c.Request.Context()).Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.JSON(statusCode, responses.ErrorResponse{Error: message})
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func toRateTableResponse(t *rates.Table) responses.RateTableResponse {
	resp := responses.RateTableResponse{
		Base:    t.Base(),
		Rates:   t.Rates(),
		Symbols: t.Symbols(),
		Source:  t.Source(),
		Version: t.Version(),
	}
	if fetchedAt := t.FetchedAt(); !fetchedAt.IsZero() {
		utc := fetchedAt.UTC()
		resp.FetchedAt = &utc
	}
	return resp
}

func ratesUnavailable(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, responses.ErrorResponse{Error: constants.RatesUnavailable})
}
