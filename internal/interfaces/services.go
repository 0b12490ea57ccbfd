package interfaces

import (
	"context"

	"github.com/convertly/convertly-api/internal/conversion"
	"github.com/convertly/convertly-api/internal/rates"
	"github.com/convertly/convertly-api/internal/types/api/params"
	"github.com/convertly/convertly-api/internal/types/api/responses"
)

// ConversionService converts values against the current rate snapshot.
type ConversionService interface {
	Convert(ctx context.Context, params params.ConvertParams) conversion.Result
	ConvertMany(ctx context.Context, params params.ConvertBatchParams) []conversion.Result
	ConvertCurrency(ctx context.Context, params params.CurrencyConversionParams) (*responses.CurrencyConversionResult, error)
	Rates(ctx context.Context) *rates.Table
	Units(ctx context.Context, domain string) ([]responses.UnitDomain, error)
}

// ExchangeRateService maintains the current rate snapshot.
type ExchangeRateService interface {
	Refresh(ctx context.Context) (*rates.Table, error)
	Current() *rates.Table
}
