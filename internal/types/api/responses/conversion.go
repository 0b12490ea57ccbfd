package responses

import "time"

// ConvertResponse is returned by POST /api/convert. On failure only Success
// and Error are set.
type ConvertResponse struct {
	Success bool     `json:"success"`
	Result  *float64 `json:"result,omitempty" example:"500"`
	Formula string   `json:"formula,omitempty" example:"5 meter × 100 = 500 centimeter"`
	Error   string   `json:"error,omitempty"`
}

// BatchConvertItem is one entry of a batch conversion.
type BatchConvertItem struct {
	Value   interface{} `json:"value" swaggertype:"number"`
	Success bool        `json:"success"`
	Result  *float64    `json:"result,omitempty"`
	Formula string      `json:"formula,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// BatchConvertResponse is returned by POST /api/convert/batch.
type BatchConvertResponse struct {
	Success bool               `json:"success"`
	Results []BatchConvertItem `json:"results,omitempty"`
	Error   string             `json:"error,omitempty"`
}

// CurrencyConversionResult is the outcome of a legacy currency conversion.
type CurrencyConversionResult struct {
	ConvertedAmount float64 `json:"converted_amount" example:"1.2"`
	FromSymbol      string  `json:"from_symbol" example:"₹"`
	ToSymbol        string  `json:"to_symbol" example:"$"`
	Rate            float64 `json:"rate" example:"0.012"`
	Amount          float64 `json:"amount" example:"100"`
	FromCurrency    string  `json:"from_currency" example:"INR"`
	ToCurrency      string  `json:"to_currency" example:"USD"`
}

// CurrencyConvertResponse is returned by POST /convert.
type CurrencyConvertResponse struct {
	Success bool `json:"success"`
	*CurrencyConversionResult
	Error string `json:"error,omitempty"`
}

// LegacyRatesResponse is returned by GET /get-rates.
type LegacyRatesResponse struct {
	Rates   map[string]float64 `json:"rates"`
	Symbols map[string]string  `json:"symbols"`
}

// RateTableResponse describes the current rate snapshot.
type RateTableResponse struct {
	Base      string             `json:"base" example:"INR"`
	Rates     map[string]float64 `json:"rates"`
	Symbols   map[string]string  `json:"symbols"`
	Source    string             `json:"source" example:"provider"`
	FetchedAt *time.Time         `json:"fetched_at,omitempty"`
	Version   uint64             `json:"version" example:"3"`
}

// UnitInfo describes one unit.
type UnitInfo struct {
	ID      string   `json:"id" example:"meter"`
	Symbol  string   `json:"symbol" example:"m"`
	Aliases []string `json:"aliases,omitempty"`
}

// UnitDomain lists the units of one conversion type.
type UnitDomain struct {
	Type  string     `json:"type" example:"length"`
	Units []UnitInfo `json:"units"`
}

// UnitsResponse is returned by GET /api/units.
type UnitsResponse struct {
	Domains []UnitDomain `json:"domains"`
}
