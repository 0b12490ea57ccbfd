package params

// ConvertParams is a single unit conversion.
type ConvertParams struct {
	Type     string
	Value    float64
	FromUnit string
	ToUnit   string
}

// ConvertBatchParams converts many values between the same pair of units.
type ConvertBatchParams struct {
	Type     string
	Values   []float64
	FromUnit string
	ToUnit   string
}

// CurrencyConversionParams is a legacy /convert request after defaults are
// applied.
type CurrencyConversionParams struct {
	Amount       float64
	FromCurrency string
	ToCurrency   string
}
