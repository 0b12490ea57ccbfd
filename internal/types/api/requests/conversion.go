package requests

// ConvertRequest is the body of POST /api/convert.
type ConvertRequest struct {
	Type     string         `json:"type" example:"length"`
	Value    FlexibleNumber `json:"value" swaggertype:"number" example:"5"`
	FromUnit string         `json:"from_unit" example:"meter"`
	ToUnit   string         `json:"to_unit" example:"centimeter"`
}

// BatchConvertRequest is the body of POST /api/convert/batch.
type BatchConvertRequest struct {
	Type     string           `json:"type" example:"currency"`
	Values   []FlexibleNumber `json:"values" swaggertype:"array,number"`
	FromUnit string           `json:"from_unit" example:"USD"`
	ToUnit   string           `json:"to_unit" example:"INR"`
}

// CurrencyConvertRequest is the body of the legacy POST /convert.
type CurrencyConvertRequest struct {
	Amount       FlexibleNumber `json:"amount" swaggertype:"number" example:"100"`
	FromCurrency string         `json:"from_currency" example:"INR"`
	ToCurrency   string         `json:"to_currency" example:"USD"`
}
