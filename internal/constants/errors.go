package constants

// Error messages used throughout the API handlers
const (
	InvalidRequestBody  = "Invalid request body"
	RatesUnavailable    = "exchange rates are not loaded"
	RateRefreshFailed   = "Failed to refresh exchange rates"
	EmptyBatch          = "values must contain at least one entry"
	BatchTooLarge       = "too many values in a single batch"
	TooManyRequests     = "Too many requests. Please try again later."
	DefaultFromCurrency = INRCurrency
	DefaultToCurrency   = USDCurrency
)

// MaxBatchSize caps the number of values accepted by the batch endpoint.
const MaxBatchSize = 1000
