package responses

// ErrorResponse is returned by non-conversion endpoints on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by /health and /healthz.
type HealthResponse struct {
	Status      string `json:"status"`
	RatesLoaded bool   `json:"rates_loaded"`
	RateVersion uint64 `json:"rate_version"`
}
