package exchangerate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/convertly/convertly-api/internal/client/httpclient"
	"github.com/convertly/convertly-api/internal/logger"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.exchangerate-api.com"
	defaultTimeout = 10 * time.Second
)

// Client fetches latest exchange rates from an exchangerate-api compatible
// provider.
type Client struct {
	apiKey     string
	httpClient *httpclient.HTTPClient
	baseURL    string
}

// NewClient creates a provider client. An empty baseURL uses DefaultBaseURL;
// an empty apiKey sends unauthenticated requests.
func NewClient(baseURL, apiKey string, options ...httpclient.ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	opts := append([]httpclient.ClientOption{
		httpclient.WithBaseURL(baseURL),
		httpclient.WithTimeout(defaultTimeout),
	}, options...)

	return &Client{
		apiKey:     apiKey,
		httpClient: httpclient.NewHTTPClient(opts...),
		baseURL:    baseURL,
	}
}

// LatestRatesResponse is the provider payload for /v4/latest/{BASE}.
type LatestRatesResponse struct {
	Provider        string             `json:"provider,omitempty"`
	Base            string             `json:"base"`
	Date            string             `json:"date,omitempty"`
	TimeLastUpdated int64              `json:"time_last_updated,omitempty"`
	Rates           map[string]float64 `json:"rates"`
}

// UpdatedAt is the provider's last update time, or the zero time if unknown.
func (r *LatestRatesResponse) UpdatedAt() time.Time {
	if r.TimeLastUpdated <= 0 {
		return time.Time{}
	}
	return time.Unix(r.TimeLastUpdated, 0).UTC()
}

type errorResponse struct {
	Result    string `json:"result"`
	ErrorType string `json:"error-type"`
}

// Error is returned when the provider rejects a request or returns an
// unusable payload.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("exchange rate API error: status %d, message: %s", e.StatusCode, e.Message)
}

// GetLatestRates fetches the latest rates relative to base.
func (c *Client) GetLatestRates(ctx context.Context, base string) (*LatestRatesResponse, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		return nil, fmt.Errorf("base currency cannot be empty")
	}

	var requestOptions []httpclient.RequestOption
	if c.apiKey != "" {
		requestOptions = append(requestOptions, httpclient.WithBearerToken(c.apiKey))
	}

	resp, err := c.httpClient.Get(ctx, "/v4/latest/"+base, requestOptions...)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			if resp != nil {
				_ = resp.Body.Close()
			}
			msg := httpErr.Body
			if msg == "" {
				msg = httpErr.Status
			}
			return nil, &Error{StatusCode: httpErr.StatusCode, Message: msg}
		}
		logger.Error("Exchange rate API request failed", zap.String("base", base), zap.Error(err))
		return nil, fmt.Errorf("failed to get latest rates: %w", err)
	}

	var payload struct {
		LatestRatesResponse
		errorResponse
	}
	if err := c.httpClient.ProcessJSONResponse(resp, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse latest rates: %w", err)
	}

	if payload.Result == "error" {
		return nil, &Error{StatusCode: http.StatusOK, Message: payload.ErrorType}
	}
	if len(payload.Rates) == 0 {
		return nil, &Error{StatusCode: http.StatusOK, Message: "response contained no rates"}
	}

	out := payload.LatestRatesResponse
	if out.Base == "" {
		out.Base = base
	}
	return &out, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}
