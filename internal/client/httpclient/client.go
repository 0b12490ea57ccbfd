package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/convertly/convertly-api/internal/logger"
)

// RequestOption modifies an outgoing request.
type RequestOption func(*http.Request)

// ClientOption configures an HTTPClient.
type ClientOption func(*HTTPClient)

// Middleware wraps the client's transport.
type Middleware func(http.RoundTripper) http.RoundTripper

// HTTPError is returned for responses with status >= 400.
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
	Method     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d %s: %s", e.Method, e.URL, e.StatusCode, e.Status, e.Body)
}

// HTTPClient is a JSON HTTP client with retries and a metrics hook.
type HTTPClient struct {
	httpClient     *http.Client
	baseURL        string
	defaultHeaders map[string]string
	retryConfig    *RetryConfig
	middlewares    []Middleware
	metrics        MetricsCollector
}

// RetryConfig configures exponential backoff between attempts.
type RetryConfig struct {
	MaxRetries           int
	InitialInterval      time.Duration
	MaxInterval          time.Duration
	Multiplier           float64
	MaxElapsedTime       time.Duration
	RetryableStatusCodes []int
}

// MetricsCollector receives one observation per logical request (retries included).
type MetricsCollector interface {
	RecordRequestDuration(method, path string, statusCode int, duration time.Duration)
	RecordRequestCount(method, path string, statusCode int)
	RecordRequestError(method, path string)
}

// DefaultRetryConfig retries transient failures three times.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:           3,
		InitialInterval:      100 * time.Millisecond,
		MaxInterval:          5 * time.Second,
		Multiplier:           2.0,
		MaxElapsedTime:       20 * time.Second,
		RetryableStatusCodes: []int{408, 429, 500, 502, 503, 504},
	}
}

// NewHTTPClient creates a client with the given options applied.
func NewHTTPClient(options ...ClientOption) *HTTPClient {
	client := &HTTPClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		defaultHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
		retryConfig: DefaultRetryConfig(),
		metrics:     &NoopMetricsCollector{},
	}

	for _, option := range options {
		option(client)
	}

	if len(client.middlewares) > 0 {
		transport := client.httpClient.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		// first middleware is outermost
		for i := len(client.middlewares) - 1; i >= 0; i-- {
			transport = client.middlewares[i](transport)
		}
		client.httpClient.Transport = transport
	}

	return client
}

func WithBaseURL(baseURL string) ClientOption {
	return func(c *HTTPClient) {
		c.baseURL = baseURL
	}
}

func WithDefaultHeader(key, value string) ClientOption {
	return func(c *HTTPClient) {
		c.defaultHeaders[key] = value
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetryConfig replaces the retry policy. A nil config disables retries.
func WithRetryConfig(config *RetryConfig) ClientOption {
	return func(c *HTTPClient) {
		c.retryConfig = config
	}
}

// WithTransport sets the base transport that middlewares wrap.
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *HTTPClient) {
		c.httpClient.Transport = rt
	}
}

func WithMiddleware(middleware Middleware) ClientOption {
	return func(c *HTTPClient) {
		c.middlewares = append(c.middlewares, middleware)
	}
}

func WithMetricsCollector(collector MetricsCollector) ClientOption {
	return func(c *HTTPClient) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

func WithQueryParam(key, value string) RequestOption {
	return func(req *http.Request) {
		q := req.URL.Query()
		q.Add(key, value)
		req.URL.RawQuery = q.Encode()
	}
}

func WithBearerToken(token string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// Get performs an HTTP GET request.
func (c *HTTPClient) Get(ctx context.Context, path string, options ...RequestOption) (*http.Response, error) {
	return c.DoRequest(ctx, http.MethodGet, path, nil, options...)
}

// Post performs an HTTP POST request with a JSON body.
func (c *HTTPClient) Post(ctx context.Context, path string, body interface{}, options ...RequestOption) (*http.Response, error) {
	return c.DoRequest(ctx, http.MethodPost, path, body, options...)
}

// GetJSON performs a GET and decodes a successful JSON response into target.
func (c *HTTPClient) GetJSON(ctx context.Context, path string, target interface{}, options ...RequestOption) error {
	resp, err := c.Get(ctx, path, options...)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}
		return err
	}
	return c.ProcessJSONResponse(resp, target)
}

func (c *HTTPClient) resolveURL(path string) (string, error) {
	if c.baseURL == "" {
		if _, err := url.ParseRequestURI(path); err != nil {
			return "", fmt.Errorf("invalid path used without base URL: %s, error: %w", path, err)
		}
		return path, nil
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimSuffix(c.baseURL, "/") + path, nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, fullURL string, body []byte, options []RequestOption) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range c.defaultHeaders {
		req.Header.Set(key, value)
	}
	for _, option := range options {
		option(req)
	}
	return req, nil
}

func (c *HTTPClient) retryable(status int) bool {
	for _, code := range c.retryConfig.RetryableStatusCodes {
		if status == code {
			return true
		}
	}
	return false
}

// DoRequest performs a request, retrying transient failures. A fresh request
// is built for every attempt so bodies are replayed. On status >= 400 the
// response is returned alongside an *HTTPError with its body still readable.
func (c *HTTPClient) DoRequest(ctx context.Context, method, path string, body interface{}, options ...RequestOption) (*http.Response, error) {
	start := time.Now()

	fullURL, err := c.resolveURL(path)
	if err != nil {
		return nil, err
	}

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	var resp *http.Response
	attempt := func() error {
		req, err := c.newRequest(ctx, method, fullURL, payload, options)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err = c.httpClient.Do(req)
		if err != nil {
			return err
		}
		if c.retryConfig != nil && c.retryable(resp.StatusCode) {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			return fmt.Errorf("retryable status code: %d", resp.StatusCode)
		}
		return nil
	}

	var requestErr error
	if c.retryConfig != nil && c.retryConfig.MaxRetries > 0 {
		expBackoff := backoff.NewExponentialBackOff()
		expBackoff.InitialInterval = c.retryConfig.InitialInterval
		expBackoff.MaxInterval = c.retryConfig.MaxInterval
		expBackoff.Multiplier = c.retryConfig.Multiplier
		expBackoff.MaxElapsedTime = c.retryConfig.MaxElapsedTime

		policy := backoff.WithContext(backoff.WithMaxRetries(expBackoff, uint64(c.retryConfig.MaxRetries)), ctx)
		requestErr = backoff.Retry(attempt, policy)
	} else {
		requestErr = attempt()
	}

	duration := time.Since(start)
	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	c.metrics.RecordRequestDuration(method, path, statusCode, duration)
	c.metrics.RecordRequestCount(method, path, statusCode)

	if requestErr != nil {
		c.metrics.RecordRequestError(method, path)
		logger.Error("HTTP request failed",
			zap.String("method", method),
			zap.String("url", fullURL),
			zap.Error(requestErr),
			zap.Duration("duration", duration))
		return nil, fmt.Errorf("http request failed: %w", requestErr)
	}

	if resp.StatusCode >= 400 {
		c.metrics.RecordRequestError(method, path)

		bodyBytes, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		logger.Warn("HTTP error response",
			zap.String("method", method),
			zap.String("url", fullURL),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(bodyBytes)),
			zap.Duration("duration", duration))

		return resp, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        fullURL,
			Method:     method,
			Body:       string(bodyBytes),
		}
	}

	logger.Debug("HTTP request successful",
		zap.String("method", method),
		zap.String("url", fullURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))

	return resp, nil
}

// ProcessJSONResponse decodes a JSON response into target and closes the body.
func (c *HTTPClient) ProcessJSONResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        resp.Request.URL.String(),
			Method:     resp.Request.Method,
			Body:       string(bodyBytes),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

func (c *HTTPClient) GetBaseURL() string {
	return c.baseURL
}

// NoopMetricsCollector discards all observations.
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
}
func (n *NoopMetricsCollector) RecordRequestCount(method, path string, statusCode int) {}
func (n *NoopMetricsCollector) RecordRequestError(method, path string)                 {}

// LoggingMiddleware logs every round trip at debug level, including retries.
func LoggingMiddleware() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return &loggingRoundTripper{next: next}
	}
}

type loggingRoundTripper struct {
	next http.RoundTripper
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	logger.Debug("HTTP request started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()))

	resp, err := l.next.RoundTrip(req)

	duration := time.Since(start)
	if err != nil {
		logger.Debug("HTTP round trip failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Error(err),
			zap.Duration("duration", duration))
		return resp, err
	}

	logger.Debug("HTTP response received",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))

	return resp, nil
}
