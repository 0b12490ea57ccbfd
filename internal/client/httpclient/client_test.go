package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCollector struct {
	mu       sync.Mutex
	counts   []int
	errors   int
	observed int
}

func (r *recordingCollector) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observed++
}

func (r *recordingCollector) RecordRequestCount(method, path string, statusCode int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts = append(r.counts, statusCode)
}

func (r *recordingCollector) RecordRequestError(method, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors++
}

func fastRetries() *RetryConfig {
	cfg := DefaultRetryConfig()
	cfg.InitialInterval = time.Millisecond
	cfg.MaxInterval = 5 * time.Millisecond
	return cfg
}

func TestGetJSON_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/latest/INR", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "yes", r.URL.Query().Get("fresh"))
		_ = json.NewEncoder(w).Encode(map[string]string{"base": "INR"})
	}))
	defer server.Close()

	collector := &recordingCollector{}
	client := NewHTTPClient(
		WithBaseURL(server.URL+"/"),
		WithMetricsCollector(collector),
		WithMiddleware(LoggingMiddleware()),
	)

	var out map[string]string
	err := client.GetJSON(context.Background(), "v4/latest/INR", &out,
		WithBearerToken("secret"), WithQueryParam("fresh", "yes"))
	require.NoError(t, err)
	assert.Equal(t, "INR", out["base"])
	assert.Equal(t, []int{200}, collector.counts)
	assert.Zero(t, collector.errors)
}

func TestDoRequest_RetriesTransientStatus(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"n":1}`, string(body))
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewHTTPClient(WithBaseURL(server.URL), WithRetryConfig(fastRetries()))
	resp, err := client.Post(context.Background(), "/events", map[string]int{"n": 1})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDoRequest_GivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	collector := &recordingCollector{}
	client := NewHTTPClient(WithBaseURL(server.URL), WithRetryConfig(fastRetries()), WithMetricsCollector(collector))
	resp, err := client.Get(context.Background(), "/rates")
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retryable status code: 502")
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
	assert.Equal(t, 1, collector.errors)
}

func TestDoRequest_ClientErrorIsNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"unknown base"}`))
	}))
	defer server.Close()

	client := NewHTTPClient(WithBaseURL(server.URL), WithRetryConfig(fastRetries()))
	resp, err := client.Get(context.Background(), "/v4/latest/XXX")
	require.Error(t, err)
	require.NotNil(t, resp)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, `{"error":"unknown base"}`, httpErr.Body)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, httpErr.Body, string(body))
}

func TestDoRequest_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewHTTPClient(WithBaseURL(server.URL))
	_, err := client.Get(ctx, "/rates")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDoRequest_InvalidPathWithoutBaseURL(t *testing.T) {
	client := NewHTTPClient(WithRetryConfig(nil))
	_, err := client.Get(context.Background(), "not a url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid path used without base URL")
}

func TestGetJSON_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewHTTPClient(WithBaseURL(server.URL))
	var out map[string]interface{}
	err := client.GetJSON(context.Background(), "/", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response body")
}
