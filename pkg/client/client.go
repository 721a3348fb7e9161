// Package client provides the HTTP transport for the Steam Web API: request
// execution, JSON decoding, and error classification.
package client

import (
	"context"
	"encoding/json"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for Steam Web API requests.
var (
	steamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "steam_requests_total",
		Help: "Total Steam Web API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	steamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "steam_request_duration_seconds",
		Help:    "Steam Web API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	steamErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "steam_errors_total",
		Help: "Total Steam Web API errors by kind",
	}, []string{"kind"})
)

// Request describes one Steam Web API call. Query is serialized onto URL as
// an encoded query string.
type Request struct {
	Method string
	URL    string
	Query  url.Values
}

// Config holds the client configuration.
type Config struct {
	// APIKey is the Steam Web API key placed in the key query parameter by
	// endpoints that require it.
	APIKey string

	// UserAgent sent with every request.
	UserAgent string

	// Timeout per request. Zero means the default of 30 seconds.
	Timeout time.Duration

	// HTTPClient overrides the underlying HTTP client (for testing).
	HTTPClient *http.Client
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:    apiKey,
		UserAgent: "steam-api-helpers/1.0",
		Timeout:   30 * time.Second,
	}
}

// Client executes Steam Web API requests and decodes their JSON responses.
// It performs no retries and no caching; a failing request surfaces to the
// caller as a transport error.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     zerolog.Logger
}

// New creates a new Steam Web API client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, NewError(KindInvalidArgument, "api key is required")
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultConfig("").UserAgent
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		httpClient: httpClient,
		config:     cfg,
		logger:     log.With().Str("component", "steam-client").Logger(),
	}, nil
}

// Key returns the configured Steam Web API key.
func (c *Client) Key() string {
	return c.config.APIKey
}

// FetchJSON executes req and decodes the JSON response body into dest.
// Numbers are decoded as json.Number so identifier fields keep their exact
// textual form. Network errors, non-200 statuses, non-JSON content types,
// and parse failures are all reported as transport errors.
func (c *Client) FetchJSON(ctx context.Context, req Request, dest any) error {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	rawURL := req.URL
	if len(req.Query) > 0 {
		rawURL += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return WrapTransport(err, "create request")
	}
	endpoint := httpReq.URL.Path

	startTime := time.Now()
	defer func() {
		steamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	httpReq.Header.Set("User-Agent", c.config.UserAgent)
	httpReq.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("method", method).
		Msg("Executing Steam API request")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("HTTP request failed")
		steamErrorsTotal.WithLabelValues(string(KindTransport)).Inc()
		steamRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return WrapTransport(err, "request %s", endpoint)
	}
	defer resp.Body.Close()

	steamRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Msg("Steam API request error")
		steamErrorsTotal.WithLabelValues(string(KindTransport)).Inc()
		return &APIError{
			Kind:       KindTransport,
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	if !isJSONContentType(resp.Header.Get("Content-Type")) {
		c.logger.Warn().
			Str("endpoint", endpoint).
			Str("content_type", resp.Header.Get("Content-Type")).
			Msg("Unexpected response content type")
		steamErrorsTotal.WithLabelValues(string(KindTransport)).Inc()
		return NewError(KindTransport, "unexpected content type %q", resp.Header.Get("Content-Type"))
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(dest); err != nil {
		steamErrorsTotal.WithLabelValues(string(KindTransport)).Inc()
		return WrapTransport(err, "decode %s response", endpoint)
	}

	return nil
}

// isJSONContentType reports whether a Content-Type header denotes JSON.
// Steam serves both application/json and text/json depending on endpoint.
func isJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "/json") ||
		strings.HasSuffix(mediaType, "+json")
}
