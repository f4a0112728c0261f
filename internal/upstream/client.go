// Package upstream implements the REST client for the core backend API.
// Every call forwards the viewer's bearer token verbatim; the backend is the
// sole authority on authentication and authorization. Failed calls are never
// retried here (reads and writes alike surface the first error).
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/config"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
)

var (
	callsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fdim_upstream_calls_total",
			Help: "Total calls to the upstream backend API.",
		},
		[]string{"endpoint", "status"},
	)
	callDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fdim_upstream_call_duration_seconds",
			Help:    "Duration of upstream backend API calls in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

// envelope is the upstream response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *envelopeError  `json:"error"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Client is the base HTTP client shared by all upstream API groups.
type Client struct {
	baseURL      string
	http         *http.Client
	uploadHTTP   *http.Client
	maxUploadLen int64
}

// NewClient creates a Client from upstream config.
func NewClient(cfg *config.UpstreamConfig) *Client {
	return &Client{
		baseURL:      cfg.BaseURL,
		http:         &http.Client{Timeout: cfg.Timeout},
		uploadHTTP:   &http.Client{Timeout: cfg.UploadTimeout},
		maxUploadLen: cfg.MaxUploadMB * 1024 * 1024,
	}
}

// NewClientWithEndpoint creates a Client pointing at a custom base URL with
// default timeouts (for tests against httptest servers).
func NewClientWithEndpoint(baseURL string) *Client {
	return NewClient(&config.UpstreamConfig{
		BaseURL:       baseURL,
		Timeout:       10 * time.Second,
		UploadTimeout: 30 * time.Second,
		MaxUploadMB:   50,
	})
}

// Ping checks that the upstream backend is reachable. Used by the
// readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "", http.MethodGet, "/health", "health", nil, nil)
}

// do performs one JSON round trip. endpoint is the metrics label (a fixed
// string, never the raw path). When out is non-nil the envelope's data field
// is unmarshaled into it.
func (c *Client) do(ctx context.Context, token, method, path, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.roundTrip(c.http, req, endpoint, out)
}

// roundTrip executes the request, records metrics, and decodes the envelope.
func (c *Client) roundTrip(client *http.Client, req *http.Request, endpoint string, out interface{}) error {
	start := time.Now()
	resp, err := client.Do(req)
	callDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		callsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%s: %w", endpoint, domain.ErrUpstreamTimeout)
		}
		return fmt.Errorf("%s: %w: %v", endpoint, domain.ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	callsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: reading response: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapStatus(endpoint, resp.StatusCode, respBody)
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		if out == nil {
			// Bodiless or non-envelope 2xx (e.g. the health endpoint).
			return nil
		}
		return fmt.Errorf("%s: decoding envelope: %w", endpoint, err)
	}

	// A 2xx can still carry a failed envelope; never treat it as success.
	if env.Error != nil || (out != nil && !env.Success) {
		msg := ""
		if env.Error != nil {
			msg = env.Error.Message
		}
		if msg == "" {
			return fmt.Errorf("%s: %w: server reported failure", endpoint, domain.ErrUpstream)
		}
		return fmt.Errorf("%s: %w: %s", endpoint, domain.ErrUpstream, msg)
	}

	if out == nil {
		return nil
	}
	if len(env.Data) == 0 {
		return fmt.Errorf("%s: %w: empty data in response", endpoint, domain.ErrUpstream)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s: decoding data: %w", endpoint, err)
	}
	return nil
}

// mapStatus translates an upstream error status into a domain sentinel,
// keeping the server's message in the wrap for toasts.
func mapStatus(endpoint string, status int, body []byte) error {
	msg := serverMessage(body)

	var sentinel error
	switch status {
	case http.StatusUnauthorized:
		sentinel = domain.ErrUnauthorized
	case http.StatusForbidden:
		sentinel = domain.ErrForbidden
	case http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		sentinel = domain.ErrInvalidInput
	case http.StatusRequestEntityTooLarge:
		sentinel = domain.ErrFileTooLarge
	default:
		sentinel = domain.ErrUpstream
	}

	if msg == "" {
		return fmt.Errorf("%s: status %d: %w", endpoint, status, sentinel)
	}
	return fmt.Errorf("%s: status %d: %w: %s", endpoint, status, sentinel, msg)
}

// serverMessage extracts the upstream error message if the body is an
// envelope; otherwise returns empty.
func serverMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil || env.Error == nil {
		return ""
	}
	return env.Error.Message
}
