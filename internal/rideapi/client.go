// README: HTTP client for the remote ride service (estimate, confirm, history).
package rideapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"rideapp/internal/logger"
)

// ErrNetwork wraps every transport failure: DNS, refused connections, timeouts and cancellation.
var ErrNetwork = errors.New("ride api unreachable")

// API is the surface the ride repository depends on.
type API interface {
	RideEstimate(ctx context.Context, req EstimateRequest) (*Response[RideEstimate], error)
	ConfirmRide(ctx context.Context, req ConfirmRideRequest) (*Response[ConfirmRideResponse], error)
	RideHistory(ctx context.Context, customerID string, driverID int) (*Response[RideHistoryResponse], error)
}

// Response is a completed round trip. Body is nil when the server sent no decodable payload.
type Response[T any] struct {
	StatusCode int
	Body       *T
	Error      *ErrorResponse
}

func (r *Response[T]) Successful() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type Client struct {
	baseURL string
	http    *http.Client
	log     logger.Logger
}

type ClientOption func(*Client)

// WithHTTPClient replaces the default client, e.g. with an httptest server's.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

func NewClient(baseURL string, timeout time.Duration, log logger.Logger, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) RideEstimate(ctx context.Context, req EstimateRequest) (*Response[RideEstimate], error) {
	return do[RideEstimate](ctx, c, http.MethodPost, "/ride/estimate", req)
}

func (c *Client) ConfirmRide(ctx context.Context, req ConfirmRideRequest) (*Response[ConfirmRideResponse], error) {
	return do[ConfirmRideResponse](ctx, c, http.MethodPatch, "/ride/confirm", req)
}

func (c *Client) RideHistory(ctx context.Context, customerID string, driverID int) (*Response[RideHistoryResponse], error) {
	path := "/ride/" + url.PathEscape(customerID) + "?driver_id=" + strconv.Itoa(driverID)
	return do[RideHistoryResponse](ctx, c, http.MethodGet, path, nil)
}

func do[T any](ctx context.Context, c *Client, method, path string, body any) (*Response[T], error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		c.log.Debug("ride api request", "method", method, "path", path, "body", string(data))
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		// caller gave up; not a connectivity problem
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s %s: %w", method, path, ctxErr)
		}
		return nil, fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("reading response: %w", ctxErr)
		}
		return nil, fmt.Errorf("%w: reading response: %v", ErrNetwork, err)
	}
	c.log.Debug("ride api response",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"latency_ms", time.Since(start).Milliseconds(),
		"body", string(data),
	)

	out := &Response[T]{StatusCode: resp.StatusCode}
	if out.Successful() {
		out.Body = decode[T](data)
		if out.Body == nil && len(bytes.TrimSpace(data)) > 0 {
			c.log.Warn("ride api response body not decodable", "path", path, "status", resp.StatusCode)
		}
		return out, nil
	}
	if e := decode[ErrorResponse](data); e != nil && (e.ErrorCode != "" || e.ErrorDescription != "") {
		out.Error = e
	}
	return out, nil
}

func decode[T any](data []byte) *T {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	return &v
}
