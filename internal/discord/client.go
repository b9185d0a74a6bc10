package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/WarekiBot_Go/internal/conversion"
	"github.com/osse101/WarekiBot_Go/pkg/wareki"
)

// Retry defaults for calls to the API
const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 500 * time.Millisecond
	DefaultTimeout    = 10 * time.Second
)

// Converter is what slash commands need from the conversion API.
type Converter interface {
	Convert(ctx context.Context, code string) (conversion.Result, error)
	EraCode(ctx context.Context, year int, digits bool) (conversion.EraCode, error)
}

// APIError is a non-2xx response from the API.
type APIError struct {
	Status  int
	Kind    wareki.ErrorKind
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return "API error: " + e.Message
	}
	return fmt.Sprintf("API returned status: %d", e.Status)
}

// APIClient handles communication with the Wareki API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: DefaultTimeout,
		},
		APIKey:     apiKey,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// doRequest performs an HTTP request, retrying transport failures and 5xx
// responses with exponential backoff.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		if reqBody, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(rand.Int64N(int64(c.RetryDelay)/5 + 1))
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < 500 {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// getJSON issues a GET and decodes a 200 body into out.
func (c *APIClient) getJSON(ctx context.Context, path string, out interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var errResp struct {
		ErrorKind wareki.ErrorKind `json:"error_kind"`
		Error     string           `json:"error"`
	}
	apiErr := &APIError{Status: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
		apiErr.Kind = errResp.ErrorKind
		apiErr.Message = errResp.Error
	}
	return apiErr
}

// Convert converts one era code. Input typed in Discord is often full-width,
// so the API is asked to normalize it.
func (c *APIClient) Convert(ctx context.Context, code string) (conversion.Result, error) {
	params := url.Values{}
	params.Set("lenient", "true")

	var res conversion.Result
	path := fmt.Sprintf("/api/v1/convert/%s?%s", url.PathEscape(code), params.Encode())
	if err := c.getJSON(ctx, path, &res); err != nil {
		return conversion.Result{}, err
	}
	return res, nil
}

// EraCode looks up the era code for a Gregorian year.
func (c *APIClient) EraCode(ctx context.Context, year int, digits bool) (conversion.EraCode, error) {
	params := url.Values{}
	if digits {
		params.Set("style", "digit")
	}

	path := "/api/v1/reverse/" + strconv.Itoa(year)
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var res conversion.EraCode
	if err := c.getJSON(ctx, path, &res); err != nil {
		return conversion.EraCode{}, err
	}
	return res, nil
}

// Healthy reports whether the API answers its liveness probe.
func (c *APIClient) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/healthz", nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// IsConversionError reports whether err is the API rejecting the input
// rather than failing.
func IsConversionError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind != ""
}
