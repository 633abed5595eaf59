package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/prasetya/kumpul/internal/pkg/logger"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 10 * time.Second
	// APIKeyHeader is the header name for service-to-service authentication
	APIKeyHeader = "X-API-Key"
)

// Client is an HTTP client for calling collaborator services, authenticated
// with a shared API key.
type Client struct {
	client  *nethttp.Client
	baseURL string
	apiKey  string
	service string
}

// NewClient creates a client for one collaborator service.
func NewClient(serviceName, baseURL, apiKey string) *Client {
	return &Client{
		client: &nethttp.Client{
			Timeout: DefaultTimeout,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
		service: serviceName,
	}
}

// SetTimeout sets the HTTP client timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// GetJSON performs a GET request and decodes the JSON response into result.
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	resp, err := c.doRequest(ctx, nethttp.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == nethttp.StatusNotFound {
		return ErrStatusNotFound
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

// PostJSON performs a POST request with a JSON body and decodes the JSON
// response into result when it is non-nil.
func (c *Client) PostJSON(ctx context.Context, endpoint string, body, result interface{}) error {
	resp, err := c.doRequest(ctx, nethttp.MethodPost, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

// ErrStatusNotFound reports a 404 from the collaborator, distinguishable from
// transport failures.
var ErrStatusNotFound = fmt.Errorf("HTTP error: 404 Not Found")

func (c *Client) doRequest(ctx context.Context, method, endpoint string, body interface{}) (*nethttp.Response, error) {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error("HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.String("service", c.service),
			logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}

	logger.Debug("HTTP request completed",
		logger.String("method", method),
		logger.String("url", url),
		logger.String("service", c.service),
		logger.Int("status_code", resp.StatusCode))

	return resp, nil
}
