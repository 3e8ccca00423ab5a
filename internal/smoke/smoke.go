// Package smoke checks a running mock server by calling every resource route
// under one prefix and verifying the success envelope.
package smoke

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"tutormock/internal/http/handler"
)

var (
	errMissingStatus = errors.New("missing status field")
	errNotSuccess    = errors.New("success is not true")
	errMissingData   = errors.New("missing data")
)

// Result is the outcome of one request.
type Result struct {
	Method string
	Path   string
	Status int
	Err    error
}

// OK reports whether the route answered with a success envelope.
func (r Result) OK() bool { return r.Err == nil }

// Client calls the mock API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client whose transport is traced with otelhttp.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
	}
}

// Run calls /health and every resource route under prefix.
func (c *Client) Run(ctx context.Context, prefix string) []Result {
	results := []Result{c.check(ctx, http.MethodGet, "/health", false)}
	for _, r := range handler.ResourceRoutes(nil) {
		results = append(results, c.check(ctx, r.Method, prefix+r.Path, true))
	}
	return results
}

func (c *Client) check(ctx context.Context, method, path string, enveloped bool) Result {
	res := Result{Method: method, Path: path}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		res.Err = err
		return res
	}
	resp, err := c.http.Do(req)
	if err != nil {
		res.Err = fmt.Errorf("request failed: %w", err)
		return res
	}
	defer resp.Body.Close()
	res.Status = resp.StatusCode

	if resp.StatusCode != http.StatusOK {
		res.Err = fmt.Errorf("unexpected status %d", resp.StatusCode)
		return res
	}

	var body struct {
		Success *bool           `json:"success"`
		Status  string          `json:"status"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		res.Err = fmt.Errorf("decode body: %w", err)
		return res
	}

	switch {
	case !enveloped && body.Status == "":
		res.Err = errMissingStatus
	case enveloped && (body.Success == nil || !*body.Success):
		res.Err = errNotSuccess
	case enveloped && (len(body.Data) == 0 || string(body.Data) == "null"):
		res.Err = errMissingData
	}
	return res
}
