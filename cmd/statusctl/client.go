package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/RuneStatus_Go/internal/domain"
	"github.com/osse101/RuneStatus_Go/internal/handler"
)

const requestTimeout = 10 * time.Second

// apiClient talks to the RuneStatus HTTP API
type apiClient struct {
	baseURL    string
	httpClient *http.Client
}

func newAPIClient(baseURL string) *apiClient {
	return &apiClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Status fetches the current player view
func (c *apiClient) Status(ctx context.Context) (domain.PlayerView, error) {
	var view domain.PlayerView

	resp, err := c.do(ctx, http.MethodGet, "/status", nil)
	if err != nil {
		return view, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		return view, fmt.Errorf("decode status: %w", err)
	}
	return view, nil
}

// Send posts a raw update body for kind
func (c *apiClient) Send(ctx context.Context, kind domain.EventKind, body []byte) error {
	resp, err := c.do(ctx, http.MethodPost, handler.UpdatePath(kind), body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// do performs a request and turns any non-2xx status into an error
func (c *apiClient) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return resp, nil
}
