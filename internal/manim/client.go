package manim

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	codeGenerationPath = "/code/generation"
	videoRenderingPath = "/video/rendering"

	// cap on how much of an error body is kept for logs
	maxErrorBody = 4 << 10
)

// shared HTTP client for the generation service.
// no overall timeout: rendering routinely takes minutes and callers bound it with their context
var defaultHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// talks to the external code generation + video rendering service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = defaultHTTPClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// asks the service to turn a prompt into scene source code
func (c *Client) GenerateCode(ctx context.Context, req CodeRequest) (*CodeResponse, error) {
	var resp CodeResponse

	if err := c.post(ctx, codeGenerationPath, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// asks the service to render scene source code into a video
func (c *Client) RenderVideo(ctx context.Context, req RenderRequest) (*RenderResponse, error) {
	var resp RenderResponse

	if err := c.post(ctx, videoRenderingPath, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)) //nolint:errcheck
		return &StatusError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(errBody)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Endpoint: path, Err: err}
	}

	return nil
}
