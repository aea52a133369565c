package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"codeberg.org/visualmath/server/internal/animation"
)

const generatePath = "/api/generateAnimation"

// runs the pipeline through the gateway; implements pipeline.Runner
type GatewayClient struct {
	endpoint   string
	httpClient *http.Client
}

// creates a gateway client. No request timeout: a render can take minutes
func NewGatewayClient(endpoint string) *GatewayClient {
	return &GatewayClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

// REST API request/response types

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	VideoURL string `json:"videoUrl"`
	Code     string `json:"code"`
}

type gatewayErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// sends the prompt to the gateway. The gateway runs both calls, so onCode
// fires once the whole response is in
func (c *GatewayClient) Run(ctx context.Context, prompt string, onCode func(code string)) (*animation.Result, error) {
	payload, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return nil, animation.NewUnexpectedError("", fmt.Errorf("failed to marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+generatePath, bytes.NewReader(payload))
	if err != nil {
		return nil, animation.NewUnexpectedError("", fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, animation.NewUnexpectedError("", fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, animation.NewUnexpectedError("", fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, gatewayError(resp.StatusCode, body)
	}

	var result generateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, animation.NewUnexpectedError("", fmt.Errorf("failed to parse response: %w", err))
	}

	if result.Code != "" && onCode != nil {
		onCode(result.Code)
	}

	return &animation.Result{
		VideoURL: result.VideoURL,
		Code:     result.Code,
	}, nil
}

// rebuilds the typed pipeline error from a gateway error body
func gatewayError(status int, body []byte) error {
	cause := fmt.Errorf("gateway returned status %d", status)

	var errResp gatewayErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == "" {
		return animation.NewUnexpectedError("", fmt.Errorf("%w: %s", cause, strings.TrimSpace(string(body))))
	}

	if errResp.Details != "" {
		cause = fmt.Errorf("%w: %s", cause, errResp.Details)
	}

	switch animation.Kind(errResp.Code) {
	case animation.KindGeneration:
		return animation.NewGenerationError(errResp.Error, cause)
	case animation.KindRender:
		return animation.NewRenderError(errResp.Error, cause)
	default:
		return animation.NewUnexpectedError(errResp.Error, cause)
	}
}
