package ideaform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/capstone-ideas/ideagen-backend/internal/idea_generation/domain"
)

// Generator performs one generation call.
type Generator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (string, error)
}

// EndpointClient calls the generation endpoint over HTTP.
type EndpointClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewEndpointClient creates a client for the API rooted at baseURL
// (e.g. "http://localhost:8080/api"). A nil httpClient uses http.DefaultClient,
// which has no timeout.
func NewEndpointClient(baseURL string, httpClient *http.Client) *EndpointClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &EndpointClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Generate posts req to <baseURL>/generate and returns the "output" field.
// Any status other than 200 is an error, as is a body without an output string.
func (c *EndpointClient) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call generation endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp domain.ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			return "", fmt.Errorf("generation endpoint returned status %d: %s", resp.StatusCode, errResp.Error)
		}
		return "", fmt.Errorf("generation endpoint returned status %d", resp.StatusCode)
	}

	var result struct {
		Output *string `json:"output"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if result.Output == nil {
		return "", fmt.Errorf("response has no output")
	}

	return *result.Output, nil
}
