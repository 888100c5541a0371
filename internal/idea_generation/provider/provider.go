// Package provider talks to the external generative-text services.
package provider

import (
	"context"
	"fmt"
	"net/http"

	"github.com/capstone-ideas/ideagen-backend/config"
)

// Provider turns one free-text instruction into one free-text completion.
type Provider interface {
	Generate(ctx context.Context, instruction string) (string, error)
	Name() string
	Model() string
}

// New builds the provider selected by cfg.Name.
func New(cfg config.ProviderConfig) (Provider, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Name {
	case config.ProviderGemini:
		return NewGeminiClient(cfg.APIKey, cfg.Model, cfg.BaseURL, httpClient), nil
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL, httpClient), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Name)
	}
}
