package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capstone-ideas/ideagen-backend/config"
	"github.com/capstone-ideas/ideagen-backend/internal/idea_generation/domain"
)

func TestOpenAIClient_Generate(t *testing.T) {
	var got chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			t.Errorf("unexpected Authorization header: %s", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}

		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"**Title**: StudyMesh"}}]}`))
	}))
	defer server.Close()

	client := NewOpenAIClient("sk-test", "gpt-test", server.URL, nil)

	out, err := client.Generate(context.Background(), "instruction")
	require.NoError(t, err)
	assert.Equal(t, "**Title**: StudyMesh", out)

	assert.Equal(t, "gpt-test", got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "instruction", got.Messages[0].Content)
}

func TestOpenAIClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	}))
	defer server.Close()

	client := NewOpenAIClient("bad", "", server.URL, nil)

	_, err := client.Generate(context.Background(), "x")
	require.Error(t, err)

	var pe *domain.ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, http.StatusUnauthorized, pe.StatusCode)
	assert.False(t, pe.Retryable)
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}

func TestOpenAIClient_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	_, err := NewOpenAIClient("k", "", server.URL, nil).Generate(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrEmptyCompletion)
}

func TestNew_SelectsProvider(t *testing.T) {
	p, err := New(config.ProviderConfig{Name: config.ProviderGemini, APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "gemini", p.Name())

	p, err = New(config.ProviderConfig{Name: config.ProviderOpenAI, APIKey: "k", Model: "gpt-x"})
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())
	assert.Equal(t, "gpt-x", p.Model())

	_, err = New(config.ProviderConfig{Name: "palm"})
	assert.Error(t, err)
}
