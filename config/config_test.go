package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("IDEAGEN_API_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, ProviderGemini, cfg.Provider.Name)
	assert.Equal(t, "gemini-key", cfg.Provider.APIKey)
	assert.Equal(t, time.Duration(0), cfg.Provider.Timeout)
	assert.Equal(t, "http://localhost:8080/api", cfg.Client.APIURL)
	assert.False(t, cfg.Generation.EnforceSelectionBounds)
	assert.True(t, cfg.Observability.MetricsEnabled)
	assert.False(t, cfg.Observability.TracingEnabled)
	assert.Equal(t, "development", cfg.App.Environment)
}

func TestLoad_OpenAIProviderUsesOpenAIKey(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "openai-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("LLM_TIMEOUT", "45s")
	t.Setenv("IDEAGEN_API_URL", "https://ideas.example.com/api/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("ENFORCE_SELECTION_BOUNDS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.Provider.Name)
	assert.Equal(t, "openai-key", cfg.Provider.APIKey)
	assert.Equal(t, 45*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, "https://ideas.example.com/api", cfg.Client.APIURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.Generation.EnforceSelectionBounds)
}

func TestLoad_APIURLFollowsPort(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("IDEAGEN_API_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "http://localhost:9090/api", cfg.Client.APIURL)
}

func TestLoad_UnknownProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "palm")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM_PROVIDER")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080"},
			Provider: ProviderConfig{Name: ProviderGemini},
			Client:   ClientConfig{APIURL: "http://localhost:8080/api"},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Port = ""
		assert.EqualError(t, cfg.Validate(), "PORT is required")
	})

	t.Run("negative timeout", func(t *testing.T) {
		cfg := valid()
		cfg.Provider.Timeout = -time.Second
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing api url", func(t *testing.T) {
		cfg := valid()
		cfg.Client.APIURL = ""
		assert.EqualError(t, cfg.Validate(), "IDEAGEN_API_URL is required")
	})
}
