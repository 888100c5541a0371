package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Server        ServerConfig
	Provider      ProviderConfig
	Client        ClientConfig
	Generation    GenerationConfig
	Observability ObservabilityConfig
	App           AppConfig
}

type ServerConfig struct {
	Port               string
	CORSAllowedOrigins []string
}

// ProviderConfig selects and configures the generative-text provider.
// An empty APIKey is allowed; every provider call then fails and the
// endpoint answers with the generic 500.
type ProviderConfig struct {
	Name    string
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration // 0 disables the client timeout
}

type ClientConfig struct {
	// APIURL is the base URL form clients use to reach the generation endpoint.
	APIURL string
}

type GenerationConfig struct {
	EnforceSelectionBounds bool
}

type ObservabilityConfig struct {
	MetricsEnabled    bool
	TracingEnabled    bool
	TracingEndpoint   string
	TracingSampleRate float64
}

type AppConfig struct {
	Name        string
	Environment string
	LogLevel    string
	LogFormat   string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	providerName := strings.ToLower(strings.TrimSpace(v.GetString("LLM_PROVIDER")))
	port := v.GetString("PORT")

	cfg := &Config{
		Server: ServerConfig{
			Port:               port,
			CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Provider: ProviderConfig{
			Name:    providerName,
			APIKey:  apiKeyFor(v, providerName),
			Model:   v.GetString("LLM_MODEL"),
			BaseURL: v.GetString("LLM_BASE_URL"),
			Timeout: v.GetDuration("LLM_TIMEOUT"),
		},
		Client: ClientConfig{
			APIURL: apiURLFor(v, port),
		},
		Generation: GenerationConfig{
			EnforceSelectionBounds: v.GetBool("ENFORCE_SELECTION_BOUNDS"),
		},
		Observability: ObservabilityConfig{
			MetricsEnabled:    v.GetBool("METRICS_ENABLED"),
			TracingEnabled:    v.GetBool("TRACING_ENABLED"),
			TracingEndpoint:   v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
			TracingSampleRate: v.GetFloat64("TRACING_SAMPLE_RATE"),
		},
		App: AppConfig{
			Name:        v.GetString("APP_NAME"),
			Environment: v.GetString("APP_ENV"),
			LogLevel:    v.GetString("LOG_LEVEL"),
			LogFormat:   v.GetString("LOG_FORMAT"),
			Version:     v.GetString("APP_VERSION"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Provider.Name {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("LLM_PROVIDER must be %q or %q, got %q", ProviderGemini, ProviderOpenAI, c.Provider.Name)
	}

	if c.Provider.Timeout < 0 {
		return fmt.Errorf("LLM_TIMEOUT must not be negative")
	}

	if c.Client.APIURL == "" {
		return fmt.Errorf("IDEAGEN_API_URL is required")
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("LLM_PROVIDER", ProviderGemini)
	v.SetDefault("LLM_TIMEOUT", "0s")

	v.SetDefault("ENFORCE_SELECTION_BOUNDS", false)

	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317")
	v.SetDefault("TRACING_SAMPLE_RATE", 1.0)

	v.SetDefault("APP_NAME", "ideagen-backend")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_VERSION", "1.0.0")
}

func apiKeyFor(v *viper.Viper, provider string) string {
	switch provider {
	case ProviderOpenAI:
		return v.GetString("OPENAI_API_KEY")
	default:
		return v.GetString("GEMINI_API_KEY")
	}
}

// apiURLFor defaults the form clients' API base URL to this server's own port.
func apiURLFor(v *viper.Viper, port string) string {
	if raw := strings.TrimSpace(v.GetString("IDEAGEN_API_URL")); raw != "" {
		return strings.TrimRight(raw, "/")
	}
	return "http://localhost:" + port + "/api"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
