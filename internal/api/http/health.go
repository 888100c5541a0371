package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status             string    `json:"status"`
	Timestamp          time.Time `json:"timestamp"`
	Service            string    `json:"service"`
	Version            string    `json:"version"`
	Provider           string    `json:"provider"`
	Model              string    `json:"model"`
	ProviderConfigured bool      `json:"provider_configured"`
}

// ProviderInfo describes the generative provider without exposing its key.
type ProviderInfo struct {
	Name       string
	Model      string
	Configured bool
}

type HealthHandler struct {
	serviceName string
	version     string
	provider    ProviderInfo
}

func NewHealthHandler(serviceName, version string, provider ProviderInfo) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		provider:    provider,
	}
}

// HealthCheck reports liveness. A missing provider key does not make the
// service unhealthy; generation requests then fail with 500.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:             "healthy",
		Timestamp:          time.Now().UTC(),
		Service:            h.serviceName,
		Version:            h.version,
		Provider:           h.provider.Name,
		Model:              h.provider.Model,
		ProviderConfigured: h.provider.Configured,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
