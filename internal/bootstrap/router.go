package bootstrap

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpapi "github.com/capstone-ideas/ideagen-backend/internal/api/http"
	"github.com/capstone-ideas/ideagen-backend/internal/api/http/middleware"
	ideaform "github.com/capstone-ideas/ideagen-backend/internal/idea_form"
	"github.com/capstone-ideas/ideagen-backend/internal/idea_form/web"
	genhttp "github.com/capstone-ideas/ideagen-backend/internal/idea_generation/http"
	"github.com/capstone-ideas/ideagen-backend/internal/idea_generation/service"
)

type RouterDeps struct {
	ServiceName        string
	Version            string
	CORSAllowedOrigins []string
	MetricsEnabled     bool
	TracingEnabled     bool
	EnforceBounds      bool

	Provider   httpapi.ProviderInfo
	Generation *service.GenerationService
	// FormGenerator is what the web form submits through, normally an
	// EndpointClient pointed at the API base URL.
	FormGenerator ideaform.Generator
}

func BuildRouter(dep RouterDeps) (*gin.Engine, error) {
	r := gin.New()
	r.Use(middleware.Recovery())
	if dep.TracingEnabled {
		r.Use(middleware.Trace(dep.ServiceName))
	}
	r.Use(middleware.RequestIDMiddleware())
	if dep.MetricsEnabled {
		r.Use(middleware.Metrics())
	}
	r.Use(middleware.CORS(dep.CORSAllowedOrigins))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Provider)
	healthHandler.RegisterRoutes(r)

	if dep.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := r.Group("/api")
	genHandler := genhttp.New(dep.Generation, dep.EnforceBounds)
	genHandler.Register(api)

	page, err := web.NewPage(dep.FormGenerator)
	if err != nil {
		return nil, err
	}
	page.Register(r)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/generate")
	})

	return r, nil
}
