package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/capstone-ideas/ideagen-backend/config"
	httpapi "github.com/capstone-ideas/ideagen-backend/internal/api/http"
	"github.com/capstone-ideas/ideagen-backend/internal/bootstrap"
	ideaform "github.com/capstone-ideas/ideagen-backend/internal/idea_form"
	"github.com/capstone-ideas/ideagen-backend/internal/idea_generation/prompt"
	"github.com/capstone-ideas/ideagen-backend/internal/idea_generation/provider"
	"github.com/capstone-ideas/ideagen-backend/internal/idea_generation/service"
	"github.com/capstone-ideas/ideagen-backend/internal/logging"
	"github.com/capstone-ideas/ideagen-backend/internal/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logging.Init(cfg.App.LogLevel, cfg.App.LogFormat)
	logger := logging.Default()
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		ServiceName: cfg.App.Name,
		Endpoint:    cfg.Observability.TracingEndpoint,
		SampleRate:  cfg.Observability.TracingSampleRate,
		Enabled:     cfg.Observability.TracingEnabled,
	})
	if err != nil {
		logger.Error("failed to init tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("failed to shutdown tracing", "error", err)
		}
	}()

	llm, err := provider.New(cfg.Provider)
	if err != nil {
		logger.Error("failed to create provider", "error", err)
		os.Exit(1)
	}
	if cfg.Provider.APIKey == "" {
		logger.Warn("no API key configured, generation requests will fail", "provider", llm.Name())
	}

	builder, err := prompt.NewBuilder()
	if err != nil {
		logger.Error("failed to parse instruction template", "error", err)
		os.Exit(1)
	}

	r, err := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:        cfg.App.Name,
		Version:            cfg.App.Version,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		MetricsEnabled:     cfg.Observability.MetricsEnabled,
		TracingEnabled:     cfg.Observability.TracingEnabled,
		EnforceBounds:      cfg.Generation.EnforceSelectionBounds,
		Provider: httpapi.ProviderInfo{
			Name:       llm.Name(),
			Model:      llm.Model(),
			Configured: cfg.Provider.APIKey != "",
		},
		Generation:    service.NewGenerationService(llm, builder),
		FormGenerator: ideaform.NewEndpointClient(cfg.Client.APIURL, &http.Client{}),
	})
	if err != nil {
		logger.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server starting", "addr", srv.Addr, "provider", llm.Name(), "model", llm.Model(), "env", cfg.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("server exited")
}
