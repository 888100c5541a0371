package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/capstone-ideas/ideagen-backend/internal/idea_generation/domain"
	"github.com/capstone-ideas/ideagen-backend/internal/idea_generation/prompt"
	"github.com/capstone-ideas/ideagen-backend/internal/idea_generation/provider"
	"github.com/capstone-ideas/ideagen-backend/internal/logging"
	"github.com/capstone-ideas/ideagen-backend/internal/metrics"
	"github.com/capstone-ideas/ideagen-backend/internal/tracing"
)

// GenerationService turns a validated request into one provider call.
type GenerationService struct {
	provider provider.Provider
	builder  *prompt.Builder
}

func NewGenerationService(p provider.Provider, builder *prompt.Builder) *GenerationService {
	return &GenerationService{
		provider: p,
		builder:  builder,
	}
}

// Generate renders the instruction and returns the provider's text verbatim.
// The provider is called exactly once; nothing is retried.
func (s *GenerationService) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	logger := logging.NewLogger(ctx)

	ctx, span := tracing.Start(ctx, "generation.generate", trace.WithAttributes(
		attribute.String("provider.name", s.provider.Name()),
		attribute.String("provider.model", s.provider.Model()),
		attribute.Int("generation.categories", len(req.Categories)),
		attribute.Int("generation.types", len(req.Types)),
	))
	defer span.End()

	instruction, err := s.builder.Build(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build instruction")
		return "", fmt.Errorf("build instruction: %w", err)
	}

	start := time.Now()
	output, err := s.provider.Generate(ctx, instruction)
	duration := time.Since(start)
	metrics.RecordProviderCall(s.provider.Name(), s.provider.Model(), duration, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider call")
		return "", fmt.Errorf("provider call: %w", err)
	}

	logger.LogInfof("generate", "provider=%s model=%s latency=%s output_bytes=%d",
		s.provider.Name(), s.provider.Model(), duration, len(output))
	return output, nil
}
