package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/capstone-ideas/ideagen-backend/internal/idea_generation/domain"
	"github.com/capstone-ideas/ideagen-backend/internal/logging"
	"github.com/capstone-ideas/ideagen-backend/internal/metrics"
	"github.com/capstone-ideas/ideagen-backend/internal/tracing"
)

// Generate handles POST /api/generate.
//
// Unparseable bodies and wrongly typed fields answer 500, a missing or null
// "body"/"categories" answers 400 without calling the provider.
func (h *Handler) Generate(c *gin.Context) {
	logger := logging.NewLogger(c.Request.Context())

	req, err := h.decode(c.Request.Body)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			metrics.RecordGeneration(metrics.OutcomeMissingFields)
			logger.LogWarnf("generate", "rejected request: %v", err)
			c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: domain.MessageMissingFields})
		case errors.Is(err, domain.ErrSelectionBounds):
			metrics.RecordGeneration(metrics.OutcomeBadSelection)
			logger.LogWarnf("generate", "rejected request: %v", err)
			c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: domain.MessageSelectionBounds})
		default:
			metrics.RecordGeneration(metrics.OutcomeInternalError)
			logger.LogError("generate", err, "failure_class", "decode")
			c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: domain.MessageInternalError})
		}
		return
	}

	output, err := h.genService.Generate(c.Request.Context(), req)
	if err != nil {
		outcome, class := classify(err)
		metrics.RecordGeneration(outcome)
		attrs := append(failureAttrs(class, err), "trace_id", tracing.TraceID(c.Request.Context()))
		logger.LogError("generate", err, attrs...)
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: domain.MessageInternalError})
		return
	}

	metrics.RecordGeneration(metrics.OutcomeSuccess)
	c.JSON(http.StatusOK, domain.GenerationResponse{Output: output})
}

func (h *Handler) decode(r io.Reader) (domain.GenerationRequest, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return domain.GenerationRequest{}, fmt.Errorf("read body: %w", err)
	}

	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return domain.GenerationRequest{}, fmt.Errorf("parse body: %w", err)
	}
	if _, ok := probe.(map[string]any); !ok {
		return domain.GenerationRequest{}, fmt.Errorf("body is %T, not an object: %w", probe, domain.ErrMissingFields)
	}

	var payload generateRequest
	if err := json.Unmarshal(raw, &payload); err != nil {
		return domain.GenerationRequest{}, fmt.Errorf("parse body: %w", err)
	}
	if payload.Body == nil || payload.Categories == nil {
		return domain.GenerationRequest{}, domain.ErrMissingFields
	}

	req := payload.toDomain()
	if h.enforceBounds {
		if err := checkBounds(req); err != nil {
			return domain.GenerationRequest{}, err
		}
	}
	return req, nil
}

func checkBounds(req domain.GenerationRequest) error {
	if n := len(req.Categories); n < domain.MinSelections || n > domain.MaxSelections {
		return fmt.Errorf("%d categories: %w", n, domain.ErrSelectionBounds)
	}
	if n := len(req.Types); n > domain.MaxSelections {
		return fmt.Errorf("%d types: %w", n, domain.ErrSelectionBounds)
	}
	return nil
}

func classify(err error) (outcome, class string) {
	var pe *domain.ProviderError
	if errors.As(err, &pe) {
		if pe.Retryable {
			return metrics.OutcomeProviderError, "provider_retryable"
		}
		return metrics.OutcomeProviderError, "provider_fatal"
	}
	return metrics.OutcomeInternalError, "internal"
}

func failureAttrs(class string, err error) []any {
	attrs := []any{"failure_class", class}
	var pe *domain.ProviderError
	if errors.As(err, &pe) {
		attrs = append(attrs, "provider", pe.Provider, "provider_status", pe.StatusCode)
	}
	return attrs
}
