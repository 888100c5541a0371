package http

import (
	"encoding/json"

	"github.com/capstone-ideas/ideagen-backend/internal/idea_generation/domain"
	"github.com/capstone-ideas/ideagen-backend/internal/idea_generation/service"
)

// Handler serves the generation endpoint.
type Handler struct {
	genService    *service.GenerationService
	enforceBounds bool
}

// New creates a new Handler. With enforceBounds set, selection counts outside
// [domain.MinSelections, domain.MaxSelections] are rejected with 400.
func New(genService *service.GenerationService, enforceBounds bool) *Handler {
	return &Handler{
		genService:    genService,
		enforceBounds: enforceBounds,
	}
}

// generateRequest mirrors domain.GenerationRequest with pointer fields so a
// missing or null key can be told apart from an empty value. Types is kept
// raw: it is optional and never rejected.
type generateRequest struct {
	Body       *string         `json:"body"`
	Categories *[]string       `json:"categories"`
	Types      json.RawMessage `json:"types,omitempty"`
}

func (r generateRequest) toDomain() domain.GenerationRequest {
	return domain.GenerationRequest{
		Body:       *r.Body,
		Categories: *r.Categories,
		Types:      stringList(r.Types),
	}
}

// stringList returns raw as a string list, or nil when it is anything else.
func stringList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
