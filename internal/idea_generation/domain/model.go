package domain

// GenerationRequest is the wire payload sent by form clients to the
// generation endpoint.
type GenerationRequest struct {
	Body       string   `json:"body"`
	Categories []string `json:"categories"`
	Types      []string `json:"types,omitempty"`
}

// GenerationResponse is returned with HTTP 200.
type GenerationResponse struct {
	Output string `json:"output"`
}

// ErrorResponse is returned with HTTP 400 and 500.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Client-facing error messages. These are part of the wire contract.
const (
	MessageMissingFields   = `Missing "fields" in request data`
	MessageSelectionBounds = "Selections must contain between 1 and 8 items"
	MessageInternalError   = "Internal Server Error"
)

// Selection count bounds shared by the form and the optional server check.
const (
	MinSelections = 1
	MaxSelections = 8
)
