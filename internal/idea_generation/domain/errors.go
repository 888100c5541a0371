package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFields   = errors.New("missing required fields")
	ErrSelectionBounds = errors.New("selection count out of bounds")
	ErrEmptyCompletion = errors.New("provider returned no candidates")
)

// ProviderError wraps a failed call to the generative provider.
// StatusCode is 0 when the request never got an HTTP response.
type ProviderError struct {
	Provider   string
	StatusCode int
	Retryable  bool
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s provider: status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s provider: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError classifies a provider failure. Throttling, server-side
// failures and transport errors are retryable; other statuses are not.
func NewProviderError(provider string, statusCode int, err error) *ProviderError {
	return &ProviderError{
		Provider:   provider,
		StatusCode: statusCode,
		Retryable:  statusCode == 0 || statusCode == 429 || statusCode >= 500,
		Err:        err,
	}
}

// IsProviderError reports whether err came from the provider call.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
