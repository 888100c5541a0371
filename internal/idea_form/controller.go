package ideaform

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/capstone-ideas/ideagen-backend/internal/logging"
)

var (
	ErrSubmissionPending = errors.New("a submission is already pending")
	ErrGenerationFailed  = errors.New("generation failed")
)

// Controller owns the submission lifecycle of one form instance.
// At most one submission is pending at a time; there is no retry.
type Controller struct {
	generator Generator
	notifier  Notifier
	variant   Variant

	mu            sync.Mutex
	state         SubmissionState
	result        string
	resultVisible bool
}

type Option func(*Controller)

func WithNotifier(n Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

func WithVariant(v Variant) Option {
	return func(c *Controller) { c.variant = v }
}

// WithPreviousResult seeds the controller with an earlier output, as a
// stateless page round-trip does.
func WithPreviousResult(text string) Option {
	return func(c *Controller) {
		if text != "" {
			c.result = text
			c.resultVisible = true
		}
	}
}

func NewController(g Generator, opts ...Option) *Controller {
	c := &Controller{
		generator: g,
		notifier:  discardNotifier{},
		variant:   CategoriesOnly,
		state:     Idle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Variant() Variant { return c.variant }

func (c *Controller) State() SubmissionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Result returns the last successful output and whether it is shown.
func (c *Controller) Result() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result, c.resultVisible
}

// Pending reports whether the submit control should be disabled.
func (c *Controller) Pending() bool {
	return c.State() == Pending
}

// Submit validates in, issues exactly one generation call and settles the
// state. A *ValidationError leaves the state untouched. On failure the
// previous result is kept and the returned error wraps ErrGenerationFailed.
func (c *Controller) Submit(ctx context.Context, in SubmissionInput) (SubmissionState, error) {
	if err := Validate(in, c.variant); err != nil {
		return c.State(), err
	}

	c.mu.Lock()
	if c.state == Pending {
		c.mu.Unlock()
		return Pending, ErrSubmissionPending
	}
	c.state = Pending
	c.mu.Unlock()

	logger := logging.NewLogger(ctx)
	output, err := c.generator.Generate(ctx, in.ToRequest(c.variant))

	c.mu.Lock()
	if err != nil {
		c.state = Failed
	} else {
		c.state = Succeeded
		c.result = output
		c.resultVisible = true
	}
	state := c.state
	c.mu.Unlock()

	if err != nil {
		logger.LogError("submit", err, "variant", c.variant.Name)
		c.notifier.Notify(FailureNotification)
		return state, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	c.notifier.Notify(SuccessNotification)
	return state, nil
}
