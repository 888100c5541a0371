// Package tui collects form input in a terminal.
package tui

import (
	"context"
	"fmt"

	ideaform "github.com/capstone-ideas/ideagen-backend/internal/idea_form"
	"github.com/capstone-ideas/ideagen-backend/internal/idea_generation/domain"
)

// Collect asks for the prompt text and the selections the variant shows.
func Collect(ctx context.Context, driver PromptDriver, variant ideaform.Variant) (ideaform.SubmissionInput, error) {
	var in ideaform.SubmissionInput

	text, err := driver.TextArea(ctx, TextAreaConfig{
		Message: "Enter topics or specific keywords",
		Help:    "e.g I want something thats helps the school",
	})
	if err != nil {
		return in, fmt.Errorf("prompt text: %w", err)
	}
	in.PromptText = text

	in.Categories, err = pick(ctx, driver, "Categories", ideaform.Categories)
	if err != nil {
		return in, fmt.Errorf("categories: %w", err)
	}

	if variant.ProjectTypes {
		in.ProjectTypes, err = pick(ctx, driver, "Project types", ideaform.ProjectTypes)
		if err != nil {
			return in, fmt.Errorf("project types: %w", err)
		}
	}

	return in, nil
}

func pick(ctx context.Context, driver PromptDriver, message string, catalog []string) ([]string, error) {
	idx, err := driver.MultiSelect(ctx, SelectConfig{
		Message:  message,
		Options:  catalog,
		Help:     fmt.Sprintf("Select between %d and %d.", domain.MinSelections, domain.MaxSelections),
		PageSize: 12,
		Min:      domain.MinSelections,
		Max:      domain.MaxSelections,
	})
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(idx))
	for _, i := range idx {
		if i >= 0 && i < len(catalog) {
			out = append(out, catalog[i])
		}
	}
	return out, nil
}

// Notifier prints settled notifications through the driver.
func Notifier(ctx context.Context, driver PromptDriver) ideaform.Notifier {
	return ideaform.NotifierFunc(func(n ideaform.Notification) {
		_ = driver.Info(ctx, fmt.Sprintf("%s %s", n.Title, n.Description))
	})
}
