// Command ideagen asks for a prompt and categories in the terminal and
// prints a generated capstone project idea.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/capstone-ideas/ideagen-backend/config"
	ideaform "github.com/capstone-ideas/ideagen-backend/internal/idea_form"
	"github.com/capstone-ideas/ideagen-backend/internal/idea_form/tui"
	"github.com/capstone-ideas/ideagen-backend/internal/logging"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "ideagen:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var (
		apiURL       = flag.String("api-url", cfg.Client.APIURL, "base URL of the generation API")
		projectTypes = flag.Bool("project-types", false, "also ask for project types")
		promptText   = flag.String("prompt", "", "topics or keywords (non-interactive mode)")
		categories   = flag.String("categories", "", "comma separated categories; enables non-interactive mode")
		types        = flag.String("types", "", "comma separated project types (non-interactive mode)")
		listCatalogs = flag.Bool("list", false, "print the category and project type catalogs and exit")
	)
	flag.Parse()

	logging.Init(cfg.App.LogLevel, cfg.App.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	driver := tui.NewSurveyDriver()

	if *listCatalogs {
		return printCatalogs(ctx, driver)
	}

	variant := ideaform.CategoriesOnly
	if *projectTypes {
		variant = ideaform.WithProjectTypes
	}

	var in ideaform.SubmissionInput
	if *categories != "" {
		in = ideaform.SubmissionInput{
			PromptText:   *promptText,
			Categories:   splitList(*categories),
			ProjectTypes: splitList(*types),
		}
	} else {
		in, err = tui.Collect(ctx, driver, variant)
		if err != nil {
			return err
		}
	}

	ctrl := ideaform.NewController(
		ideaform.NewEndpointClient(*apiURL, &http.Client{}),
		ideaform.WithVariant(variant),
		ideaform.WithNotifier(tui.Notifier(ctx, driver)),
	)

	if _, err := ctrl.Submit(ctx, in); err != nil {
		return err
	}

	text, _ := ctrl.Result()
	return driver.Info(ctx, "\n"+text)
}

func printCatalogs(ctx context.Context, driver tui.PromptDriver) error {
	if err := driver.Info(ctx, "Categories:\n  "+strings.Join(ideaform.Categories, "\n  ")); err != nil {
		return err
	}
	return driver.Info(ctx, "Project types:\n  "+strings.Join(ideaform.ProjectTypes, "\n  "))
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
