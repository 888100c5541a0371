// Package web serves the server-rendered idea generation form.
package web

import (
	"embed"
	"errors"
	"fmt"
	"net/http"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	ideaform "github.com/capstone-ideas/ideagen-backend/internal/idea_form"
	"github.com/capstone-ideas/ideagen-backend/internal/logging"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	heading = "Generate Capstone Title Ideas"
	lead    = "Unleash your creativity and find the perfect project idea with our AI-powered tool! " +
		"Designed specifically for computer science students, this app helps you generate unique, " +
		"innovative, and tailored project titles."
)

// Page renders the form and drives one Controller per submission. The
// previous output travels in a hidden field, so the page itself is stateless.
type Page struct {
	tpl       *pongo2.Template
	generator ideaform.Generator
	markdown  *markdownRenderer
}

func NewPage(generator ideaform.Generator) (*Page, error) {
	set := pongo2.NewSet("ideagen-web", pongo2.NewFSLoader(templatesFS))
	tpl, err := set.FromFile("templates/generate.html")
	if err != nil {
		return nil, fmt.Errorf("load form template: %w", err)
	}
	return &Page{
		tpl:       tpl,
		generator: generator,
		markdown:  newMarkdownRenderer(),
	}, nil
}

// Register mounts both form variants.
func (p *Page) Register(r gin.IRouter) {
	r.GET("/generate", p.show(ideaform.CategoriesOnly, "/generate"))
	r.POST("/generate", p.submit(ideaform.CategoriesOnly, "/generate"))
	r.GET("/generate/project-types", p.show(ideaform.WithProjectTypes, "/generate/project-types"))
	r.POST("/generate/project-types", p.submit(ideaform.WithProjectTypes, "/generate/project-types"))
}

type option struct {
	Value    string
	Selected bool
}

type view struct {
	variant       ideaform.Variant
	action        string
	input         ideaform.SubmissionInput
	errors        map[string]string
	result        string
	resultVisible bool
	notifications []ideaform.Notification
}

func (p *Page) show(variant ideaform.Variant, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p.render(c, http.StatusOK, view{variant: variant, action: action})
	}
}

func (p *Page) submit(variant ideaform.Variant, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := logging.NewLogger(c.Request.Context())

		in := ideaform.SubmissionInput{
			PromptText:   c.PostForm("prompt_input"),
			Categories:   c.PostFormArray("categories"),
			ProjectTypes: c.PostFormArray("types"),
		}
		previous := c.PostForm("result")

		var notes []ideaform.Notification
		ctrl := ideaform.NewController(p.generator,
			ideaform.WithVariant(variant),
			ideaform.WithPreviousResult(previous),
			ideaform.WithNotifier(ideaform.NotifierFunc(func(n ideaform.Notification) {
				notes = append(notes, n)
			})),
		)

		_, err := ctrl.Submit(c.Request.Context(), in)

		v := view{variant: variant, action: action, input: in, notifications: notes}
		v.result, v.resultVisible = ctrl.Result()

		var verr *ideaform.ValidationError
		switch {
		case errors.As(err, &verr):
			v.errors = verr.Fields
			p.render(c, http.StatusUnprocessableEntity, v)
		case err != nil:
			logger.LogWarnf("web_submit", "generation failed for %s form: %v", variant.Name, err)
			p.render(c, http.StatusOK, v)
		default:
			p.render(c, http.StatusOK, v)
		}
	}
}

func (p *Page) render(c *gin.Context, status int, v view) {
	if v.errors == nil {
		v.errors = map[string]string{}
	}

	ctx := pongo2.Context{
		"heading":        heading,
		"lead":           lead,
		"action":         v.action,
		"prompt":         v.input.PromptText,
		"categories":     options(ideaform.Categories, v.input.Categories),
		"show_types":     v.variant.ProjectTypes,
		"types":          options(ideaform.ProjectTypes, v.input.ProjectTypes),
		"errors":         v.errors,
		"result":         v.result,
		"result_html":    p.markdown.Render(v.result),
		"result_visible": v.resultVisible,
		"notifications":  v.notifications,
	}

	out, err := p.tpl.ExecuteBytes(ctx)
	if err != nil {
		logging.NewLogger(c.Request.Context()).LogError("web_render", err)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	c.Data(status, "text/html; charset=utf-8", out)
}

func options(catalog, selected []string) []option {
	chosen := make(map[string]bool, len(selected))
	for _, s := range selected {
		chosen[s] = true
	}
	out := make([]option, len(catalog))
	for i, item := range catalog {
		out[i] = option{Value: item, Selected: chosen[item]}
	}
	return out
}
