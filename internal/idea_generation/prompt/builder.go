// Package prompt renders the instruction sent to the generative provider.
package prompt

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/capstone-ideas/ideagen-backend/internal/idea_generation/domain"
)

//go:embed templates/project_idea.txt
var projectIdeaTemplate []byte

// Builder interpolates a generation request into the project idea template.
// It is safe for concurrent use.
type Builder struct {
	tpl *pongo2.Template
}

func NewBuilder() (*Builder, error) {
	tpl, err := pongo2.FromBytes(projectIdeaTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse project idea template: %w", err)
	}
	return &Builder{tpl: tpl}, nil
}

// MustNewBuilder is like NewBuilder but panics on a broken embedded template.
func MustNewBuilder() *Builder {
	b, err := NewBuilder()
	if err != nil {
		panic(err)
	}
	return b
}

// Build returns the instruction text. The body is inserted verbatim and the
// selections are joined with ", ".
func (b *Builder) Build(req domain.GenerationRequest) (string, error) {
	out, err := b.tpl.Execute(pongo2.Context{
		"body":       req.Body,
		"categories": strings.Join(req.Categories, ", "),
		"types":      strings.Join(req.Types, ", "),
	})
	if err != nil {
		return "", fmt.Errorf("render project idea template: %w", err)
	}
	return strings.TrimSpace(out), nil
}
