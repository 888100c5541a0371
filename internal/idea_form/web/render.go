package web

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

// markdownRenderer turns provider output into HTML that is safe to inline.
type markdownRenderer struct {
	policy *bluemonday.Policy
}

func newMarkdownRenderer() *markdownRenderer {
	return &markdownRenderer{policy: bluemonday.UGCPolicy()}
}

func (r *markdownRenderer) Render(text string) string {
	if text == "" {
		return ""
	}

	// parsers keep state and cannot be reused
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.NoEmptyLineBeforeBlock)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})

	out := markdown.ToHTML([]byte(text), p, renderer)
	return string(r.policy.SanitizeBytes(out))
}
