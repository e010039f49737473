// Package markdown renders readme markdown to sanitised HTML.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/vvka-141/wppkg/pkg/wppkg"
)

// Renderer converts markdown to HTML with goldmark and passes the result
// through a user-generated-content sanitising policy.
//
// Raw HTML in the source (including the <h4> subheadings the readme parser
// inserts) passes through goldmark and is then filtered by the policy.
// Renderer is safe for concurrent use by multiple goroutines.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New creates a Renderer with GitHub-flavoured extensions enabled.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render converts markdown to sanitised HTML.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}

// Verify Renderer implements the interface at compile time
var _ wppkg.Renderer = (*Renderer)(nil)
