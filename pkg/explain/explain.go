// Package explain renders the built-in description of the sweep algorithm.
package explain

import (
	_ "embed"

	"github.com/arthur-debert/sweeps/pkg/logging"
	"github.com/charmbracelet/glamour"
)

//go:embed algorithm.md
var algorithm string

// Markdown returns the raw description
func Markdown() string {
	return algorithm
}

// Renderer uses the glamour library for markdown rendering
type Renderer struct {
	Style string // "dark", "light", "notty", "auto", or path to custom style
	Width int    // word wrap; 0 keeps glamour's default
}

// NewRenderer creates a markdown renderer using glamour with auto-detection
func NewRenderer(width int) *Renderer {
	return &Renderer{
		Style: "auto",
		Width: width,
	}
}

// Render converts markdown to terminal output, falling back to the raw
// markdown if glamour fails.
func (r *Renderer) Render(content string) string {
	logger := logging.GetLogger("explain")

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		logger.Debug().Err(err).Msg("Falling back to raw markdown")
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		logger.Debug().Err(err).Msg("Falling back to raw markdown")
		return content
	}

	return rendered
}
