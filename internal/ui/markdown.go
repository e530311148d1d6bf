package ui

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown for the docs viewer. On renderer
// failure the raw text comes back unstyled so the document is still
// readable.
func RenderMarkdown(content string, width int, theme string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(DetectTheme(theme)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return out
}
